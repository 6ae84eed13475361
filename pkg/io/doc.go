// Package io reads and writes chart documents.
//
// A chart document is the unit of input for every chartgrid command. It
// carries the chart properties, the descriptive metadata drawn around the
// grid, and optionally the output dimensions:
//
//	{
//	  "chartProps": {
//	    "chartSettings": [{"colorIndex": 0, "label": "Apples"}],
//	    "data": [{"values": [{"entry": "2019", "value": 3}]}],
//	    "scale": {"primaryScale": {"domain": [0, 10], "tickValues": [0, 5, 10]}},
//	    "_grid": {"rows": 1, "cols": 1}
//	  },
//	  "metadata": {"title": "Fruit", "source": "Orchard survey"},
//	  "dimensions": {"width": 640, "height": 480}
//	}
//
// Documents may be JSON or YAML. The YAML form uses the same keys.
//
// # Import
//
// Use [ReadChartFile] to read a document from a path (the format follows
// the file extension), or [ReadChart] to read from any io.Reader:
//
//	doc, err := io.ReadChartFile("fruit.yaml")
//
// # Export
//
// [WriteChart] and [ExportChart] write a document back out. A document that
// is read and written again is unchanged apart from key order and spacing.
package io
