package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/errors"
)

const fruitJSON = `{
  "chartProps": {
    "chartSettings": [{"colorIndex": 0, "label": "Apples"}, {"colorIndex": 1, "label": "Pears", "type": "column"}],
    "data": [
      {"values": [{"entry": "2019", "value": 3}, {"entry": "2020", "value": 5}]},
      {"values": [{"entry": "2019", "value": 1}, {"entry": "2020", "value": 2}]}
    ],
    "scale": {"primaryScale": {"domain": [0, 10], "tickValues": [0, 5, 10], "suffix": "%"}},
    "_grid": {"rows": 2, "cols": 1}
  },
  "metadata": {"title": "Fruit", "source": "Orchard survey"},
  "dimensions": {"width": 640, "height": 480}
}`

const fruitYAML = `chartProps:
  chartSettings:
    - {colorIndex: 0, label: Apples}
    - {colorIndex: 1, label: Pears, type: column}
  data:
    - values: [{entry: "2019", value: 3}, {entry: "2020", value: 5}]
    - values: [{entry: "2019", value: 1}, {entry: "2020", value: 2}]
  scale:
    primaryScale:
      domain: [0, 10]
      tickValues: [0, 5, 10]
      suffix: "%"
  _grid: {rows: 2, cols: 1}
metadata:
  title: Fruit
  source: Orchard survey
dimensions: {width: 640, height: 480}
`

func fruit() Document {
	return Document{
		ChartProps: chart.Props{
			ChartSettings: []chart.Settings{
				{ColorIndex: 0, Label: "Apples"},
				{ColorIndex: 1, Label: "Pears", Type: chart.SeriesColumn},
			},
			Data: []chart.Series{
				{Values: []chart.Point{{Entry: "2019", Value: 3}, {Entry: "2020", Value: 5}}},
				{Values: []chart.Point{{Entry: "2019", Value: 1}, {Entry: "2020", Value: 2}}},
			},
			Scale: chart.Scale{PrimaryScale: chart.PrimaryScale{
				Domain:     []float64{0, 10},
				TickValues: []float64{0, 5, 10},
				Suffix:     "%",
			}},
			Grid: chart.Grid{Rows: 2, Cols: 1},
		},
		Metadata:   chart.Metadata{Title: "Fruit", Source: "Orchard survey"},
		Dimensions: &chart.Dimensions{Width: 640, Height: 480},
	}
}

func TestReadChart(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"json", fruitJSON, FormatJSON},
		{"yaml", fruitYAML, FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadChart(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadChart: %v", err)
			}
			if diff := cmp.Diff(fruit(), doc); diff != "" {
				t.Errorf("ReadChart mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadChartErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"malformed json", `{"chartProps": `, FormatJSON, errors.ErrCodeInvalidInput},
		{"unknown json field", `{"chart": {}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"unknown yaml field", "chart: {}\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"empty yaml", "", FormatYAML, errors.ErrCodeInvalidInput},
		{"oversized dimensions", `{"chartProps": {}, "dimensions": {"width": 1e12, "height": 10}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"infinite yaml dimensions", "chartProps: {}\ndimensions: {width: .inf, height: 10}\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"negative dimensions", `{"chartProps": {}, "dimensions": {"width": -1, "height": 10}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"unknown format", `{}`, Format("xml"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadChart(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadChart error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadChartKeepsMissingDataNil(t *testing.T) {
	doc, err := ReadChart(strings.NewReader(`{"chartProps": {"_grid": {"rows": 1, "cols": 1}}}`), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ChartProps.Data != nil {
		t.Errorf("Data = %v, want nil", doc.ChartProps.Data)
	}
	if doc.Dimensions != nil {
		t.Errorf("Dimensions = %v, want nil", doc.Dimensions)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"chart.json", FormatJSON, false},
		{"dir/chart.YAML", FormatYAML, false},
		{"chart.yml", FormatYAML, false},
		{"chart.toml", "", true},
		{"chart", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadChartFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fruit.yml")
	if err := os.WriteFile(path, []byte(fruitYAML), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := ReadChartFile(path)
	if err != nil {
		t.Fatalf("ReadChartFile: %v", err)
	}
	if doc.Metadata.Title != "Fruit" {
		t.Errorf("Title = %q, want Fruit", doc.Metadata.Title)
	}

	_, err = ReadChartFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	_, err = ReadChartFile("")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty path error = %v, want INVALID_INPUT", err)
	}
}

func TestWriteChartRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteChart(&buf, fruit(), format); err != nil {
				t.Fatalf("WriteChart: %v", err)
			}
			doc, err := ReadChart(&buf, format)
			if err != nil {
				t.Fatalf("ReadChart: %v", err)
			}
			if diff := cmp.Diff(fruit(), doc); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportChart(fruit(), path); err != nil {
		t.Fatalf("ExportChart: %v", err)
	}
	doc, err := ReadChartFile(path)
	if err != nil {
		t.Fatalf("ReadChartFile: %v", err)
	}
	if diff := cmp.Diff(fruit(), doc); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}

	if err := ExportChart(fruit(), filepath.Join(t.TempDir(), "out.txt")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ExportChart(.txt) error = %v, want INVALID_FORMAT", err)
	}
}
