// Package grid places small-multiple charts on a rows × cols grid.
//
// [CreateGridScales] turns a grid shape and the outer pixel ranges into two
// band scales, one per axis. [MakeMults] then instantiates one cell per
// datum at its grid position, handing each cell the children produced by a
// caller-supplied builder.
package grid

import (
	"math"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/scale"
)

// Ranges are the outer pixel ranges shared by every cell.
type Ranges struct {
	X [2]float64
	Y [2]float64
}

// Scales position grid rows and columns.
type Scales struct {
	Rows *scale.Band
	Cols *scale.Band
}

// CreateGridScales builds the row and column band scales for g.
//
// Rows are laid out top to bottom: row 0 is nearest screen y = 0 whatever
// the orientation of outer.Y.
func CreateGridScales(g chart.Grid, outer Ranges, pad chart.GridPadding) Scales {
	y := [2]float64{math.Min(outer.Y[0], outer.Y[1]), math.Max(outer.Y[0], outer.Y[1])}
	return Scales{
		Rows: scale.NewBand(g.Rows, y, pad.YInnerPadding, pad.YOuterPadding),
		Cols: scale.NewBand(g.Cols, outer.X, pad.XInnerPadding, pad.XOuterPadding),
	}
}

// Placement is where one cell sits on the grid.
type Placement struct {
	Index  int     `json:"index"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Place returns the placement of the i-th cell, filling rows left to right.
func (s Scales) Place(i int) Placement {
	cols := max(1, len(s.Cols.Domain))
	row, col := i/cols, i%cols
	return Placement{
		Index:  i,
		Row:    row,
		Col:    col,
		X:      s.Cols.Map(col),
		Y:      s.Rows.Map(row),
		Width:  s.Cols.RangeBand(),
		Height: s.Rows.RangeBand(),
	}
}

// RowOffsets returns the y offset of every row.
func (s Scales) RowOffsets() []float64 {
	out := make([]float64, len(s.Rows.Domain))
	for i := range s.Rows.Domain {
		out[i] = s.Rows.Map(i)
	}
	return out
}

// Outer renders one cell given its placement and children.
type Outer[C any] func(p Placement, children []C) *svg.Element

// MakeMults returns one cell per datum, in data order. build is called with
// each datum and its index to produce the cell's children.
func MakeMults[D, C any](outer Outer[C], data []D, s Scales, build func(d D, i int) []C) []*svg.Element {
	cells := make([]*svg.Element, 0, len(data))
	for i, d := range data {
		cells = append(cells, outer(s.Place(i), build(d, i)))
	}
	return cells
}
