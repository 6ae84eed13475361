package chartgrid

import (
	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/grid"
	"github.com/matzehuels/chartgrid/pkg/scale"
)

// Props are the inputs of a chart grid.
type Props struct {
	Editable      bool
	StyleConfig   chart.StyleConfig
	DisplayConfig chart.DisplayConfig
	ChartProps    chart.Props
	Dimensions    chart.Dimensions
	Metadata      chart.Metadata
}

// Layout is the computed geometry of a chart grid.
type Layout struct {
	Primary        chart.PrimaryScale // with domain and tick values resolved
	TickFont       fonts.Font
	TickTextHeight float64
	TickWidths     scale.TickWidths

	ChartArea chart.Dimensions
	Outer     chart.Dimensions

	XRangeOuter [2]float64
	YRangeOuter [2]float64
	GridScales  grid.Scales
	XRangeInner [2]float64
	YRangeInner [2]float64

	XAxis scale.Generated
	YAxis scale.Generated
}

// ComputeLayout validates p and computes its layout. A nil m measures
// with fonts.Default.
func ComputeLayout(p Props, m fonts.Measurer) (Layout, error) {
	if m == nil {
		m = fonts.Default
	}
	if err := p.ChartProps.Validate(); err != nil {
		return Layout{}, err
	}
	if err := p.Dimensions.Validate(); err != nil {
		return Layout{}, err
	}
	if p.Dimensions.Width <= 0 || p.Dimensions.Height <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidChart,
			"dimensions must be positive, got %vx%v", p.Dimensions.Width, p.Dimensions.Height)
	}

	style, display := p.StyleConfig, p.DisplayConfig
	data := p.ChartProps.Data
	rows := float64(p.ChartProps.Grid.Rows)
	pad, margin := display.Padding, display.Margin

	var l Layout
	l.Primary = scale.Resolve(p.ChartProps.Scale.PrimaryScale, data)
	l.TickFont = fonts.Font{Size: style.FontSizes.Medium, Family: style.FontFamily}
	l.TickTextHeight = m.Width("M", l.TickFont)
	l.TickWidths = scale.GetTickWidths(l.Primary, l.TickFont, m)

	l.ChartArea = chart.Dimensions{
		Width:  p.Dimensions.Width - margin.Left - margin.Right - pad.Left - pad.Right - l.TickWidths.Max,
		Height: p.Dimensions.Height - margin.Top - margin.Bottom - (pad.Top+pad.Bottom)*rows,
	}
	l.Outer = chart.Dimensions{
		Width:  p.Dimensions.Width,
		Height: p.Dimensions.Height - (pad.Top+pad.Bottom)*(rows-1),
	}
	if l.ChartArea.Width <= 0 || l.ChartArea.Height <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidChart,
			"no room left for the chart area (%vx%v) after margins and padding",
			l.ChartArea.Width, l.ChartArea.Height)
	}

	l.XRangeOuter = [2]float64{style.XOverTick, l.ChartArea.Width}
	l.YRangeOuter = [2]float64{l.ChartArea.Height, 0}
	l.GridScales = grid.CreateGridScales(p.ChartProps.Grid, grid.Ranges{X: l.XRangeOuter, Y: l.YRangeOuter}, display.GridPadding)

	l.XRangeInner = [2]float64{0, l.GridScales.Cols.RangeBand()}
	l.YRangeInner = [2]float64{l.GridScales.Rows.RangeBand(), display.AfterLegend}

	var err error
	if l.XAxis, err = scale.GenerateScale(scale.KindOrdinal, l.Primary, data, l.XRangeInner); err != nil {
		return Layout{}, err
	}
	if l.YAxis, err = scale.GenerateScale(scale.KindLinear, l.Primary, data, l.YRangeInner); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Cells returns the placement of every series, in data order.
func (l Layout) Cells(n int) []grid.Placement {
	out := make([]grid.Placement, n)
	for i := range out {
		out[i] = l.GridScales.Place(i)
	}
	return out
}
