package series

import (
	"testing"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/fonts"
	"github.com/matzehuels/chartgrid/pkg/grid"
	"github.com/matzehuels/chartgrid/pkg/render/styles"
	"github.com/matzehuels/chartgrid/pkg/render/svg"
	"github.com/matzehuels/chartgrid/pkg/render/xychart"
	"github.com/matzehuels/chartgrid/pkg/scale"
)

// charMeasurer gives every rune the same width.
type charMeasurer float64

func (c charMeasurer) Width(text string, _ fonts.Font) float64 {
	return float64(len([]rune(text))) * float64(c)
}

func testContext(t *testing.T) xychart.Context {
	t.Helper()
	palette, err := styles.NewPalette([]string{"#ff0000", "#00ff00"})
	if err != nil {
		t.Fatal(err)
	}
	entries := []string{"a", "b", "c", "d"}
	return xychart.Context{
		Props: xychart.Props{
			StyleConfig: chart.StyleConfig{
				FontSizes:       chart.FontSizes{Medium: 10},
				LineWidth:       2,
				DotRadius:       3,
				BackgroundColor: "#ffffff",
			},
			DisplayConfig: chart.DisplayConfig{LabelRectangle: 8, BlockerRectOffset: 2},
			XScale:        scale.Generated{Ordinal: scale.NewPoint(entries, [2]float64{0, 100}, 1), Entries: entries},
			YScale:        scale.Generated{Linear: scale.NewLinear([2]float64{-10, 10}, [2]float64{100, 0})},
			Palette:       palette,
			Measurer:      charMeasurer(5),
		},
		Placement: grid.Placement{Width: 100, Height: 100},
	}
}

var data = chart.Series{Name: "A", Values: []chart.Point{
	{Entry: "a", Value: 0},
	{Entry: "b", Value: 10},
	{Entry: "zz", Value: 4},
	{Entry: "c", Value: -5},
	{Entry: "d", Value: 50},
}}

func TestCreate(t *testing.T) {
	tests := []struct {
		kind chart.SeriesType
		want string
	}{
		{"", "series-line"},
		{chart.SeriesLine, "series-line"},
		{chart.SeriesColumn, "series-column"},
		{chart.SeriesDot, "series-dot"},
	}
	ctx := testContext(t)
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			g := Create(tt.kind, Props{Data: data}).Render(ctx)
			if !g.HasClass(tt.want) {
				t.Errorf("Create(%q) rendered %v, want class %q", tt.kind, g.Attrs, tt.want)
			}
			if v, _ := g.Get("data-name"); v != "A" {
				t.Errorf("data-name = %q, want A", v)
			}
		})
	}
}

func TestLine(t *testing.T) {
	g := Line{Props{Data: data, ColorIndex: 1}}.Render(testContext(t))
	path := g.Find("line")
	if path == nil {
		t.Fatal("line path missing")
	}
	// the unknown entry is skipped and 50 is clamped to the top of the range
	if d, _ := path.Get("d"); d != "M12.5,50L37.5,0L62.5,75L87.5,0" {
		t.Errorf("d = %q", d)
	}
	if s, _ := path.Get("stroke"); s != "#00ff00" {
		t.Errorf("stroke = %q, want palette color 1", s)
	}
	if w := path.Float("stroke-width"); w != 2 {
		t.Errorf("stroke-width = %v, want 2", w)
	}
}

func TestLineEmpty(t *testing.T) {
	g := Line{Props{}}.Render(testContext(t))
	if len(g.Children) != 0 {
		t.Errorf("empty series should draw no path, got %d children", len(g.Children))
	}
}

func TestColumn(t *testing.T) {
	g := Column{Props{Data: data}}.Render(testContext(t))
	bars := g.FindAll("column")
	if len(bars) != 4 {
		t.Fatalf("bars = %d, want 4", len(bars))
	}
	// step 25, width 20, baseline at y=50
	tests := []struct {
		x, y, h float64
	}{
		{2.5, 50, 0},
		{27.5, 0, 50},
		{52.5, 50, 25},
		{77.5, 0, 50},
	}
	for i, tt := range tests {
		b := bars[i]
		if b.Float("x") != tt.x || b.Float("y") != tt.y || b.Float("height") != tt.h || b.Float("width") != 20 {
			t.Errorf("bar %d = %v, want x=%v y=%v h=%v w=20", i, b.Attrs, tt.x, tt.y, tt.h)
		}
	}
}

func TestDot(t *testing.T) {
	g := Dot{Props{Data: data}}.Render(testContext(t))
	dots := g.FindAll("dot")
	if len(dots) != 4 {
		t.Fatalf("dots = %d, want 4", len(dots))
	}
	if r := dots[0].Float("r"); r != 3 {
		t.Errorf("r = %v, want 3", r)
	}
	if f, _ := dots[0].Get("fill"); f != "#ff0000" {
		t.Errorf("fill = %q", f)
	}
}

func TestLabel(t *testing.T) {
	ctx := testContext(t)

	t.Run("short", func(t *testing.T) {
		g := Label{Text: "Alpha", ColorIndex: 3}.Render(ctx)
		if txt := g.Find("series-label-text"); txt == nil || txt.Text != "Alpha" {
			t.Fatalf("label text = %v", txt)
		}
		if f, _ := g.Find("swatch").Get("fill"); f != "#00ff00" {
			t.Errorf("swatch fill = %q, want wrapped palette color", f)
		}
		blocker := g.Find("blocker")
		if blocker == nil {
			t.Fatal("blocker rect missing")
		}
		// swatch 8 + gap 4 + 5 runes * 5 + 2 * offset
		if w := blocker.Float("width"); w != 41 {
			t.Errorf("blocker width = %v, want 41", w)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		g := Label{Text: "A very long series label that overruns"}.Render(ctx)
		txt := g.Find("series-label-text").Text
		if w := charMeasurer(5).Width(txt, fonts.Font{}); w > 100-12 {
			t.Errorf("label %q is %v wide, should fit in 88", txt, w)
		}
	})

	t.Run("offset", func(t *testing.T) {
		g := Label{Text: "B", XVal: 15}.Render(ctx)
		if x, _, _ := svg.ParseTranslate(func() string { v, _ := g.Get("transform"); return v }()); x != 15 {
			t.Errorf("x = %v, want 15", x)
		}
	})
}
