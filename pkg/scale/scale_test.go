package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/errors"
	"github.com/matzehuels/chartgrid/pkg/fonts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// charMeasurer gives every character a fixed width.
type charMeasurer float64

func (c charMeasurer) Width(text string, _ fonts.Font) float64 {
	return float64(len(text)) * float64(c)
}

func TestLinearMap(t *testing.T) {
	s := NewLinear([2]float64{0, 10}, [2]float64{100, 0})
	tests := []struct {
		in, want float64
	}{
		{0, 100},
		{10, 0},
		{5, 50},
		{12, -20},
	}
	for _, tt := range tests {
		if got := s.Map(tt.in); !near(got, tt.want) {
			t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := s.Clamp(-20); got != 0 {
		t.Errorf("Clamp(-20) = %v, want 0", got)
	}
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := NewLinear([2]float64{3, 3}, [2]float64{40, 0})
	if got := s.Map(7); got != 40 {
		t.Errorf("Map on degenerate domain = %v, want range start 40", got)
	}
}

func TestLinearTicks(t *testing.T) {
	tests := []struct {
		name   string
		domain [2]float64
		n      int
		want   []float64
	}{
		{"zero to ten", [2]float64{0, 10}, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"unit interval", [2]float64{0, 1}, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"negative", [2]float64{-50, 50}, 4, []float64{-40, -20, 0, 20, 40}},
		{"reversed", [2]float64{10, 0}, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"empty span", [2]float64{2, 2}, 5, []float64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLinear(tt.domain, [2]float64{0, 1}).Ticks(tt.n)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Ticks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinearNice(t *testing.T) {
	got := NewLinear([2]float64{0, 9.3}, [2]float64{0, 1}).Nice(5).Domain
	if !near(got[0], 0) || !near(got[1], 10) {
		t.Errorf("Nice() domain = %v, want [0 10]", got)
	}
	got = NewLinear([2]float64{-3.2, 47}, [2]float64{0, 1}).Nice(5).Domain
	if !near(got[0], -10) || !near(got[1], 50) {
		t.Errorf("Nice() domain = %v, want [-10 50]", got)
	}
}

func TestPointScale(t *testing.T) {
	s := NewPoint([]string{"a", "b", "c"}, [2]float64{0, 300}, DefaultPointPadding)
	if got := s.Step(); !near(got, 100) {
		t.Errorf("Step() = %v, want 100", got)
	}
	for entry, want := range map[string]float64{"a": 50, "b": 150, "c": 250} {
		got, ok := s.Map(entry)
		if !ok || !near(got, want) {
			t.Errorf("Map(%q) = %v, %v, want %v, true", entry, got, ok, want)
		}
	}
	if _, ok := s.Map("d"); ok {
		t.Error("Map(d) should report unknown entry")
	}

	single := NewPoint([]string{"only"}, [2]float64{0, 100}, DefaultPointPadding)
	if got, _ := single.Map("only"); !near(got, 50) {
		t.Errorf("single entry = %v, want 50", got)
	}
	unpadded := NewPoint([]string{"only"}, [2]float64{0, 100}, 0)
	if got := unpadded.At(0); !near(got, 50) {
		t.Errorf("single unpadded entry = %v, want 50", got)
	}
	if got := NewPoint(nil, [2]float64{0, 100}, 1).Step(); got != 0 {
		t.Errorf("empty domain Step() = %v, want 0", got)
	}
}

func TestBandScale(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		rng       [2]float64
		inner     float64
		outer     float64
		wantStart []float64
		wantBand  float64
	}{
		{"no padding", 2, [2]float64{0, 100}, 0, 0, []float64{0, 50}, 50},
		{"inner padding", 2, [2]float64{0, 100}, 0.2, 0, []float64{0, 100 / 1.8}, 100 / 1.8 * 0.8},
		{"outer padding", 2, [2]float64{0, 120}, 0, 0.5, []float64{20, 60}, 40},
		{"reversed range", 2, [2]float64{100, 0}, 0, 0, []float64{50, 0}, 50},
		{"offset range", 3, [2]float64{12, 312}, 0, 0, []float64{12, 112, 212}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBand(tt.n, tt.rng, tt.inner, tt.outer)
			var got []float64
			for i := range b.Domain {
				got = append(got, b.Map(i))
			}
			if diff := cmp.Diff(tt.wantStart, got, approx); diff != "" {
				t.Errorf("band starts mismatch (-want +got):\n%s", diff)
			}
			if !near(b.RangeBand(), tt.wantBand) {
				t.Errorf("RangeBand() = %v, want %v", b.RangeBand(), tt.wantBand)
			}
		})
	}
}

func TestExactTicks(t *testing.T) {
	got := ExactTicks([2]float64{0, 100}, 3)
	if diff := cmp.Diff([]float64{0, 50, 100}, got, approx); diff != "" {
		t.Errorf("ExactTicks mismatch (-want +got):\n%s", diff)
	}
	if got := ExactTicks([2]float64{4, 9}, 1); len(got) != 1 || got[0] != 4 {
		t.Errorf("ExactTicks(n=1) = %v, want [4]", got)
	}
}

func TestFormatTick(t *testing.T) {
	s := chart.PrimaryScale{Precision: 0, Prefix: "$", Suffix: "%"}
	tests := []struct {
		name   string
		v      float64
		scale  chart.PrimaryScale
		isLast bool
		want   string
	}{
		{"rounds", 1.4, s, false, "1"},
		{"negative zero", -0.2, s, false, "0"},
		{"last gets affixes", 10, s, true, "$10%"},
		{"precision", 2.346, chart.PrimaryScale{Precision: 2}, false, "2.35"},
		{"negative precision", 7, chart.PrimaryScale{Precision: -1}, false, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTick(tt.v, tt.scale, tt.isLast); got != tt.want {
				t.Errorf("FormatTick(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestGetTickWidths(t *testing.T) {
	s := chart.PrimaryScale{TickValues: []float64{0, 50, 100}, Suffix: "%"}
	got := GetTickWidths(s, fonts.Font{Size: 14}, charMeasurer(7))
	want := TickWidths{Max: 28, Widths: []float64{7, 14, 28}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetTickWidths mismatch (-want +got):\n%s", diff)
	}

	empty := GetTickWidths(chart.PrimaryScale{}, fonts.Font{Size: 14}, charMeasurer(7))
	if empty.Max != 0 || len(empty.Widths) != 0 {
		t.Errorf("empty ticks = %+v, want zero", empty)
	}
}

func TestResolve(t *testing.T) {
	data := []chart.Series{{Values: []chart.Point{{Entry: "a", Value: 9.3}, {Entry: "b", Value: 2}}}}

	t.Run("derives domain and ticks", func(t *testing.T) {
		got := Resolve(chart.PrimaryScale{}, data)
		if diff := cmp.Diff([]float64{0, 10}, got.Domain, approx); diff != "" {
			t.Errorf("domain mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]float64{0, 2, 4, 6, 8, 10}, got.TickValues, approx); diff != "" {
			t.Errorf("ticks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("exact ticks from count", func(t *testing.T) {
		got := Resolve(chart.PrimaryScale{Domain: []float64{0, 100}, Ticks: 3}, data)
		if diff := cmp.Diff([]float64{0, 50, 100}, got.TickValues, approx); diff != "" {
			t.Errorf("ticks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		in := chart.PrimaryScale{Domain: []float64{0, 20}, TickValues: []float64{0, 20}}
		got := Resolve(in, data)
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("Resolve changed explicit scale (-want +got):\n%s", diff)
		}
	})

	t.Run("flat data", func(t *testing.T) {
		got := Resolve(chart.PrimaryScale{}, []chart.Series{{Values: []chart.Point{{Entry: "a", Value: 0}}}})
		if got.Domain[0] != 0 || got.Domain[1] <= 0 {
			t.Errorf("flat data domain = %v, want [0 >0]", got.Domain)
		}
	})
}

func TestGenerateScale(t *testing.T) {
	data := []chart.Series{
		{Values: []chart.Point{{Entry: "2019", Value: 1}, {Entry: "2020", Value: 2}}},
		{Values: []chart.Point{{Entry: "2020", Value: 3}, {Entry: "2021", Value: 4}}},
	}
	primary := chart.PrimaryScale{Domain: []float64{0, 4}, TickValues: []float64{0, 2, 4}}

	x, err := GenerateScale(KindOrdinal, primary, data, [2]float64{0, 300})
	if err != nil {
		t.Fatalf("ordinal: %v", err)
	}
	if diff := cmp.Diff([]string{"2019", "2020", "2021"}, x.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if x.Ordinal == nil || x.Linear != nil {
		t.Fatal("ordinal scale should set only Ordinal")
	}

	y, err := GenerateScale(KindLinear, primary, data, [2]float64{100, 20})
	if err != nil {
		t.Fatalf("linear: %v", err)
	}
	if got := y.Linear.Map(4); got != 20 {
		t.Errorf("linear top = %v, want 20", got)
	}
	if diff := cmp.Diff(primary.TickValues, y.TickValues); diff != "" {
		t.Errorf("tick values mismatch (-want +got):\n%s", diff)
	}

	if _, err := GenerateScale(KindLinear, chart.PrimaryScale{}, data, [2]float64{0, 1}); !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("linear without domain error = %v, want INVALID_CHART", err)
	}
	if _, err := GenerateScale("time", primary, data, [2]float64{0, 1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown kind error = %v, want INVALID_INPUT", err)
	}
}
