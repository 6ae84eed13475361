package styles

import (
	"regexp"
	"testing"

	"github.com/matzehuels/chartgrid/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#1F77B4", "#1f77b4", false},
		{"ff7f0e", "#ff7f0e", false},
		{"#f80", "#ff8800", false},
		{" #000000 ", "#000000", false},
		{"", "", true},
		{"#12345", "", true},
		{"red", "", true},
		{"#gggggg", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Fatalf("ParseColor(%q) error = %v, want INVALID_CONFIG", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.in, err)
			}
			if got := Hex(c); got != tt.want {
				t.Errorf("Hex(ParseColor(%q)) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteWraps(t *testing.T) {
	p, err := NewPalette([]string{"#111111", "#222222", "#333333"})
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	tests := []struct {
		index int
		want  string
	}{
		{0, "#111111"},
		{2, "#333333"},
		{3, "#111111"},
		{7, "#222222"},
		{-1, "#333333"},
	}
	for _, tt := range tests {
		if got := p.Hex(tt.index); got != tt.want {
			t.Errorf("Hex(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestPaletteEmpty(t *testing.T) {
	var p Palette
	if !regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString(p.Hex(4)) {
		t.Errorf("empty palette Hex = %q, want a hex color", p.Hex(4))
	}
}

func TestNewPaletteRejectsGarbage(t *testing.T) {
	_, err := NewPalette([]string{"#111111", "nope"})
	if err == nil {
		t.Fatal("NewPalette should fail on an invalid color")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("code = %q, want INVALID_CONFIG", errors.GetCode(err))
	}
}
