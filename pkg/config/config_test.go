package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartgrid/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chartgrid.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
[style]
font_family = "Georgia"
colors = ["#111111", "#222"]

[style.font_sizes]
medium = 16

[display.margin]
top = 60

[display.grid_padding]
x_inner_padding = 0.25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Style.FontFamily = "Georgia"
	want.Style.Colors = []string{"#111111", "#222"}
	want.Style.FontSizes.Medium = 16
	want.Display.Margin.Top = 60
	want.Display.GridPadding.XInnerPadding = 0.25
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
		msg     string
	}{
		{"syntax", "[style\n", errors.ErrCodeInvalidConfig, "parse"},
		{"unknown key", "[style]\nfont_colour = \"red\"\n", errors.ErrCodeInvalidConfig, "style.font_colour"},
		{"bad color", "[style]\ncolors = [\"blue\"]\n", errors.ErrCodeInvalidConfig, "palette"},
		{"empty palette", "[style]\ncolors = []\n", errors.ErrCodeInvalidConfig, "colors"},
		{"grid padding", "[display.grid_padding]\ny_inner_padding = 1.5\n", errors.ErrCodeInvalidConfig, "y_inner_padding"},
		{"font size", "[style.font_sizes]\nsmall = 0\n", errors.ErrCodeInvalidConfig, "small"},
		{"negative margin", "[display.margin]\nleft = -1\n", errors.ErrCodeInvalidConfig, "margin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Fatalf("Load error = %v, want code %s", err, tt.code)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q should mention %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("LoadOrDefault(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg, err := Load(writeFile(t, buf.String()))
	if err != nil {
		t.Fatalf("Load(encoded default): %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
