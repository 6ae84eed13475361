package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartgrid/pkg/chart"
	"github.com/matzehuels/chartgrid/pkg/errors"
)

// Format is a chart document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is a chart document.
type Document struct {
	ChartProps chart.Props       `json:"chartProps" yaml:"chartProps"`
	Metadata   chart.Metadata    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Dimensions *chart.Dimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Editable   bool              `json:"editable,omitempty" yaml:"editable,omitempty"`
}

// FormatFromPath returns the document format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format from %q: want .json, .yaml or .yml", path)
}

// ReadChart decodes a chart document in the given format from r.
// It does not validate the chart properties; see [chart.Props.Validate].
// ReadChart does not close r.
func ReadChart(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json chart")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if err == io.EOF {
				return Document{}, errors.New(errors.ErrCodeInvalidInput, "empty yaml chart")
			}
			return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml chart")
		}
	default:
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	if d := doc.Dimensions; d != nil {
		if err := d.Validate(); err != nil {
			return Document{}, err
		}
	}
	return doc, nil
}

// ReadChartFile reads the chart document at path.
func ReadChartFile(path string) (Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Document{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart %s not found", path)
	}
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadChart(f, format)
	if err != nil {
		return Document{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return doc, nil
}
