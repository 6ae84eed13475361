package chart

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartgrid/pkg/errors"
)

// Upper bounds on the size of a chart grid.
const (
	MaxGridSize  = 64    // rows or columns
	MaxTicks     = 100   // primaryScale.ticks and len(primaryScale.tickValues)
	MaxDimension = 10000 // width or height in pixels
)

// Validate checks the caller contract of a chart grid.
//
// Mismatched chartSettings/data lengths, a grid too small for the data,
// oversized grids or tick counts and unknown series types are all reported
// as INVALID_CHART. Validate does not check numeric ranges of the data itself.
func (p Props) Validate() error {
	if p.Grid.Rows < 1 || p.Grid.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidChart, "grid must have at least one row and one column, got %dx%d", p.Grid.Rows, p.Grid.Cols)
	}
	if p.Grid.Rows > MaxGridSize || p.Grid.Cols > MaxGridSize {
		return errors.New(errors.ErrCodeInvalidChart, "grid is limited to %dx%d, got %dx%d", MaxGridSize, MaxGridSize, p.Grid.Rows, p.Grid.Cols)
	}
	if len(p.ChartSettings) != len(p.Data) {
		return errors.New(errors.ErrCodeInvalidChart, "chartSettings has %d entries, data has %d", len(p.ChartSettings), len(p.Data))
	}
	if len(p.Data) > p.Grid.Cells() {
		return errors.New(errors.ErrCodeInvalidChart, "%d series do not fit a %dx%d grid", len(p.Data), p.Grid.Rows, p.Grid.Cols)
	}
	for i, s := range p.ChartSettings {
		if !s.Type.Valid() {
			return errors.New(errors.ErrCodeInvalidChart, "chartSettings[%d]: unknown series type %q", i, s.Type)
		}
		if err := errors.ValidateLabel(fmt.Sprintf("chartSettings[%d].label", i), s.Label); err != nil {
			return err
		}
	}
	for i, d := range p.Data {
		for j, v := range d.Values {
			if err := errors.ValidateLabel(fmt.Sprintf("data[%d].values[%d].entry", i, j), v.Entry); err != nil {
				return err
			}
		}
	}
	if ps := p.Scale.PrimaryScale; len(ps.Domain) != 0 && len(ps.Domain) != 2 {
		return errors.New(errors.ErrCodeInvalidChart, "primaryScale.domain must have two values, got %d", len(ps.Domain))
	}
	return p.Scale.PrimaryScale.validate()
}

func (s PrimaryScale) validate() error {
	if s.Ticks < 0 || s.Ticks > MaxTicks {
		return errors.New(errors.ErrCodeInvalidChart, "primaryScale.ticks must be between 0 and %d, got %d", MaxTicks, s.Ticks)
	}
	if len(s.TickValues) > MaxTicks {
		return errors.New(errors.ErrCodeInvalidChart, "primaryScale.tickValues is limited to %d values, got %d", MaxTicks, len(s.TickValues))
	}
	for i, v := range s.Domain {
		if !finite(v) {
			return errors.New(errors.ErrCodeInvalidChart, "primaryScale.domain[%d] is not finite", i)
		}
	}
	for i, v := range s.TickValues {
		if !finite(v) {
			return errors.New(errors.ErrCodeInvalidChart, "primaryScale.tickValues[%d] is not finite", i)
		}
	}
	return nil
}

// Validate reports INVALID_INPUT unless both sides are finite and within
// 0..MaxDimension. Zero means unset.
func (d Dimensions) Validate() error {
	for _, v := range []float64{d.Width, d.Height} {
		if !finite(v) || v < 0 || v > MaxDimension {
			return errors.New(errors.ErrCodeInvalidInput, "dimensions must be between 0 and %d, got %vx%v", MaxDimension, d.Width, d.Height)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
