// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/assessment/layoutmodifier/op"
)

// ErrInvalidConstraints is matched by errors for constraints with
// negative bounds or a minimum larger than the maximum.
var ErrInvalidConstraints = errors.New("layout: invalid constraints")

// ConstraintsError describes the offending axis of malformed
// constraints.
type ConstraintsError struct {
	Axis       Axis
	Constraint Constraint
}

// Placer computes the offset of a measured child relative to the
// position its parent would otherwise assign it.
type Placer interface {
	Place(size image.Point) image.Point
}

// Fraction places a child left of its default position by a
// fraction of its own width. Fractions outside [0, 1] are
// allowed and move the child by more than its width.
type Fraction float32

// FixedOffset places a child at a fixed offset in pixels, regardless
// of its size.
type FixedOffset image.Point

// Placement is the result of a single measurement pass.
type Placement struct {
	// Size is the size reported to the parent. It is the measured
	// size of the child; placement never changes the space reserved
	// for it.
	Size image.Point
	// Offset is the left-to-right offset of the child.
	Offset image.Point
}

// Measured is a child that has been measured but not yet placed.
// A Measured is placed at most once.
type Measured struct {
	// Dimensions of the child, as measured.
	Dimensions Dimensions

	call   op.CallOp
	placed bool
}

func (e *ConstraintsError) Error() string {
	return fmt.Sprintf("layout: invalid %s constraint [%d, %d]",
		e.Axis, e.Constraint.Min, e.Constraint.Max)
}

func (e *ConstraintsError) Unwrap() error {
	return ErrInvalidConstraints
}

// Valid reports whether c has non-negative bounds and
// Min <= Max.
func (c Constraint) Valid() bool {
	return c.Min >= 0 && c.Max >= 0 && c.Min <= c.Max
}

// Validate returns a *ConstraintsError for the first axis of c
// that is not valid.
func (c Constraints) Validate() error {
	if !c.Width.Valid() {
		return &ConstraintsError{Axis: Horizontal, Constraint: c.Width}
	}
	if !c.Height.Valid() {
		return &ConstraintsError{Axis: Vertical, Constraint: c.Height}
	}
	return nil
}

// Place returns the offset -round(width*f), 0, rounded half away from
// zero.
func (f Fraction) Place(size image.Point) image.Point {
	x := float32(size.X) * float32(f)
	return image.Point{X: -int(math.Round(float64(x)))}
}

func (f FixedOffset) Place(image.Point) image.Point {
	return image.Point(f)
}

// Relative returns the offset to apply in a layout with the given
// direction. Right-to-left layouts mirror the horizontal offset.
func (p Placement) Relative(rtl bool) image.Point {
	off := p.Offset
	if rtl {
		off.X = -off.X
	}
	return off
}

// Compute the placement of a child of the given measured size. The
// size is reported unchanged; cs is checked but never used to clamp.
func Compute(cs Constraints, size image.Point, p Placer) (Placement, error) {
	if err := cs.Validate(); err != nil {
		return Placement{}, err
	}
	return place(size, p), nil
}

func place(size image.Point, p Placer) Placement {
	return Placement{Size: size, Offset: p.Place(size)}
}

// MeasureOnce measures w against gtx.Constraints. The operations of
// w are recorded and only added to gtx.Ops by Place.
func MeasureOnce(gtx Context, w Widget) (*Measured, error) {
	if err := gtx.Constraints.Validate(); err != nil {
		return nil, err
	}
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return &Measured{Dimensions: dims, call: call}, nil
}

// Place the measured child with p, adding its operations under the
// resulting offset. Place panics if called more than once.
func (m *Measured) Place(gtx Context, p Placer) Placement {
	if m.placed {
		panic("layout: measured child placed twice")
	}
	m.placed = true
	pl := place(m.Dimensions.Size, p)
	trans := op.Offset(pl.Relative(gtx.RTL)).Push(gtx.Ops)
	m.call.Add(gtx.Ops)
	trans.Pop()
	return pl
}

// Measure w once against gtx.Constraints and place it left by
// fraction of its measured width.
func Measure(gtx Context, fraction float32, w Widget) (Placement, error) {
	m, err := MeasureOnce(gtx, w)
	if err != nil {
		return Placement{}, err
	}
	return m.Place(gtx, Fraction(fraction)), nil
}
