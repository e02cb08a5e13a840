// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/assessment/layoutmodifier/op"
	"github.com/assessment/layoutmodifier/unit"
)

// Constraints represent a set of acceptable ranges for
// a widget's width and height.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Constraint is a range of acceptable sizes in a single
// dimension.
type Constraint struct {
	Min, Max int
}

// Dimensions are the resolved size and baseline for a widget.
//
// Baseline is the distance from the bottom of a widget to the baseline of
// any text it contains (or 0). The purpose is to be able to align text
// that span multiple widgets.
type Dimensions struct {
	Size     image.Point
	Baseline int
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

// Widget is a function scope for drawing, processing events and
// computing dimensions for a user interface element.
type Widget func(gtx Context) Dimensions

const (
	Horizontal Axis = iota
	Vertical
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Width:  Constraint{Min: size.X, Max: size.X},
		Height: Constraint{Min: size.Y, Max: size.Y},
	}
}

// Min returns the minimum size of c.
func (c Constraints) Min() image.Point {
	return image.Point{X: c.Width.Min, Y: c.Height.Min}
}

// Max returns the maximum size of c.
func (c Constraints) Max() image.Point {
	return image.Point{X: c.Width.Max, Y: c.Height.Max}
}

// Constrain a value to the range [Min; Max].
func (c Constraint) Constrain(v int) int {
	if v < c.Min {
		return c.Min
	} else if v > c.Max {
		return c.Max
	}
	return v
}

// Constrain a size so each dimension is in the range [min;max].
func (c Constraints) Constrain(size image.Point) image.Point {
	return image.Point{X: c.Width.Constrain(size.X), Y: c.Height.Constrain(size.Y)}
}

// Inset adds space around a widget by decreasing its maximum
// constraints. The minimum constraints will be adjusted to ensure
// they do not exceed the maximum.
type Inset struct {
	Top, Bottom, Left, Right unit.Dp
}

// Layout a widget.
func (in Inset) Layout(gtx Context, w Widget) Dimensions {
	top := gtx.Dp(in.Top)
	right := gtx.Dp(in.Right)
	bottom := gtx.Dp(in.Bottom)
	left := gtx.Dp(in.Left)
	mcs := gtx.Constraints
	mcs.Width.Max -= left + right
	if mcs.Width.Max < 0 {
		left = 0
		right = 0
		mcs.Width.Max = 0
	}
	if mcs.Width.Min > mcs.Width.Max {
		mcs.Width.Min = mcs.Width.Max
	}
	mcs.Height.Max -= top + bottom
	if mcs.Height.Max < 0 {
		bottom = 0
		top = 0
		mcs.Height.Max = 0
	}
	if mcs.Height.Min > mcs.Height.Max {
		mcs.Height.Min = mcs.Height.Max
	}
	gtx.Constraints = mcs
	trans := op.Offset(image.Pt(left, top)).Push(gtx.Ops)
	dims := w(gtx)
	trans.Pop()
	return Dimensions{
		Size:     dims.Size.Add(image.Point{X: right + left, Y: top + bottom}),
		Baseline: dims.Baseline + bottom,
	}
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Dp) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Sized lays out a widget with a fixed size, coerced into the
// incoming constraints.
type Sized struct {
	Width, Height unit.Dp
}

// Layout a widget.
func (s Sized) Layout(gtx Context, w Widget) Dimensions {
	sz := image.Pt(gtx.Dp(s.Width), gtx.Dp(s.Height))
	sz = gtx.Constraints.Constrain(sz)
	gtx.Constraints = Exact(sz)
	dims := w(gtx)
	dims.Size = gtx.Constraints.Constrain(dims.Size)
	return dims
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
