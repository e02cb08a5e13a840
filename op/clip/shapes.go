// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"image"

	"github.com/assessment/layoutmodifier/op"
)

// Rect represents the clip area of a pixel-aligned rectangle.
type Rect image.Rectangle

// Op returns the op for the rectangle.
func (r Rect) Op() Op {
	return Op{bounds: image.Rectangle(r).Canon()}
}

// Push the clip operation on the clip stack.
func (r Rect) Push(ops *op.Ops) Stack {
	return r.Op().Push(ops)
}

// RRect represents the clip area of a rectangle with rounded
// corners.
//
// Specify a square with a radius equal to half the square size to
// construct a circular clip area.
type RRect struct {
	Rect image.Rectangle
	// Radius of every corner, in pixels.
	Radius float32
}

// Op returns the op for the rounded rectangle.
func (rr RRect) Op() Op {
	r := rr.Rect.Canon()
	lim := float32(r.Dx())
	if h := float32(r.Dy()); h < lim {
		lim = h
	}
	rad := rr.Radius
	if rad < 0 {
		rad = 0
	}
	if rad > lim/2 {
		rad = lim / 2
	}
	return Op{bounds: r, radius: rad}
}

// Push the clip operation on the clip stack.
func (rr RRect) Push(ops *op.Ops) Stack {
	return rr.Op().Push(ops)
}
