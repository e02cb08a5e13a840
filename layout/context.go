// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/assessment/layoutmodifier/op"
	"github.com/assessment/layoutmodifier/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// A zero value Context maps units to pixels with a scale of 1.0
// and lays out left-to-right.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints

	Metric unit.Metric
	// RTL mirrors relative placements, for right-to-left
	// layouts.
	RTL bool

	Ops *op.Ops
}

// NewContext is a shorthand for
//
//	Context{
//	  Ops: ops,
//	  Metric: m,
//	  Constraints: Exact(size),
//	}
//
// NewContext calls ops.Reset.
func NewContext(ops *op.Ops, m unit.Metric, size image.Point) Context {
	ops.Reset()
	return Context{
		Ops:         ops,
		Metric:      m,
		Constraints: Exact(size),
	}
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}
