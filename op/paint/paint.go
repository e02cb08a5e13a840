// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"

	"github.com/assessment/layoutmodifier/internal/ops"
	"github.com/assessment/layoutmodifier/op"
	"github.com/assessment/layoutmodifier/op/clip"
)

// ColorOp sets the brush to a constant color.
type ColorOp struct {
	Color color.NRGBA
}

// PaintOp fills the current clip area with the current brush.
type PaintOp struct{}

func (c ColorOp) Add(o *op.Ops) {
	data := o.Internal.Write(ops.TypeColorLen)
	ops.EncodeColor(data, c.Color)
}

func (d PaintOp) Add(o *op.Ops) {
	data := o.Internal.Write(ops.TypePaintLen)
	data[0] = byte(ops.TypePaint)
}

// FillShape fills the clip shape with a color.
func FillShape(ops *op.Ops, c color.NRGBA, shape clip.Op) {
	defer shape.Push(ops).Pop()
	Fill(ops, c)
}

// Fill paints an infinitely large plane with the provided color. It
// is intended to be used with a clip.Op already in place to limit
// the painted area. Use FillShape unless you need to paint several
// times within the same clip.Op.
func Fill(ops *op.Ops, c color.NRGBA) {
	ColorOp{Color: c}.Add(ops)
	PaintOp{}.Add(ops)
}
