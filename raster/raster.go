// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a CPU rasterizer for operation lists.

The rasterizer supports integer offsets, rectangular and rounded
clip areas and constant colors, which is sufficient for previewing
layouts without a GPU.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/assessment/layoutmodifier/internal/ops"
	"github.com/assessment/layoutmodifier/op"
	"golang.org/x/image/vector"
)

type Rasterizer struct {
	reader ops.Reader

	scratch struct {
		transforms []image.Point
		clips      []clipState
	}
}

type clipState struct {
	// rect is the clip area in frame coordinates.
	rect   image.Rectangle
	radius float32
	// bounds is the intersection of rect with
	// every enclosing clip.
	bounds image.Rectangle
	// rounded reports whether this or any enclosing clip
	// has rounded corners.
	rounded bool
}

// Frame executes the operations in frame, drawing into frameBuf.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	d := &r.reader
	d.Reset(&frame.Internal)

	stack := r.scratch.transforms[:0]
	clips := r.scratch.clips[:0]
	defer func() {
		r.scratch.transforms = stack
		r.scratch.clips = clips
	}()
	var state struct {
		off      image.Point
		material color.NRGBA
	}
	for encOp, ok := d.Decode(); ok; encOp, ok = d.Decode() {
		switch ops.OpType(encOp.Data[0]) {
		case ops.TypeTransform:
			off, push := ops.DecodeTransform(encOp.Data)
			if push {
				stack = append(stack, state.off)
			}
			state.off = state.off.Add(off)
		case ops.TypePopTransform:
			state.off = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case ops.TypeClip:
			var op ops.ClipOp
			op.Decode(encOp.Data)
			c := clipState{
				rect:    op.Bounds.Add(state.off),
				radius:  op.Radius,
				rounded: op.Radius > 0,
			}
			c.bounds = c.rect
			if len(clips) > 0 {
				parent := clips[len(clips)-1]
				c.bounds = c.bounds.Intersect(parent.bounds)
				c.rounded = c.rounded || parent.rounded
			}
			clips = append(clips, c)
		case ops.TypePopClip:
			clips = clips[:len(clips)-1]
		case ops.TypeColor:
			state.material = ops.DecodeColor(encOp.Data)
		case ops.TypePaint:
			bounds := frameBuf.Bounds()
			rounded := false
			if len(clips) > 0 {
				top := clips[len(clips)-1]
				bounds = bounds.Intersect(top.bounds)
				rounded = top.rounded
			}
			if bounds.Empty() {
				break
			}
			src := image.NewUniform(state.material)
			if !rounded {
				draw.Draw(frameBuf, bounds, src, image.Point{}, draw.Over)
				break
			}
			mask := clipMask(clips, bounds)
			draw.DrawMask(frameBuf, bounds, src, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
}

// clipMask returns the coverage of the rounded clips, relative to
// bounds.Min.
func clipMask(clips []clipState, bounds image.Rectangle) *image.Alpha {
	sz := bounds.Size()
	var mask *image.Alpha
	for _, c := range clips {
		if c.radius == 0 {
			continue
		}
		vr := vector.NewRasterizer(sz.X, sz.Y)
		vr.DrawOp = draw.Src
		rrectPath(vr, c.rect.Sub(bounds.Min), c.radius)
		m := image.NewAlpha(image.Rectangle{Max: sz})
		vr.Draw(m, m.Bounds(), image.Opaque, image.Point{})
		if mask == nil {
			mask = m
			continue
		}
		for i, a := range m.Pix {
			if a < mask.Pix[i] {
				mask.Pix[i] = a
			}
		}
	}
	return mask
}

func rrectPath(p *vector.Rasterizer, rect image.Rectangle, rad float32) {
	// https://pomax.github.io/bezierinfo/#circles_cubic.
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q

	w, n := float32(rect.Min.X), float32(rect.Min.Y)
	e, s := float32(rect.Max.X), float32(rect.Max.Y)

	p.MoveTo(w+rad, n)
	p.LineTo(e-rad, n) // N
	p.CubeTo(e-rad*iq, n, e, n+rad*iq, e, n+rad) // NE
	p.LineTo(e, s-rad) // E
	p.CubeTo(e, s-rad*iq, e-rad*iq, s, e-rad, s) // SE
	p.LineTo(w+rad, s) // S
	p.CubeTo(w+rad*iq, s, w, s-rad*iq, w, s-rad) // SW
	p.LineTo(w, n+rad) // W
	p.CubeTo(w, n+rad*iq, w+rad*iq, n, w+rad, n) // NW
	p.ClosePath()
}
