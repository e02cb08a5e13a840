// SPDX-License-Identifier: Unlicense OR MIT

package clip

import (
	"image"

	"github.com/assessment/layoutmodifier/internal/ops"
	"github.com/assessment/layoutmodifier/op"
)

// Op represents a clip area. Op intersects the current clip area with
// itself.
type Op struct {
	bounds image.Rectangle
	radius float32
}

// Stack represents an Op pushed on the clip stack.
type Stack struct {
	ops     *ops.Ops
	id      ops.StackID
	macroID int
}

// Push saves the current clip state on the stack and updates the current
// state to the intersection of the current clip and p.
func (p Op) Push(o *op.Ops) Stack {
	id, macroID := o.Internal.PushOp(ops.ClipStack)
	p.add(o)
	return Stack{ops: &o.Internal, id: id, macroID: macroID}
}

func (p Op) add(o *op.Ops) {
	data := o.Internal.Write(ops.TypeClipLen)
	ops.ClipOp{Bounds: p.bounds, Radius: p.radius}.Encode(data)
}

// Pop the clip area from the stack, restoring the area in effect
// before it was pushed.
func (s Stack) Pop() {
	s.ops.PopOp(ops.ClipStack, s.id, s.macroID)
	data := s.ops.Write(ops.TypePopClipLen)
	data[0] = byte(ops.TypePopClip)
}
