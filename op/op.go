// SPDX-License-Identifier: Unlicense OR MIT

/*

Package op implements operations for describing a user interface.

Programs use operations, or ops, for describing their user
interfaces. There are operations for drawing and for controlling the
execution of other operations.

Ops represents a list of operations. An Ops list is executed by a
renderer, such as the CPU rasterizer in package raster.

Drawing a colored square:

	ops := new(op.Ops)
	...
	ops.Reset()
	paint.ColorOp{Color: ...}.Add(ops)
	paint.PaintOp{}.Add(ops)
	var r raster.Rasterizer
	r.Frame(ops, img)

State

An Ops list can be viewed as a very simple virtual machine: it has state such
as transformation and color and execution flow can be controlled with macros.

The offset transformation is pushed and popped in a stack-like manner:

	ops := new(op.Ops)
	// Offset subsequent operations.
	stack := op.Offset(image.Pt(-25, 0)).Push(ops)
	...
	// Restore the previous transform.
	stack.Pop()

The MacroOp records a list of operations to be executed later:

	ops := new(op.Ops)
	macro := op.Record(ops)
	// Record operations by adding them.
	...
	// End recording.
	call := macro.Stop()

	// replay the recorded operations:
	call.Add(ops)

Recording and replaying is how a layout measures a child before it
knows where to place it.

*/
package op

import (
	"image"

	"github.com/assessment/layoutmodifier/internal/ops"
)

// Ops holds a list of operations. Operations are stored in
// serialized form to avoid garbage during construction of
// the ops list.
type Ops struct {
	// Internal is for internal use, despite being exported.
	Internal ops.Ops
}

// MacroOp records a list of operations for later use.
type MacroOp struct {
	ops     *ops.Ops
	id      ops.StackID
	pc      ops.PC
	version int
}

// CallOp invokes the operations recorded by Record.
type CallOp struct {
	ops     *ops.Ops
	pc      ops.PC
	version int
}

// TransformOp represents an integer offset of the
// current transformation.
type TransformOp struct {
	offset image.Point
}

// TransformStack represents a TransformOp pushed on the transformation stack.
type TransformStack struct {
	id      ops.StackID
	macroID int
	ops     *ops.Ops
}

// Record a macro of operations.
func Record(o *Ops) MacroOp {
	m := MacroOp{
		ops:     &o.Internal,
		id:      o.Internal.PushMacro(),
		pc:      o.Internal.PC(),
		version: o.Internal.Version(),
	}
	// Reserve room for a macro definition. Updated in Stop.
	m.ops.Write(ops.TypeMacroLen)
	m.fill()
	return m
}

// Stop ends a previously started recording and returns an
// operation for replaying it.
func (m MacroOp) Stop() CallOp {
	m.ops.PopMacro(m.id)
	m.fill()
	return CallOp{
		ops:     m.ops,
		pc:      m.pc,
		version: m.version,
	}
}

func (m MacroOp) fill() {
	m.ops.FillMacro(m.pc)
}

// Add the recorded list of operations. Add
// panics if the Ops containing the recording
// has been reset.
func (c CallOp) Add(o *Ops) {
	if c.ops == nil {
		return
	}
	if c.version != c.ops.Version() {
		panic("CallOp added after its Ops was reset")
	}
	o.Internal.AddCall(c.ops, c.pc, c.version)
}

// Offset creates a TransformOp by the offset o.
func Offset(o image.Point) TransformOp {
	return TransformOp{offset: o}
}

// Offset returns the integer offset of the transformation.
func (t TransformOp) Offset() image.Point {
	return t.offset
}

// Push the current transformation to the stack and then multiply the
// current transformation with t.
func (t TransformOp) Push(o *Ops) TransformStack {
	id, macroID := o.Internal.PushOp(ops.TransStack)
	t.add(o, true)
	return TransformStack{ops: &o.Internal, id: id, macroID: macroID}
}

// Add is like Push except it doesn't push the current transformation to the
// stack.
func (t TransformOp) Add(o *Ops) {
	t.add(o, false)
}

func (t TransformOp) add(o *Ops, push bool) {
	data := o.Internal.Write(ops.TypeTransformLen)
	ops.EncodeTransform(data, t.offset, push)
}

func (t TransformStack) Pop() {
	t.ops.PopOp(ops.TransStack, t.id, t.macroID)
	data := t.ops.Write(ops.TypePopTransformLen)
	data[0] = byte(ops.TypePopTransform)
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded macros.
func (o *Ops) Reset() {
	o.Internal.Reset()
}
