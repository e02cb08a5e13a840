// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
)

type Ops struct {
	// version is incremented at each Reset.
	version int
	// data contains the serialized operations.
	data []byte
	// refs hold external references for operations.
	refs []interface{}

	macroStack stack
	stacks     [2]stack
}

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeMacro OpType = iota + firstOpIndex
	TypeCall
	TypeTransform
	TypePopTransform
	TypePaint
	TypeColor
	TypeClip
	TypePopClip
)

type StackID struct {
	id   int
	prev int
}

// stack tracks the integer identities of stack operations to ensure correct
// pairing of their push and pop methods.
type stack struct {
	currentID int
	nextID    int
}

type StackKind uint8

const (
	ClipStack StackKind = iota
	TransStack
)

// PC is a position in an operation list.
type PC struct {
	data int
	refs int
}

// ClipOp is the decoded form of a clip operation.
type ClipOp struct {
	Bounds image.Rectangle
	// Radius of the corners. Zero means a sharp
	// rectangle.
	Radius float32
}

const (
	TypeMacroLen        = 1 + 4 + 4
	TypeCallLen         = 1 + 4 + 4 + 4
	TypeTransformLen    = 1 + 1 + 4*2
	TypePopTransformLen = 1
	TypePaintLen        = 1
	TypeColorLen        = 1 + 4
	TypeClipLen         = 1 + 4*4 + 4
	TypePopClipLen      = 1
)

func (o *Ops) Reset() {
	o.macroStack = stack{}
	for i := range o.stacks {
		o.stacks[i] = stack{}
	}
	// Leave references to the GC.
	for i := range o.refs {
		o.refs[i] = nil
	}
	o.data = o.data[:0]
	o.refs = o.refs[:0]
	o.version++
}

func (o *Ops) Data() []byte {
	return o.data
}

func (o *Ops) Refs() []interface{} {
	return o.refs
}

func (o *Ops) Version() int {
	return o.version
}

func (o *Ops) Write(n int) []byte {
	o.data = append(o.data, make([]byte, n)...)
	return o.data[len(o.data)-n:]
}

func (o *Ops) Write1(n int, ref1 interface{}) []byte {
	o.data = append(o.data, make([]byte, n)...)
	o.refs = append(o.refs, ref1)
	return o.data[len(o.data)-n:]
}

func (o *Ops) PushMacro() StackID {
	return o.macroStack.push()
}

func (o *Ops) PopMacro(id StackID) {
	o.macroStack.pop(id)
}

func (o *Ops) FillMacro(startPC PC) {
	pc := o.PC()
	// Fill out the macro definition reserved in Record.
	data := o.data[startPC.data:]
	data = data[:TypeMacroLen]
	data[0] = byte(TypeMacro)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(pc.data))
	bo.PutUint32(data[5:], uint32(pc.refs))
}

func (o *Ops) AddCall(callOps *Ops, pc PC, version int) {
	data := o.Write1(TypeCallLen, callOps)
	data[0] = byte(TypeCall)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(pc.data))
	bo.PutUint32(data[5:], uint32(pc.refs))
	bo.PutUint32(data[9:], uint32(version))
}

func (o *Ops) PushOp(kind StackKind) (StackID, int) {
	return o.stacks[kind].push(), o.macroStack.currentID
}

func (o *Ops) PopOp(kind StackKind, sid StackID, macroID int) {
	if o.macroStack.currentID != macroID {
		panic("stack push and pop must not cross macro boundary")
	}
	o.stacks[kind].pop(sid)
}

func (o *Ops) PC() PC {
	return PC{data: len(o.data), refs: len(o.refs)}
}

func (s *stack) push() StackID {
	s.nextID++
	sid := StackID{
		id:   s.nextID,
		prev: s.currentID,
	}
	s.currentID = s.nextID
	return sid
}

func (s *stack) check(sid StackID) {
	if s.currentID != sid.id {
		panic("unbalanced operation")
	}
}

func (s *stack) pop(sid StackID) {
	s.check(sid)
	s.currentID = sid.prev
}

func EncodeTransform(data []byte, off image.Point, push bool) {
	data[0] = byte(TypeTransform)
	if push {
		data[1] = 1
	}
	bo := binary.LittleEndian
	bo.PutUint32(data[2:], uint32(int32(off.X)))
	bo.PutUint32(data[6:], uint32(int32(off.Y)))
}

func DecodeTransform(data []byte) (off image.Point, push bool) {
	if OpType(data[0]) != TypeTransform {
		panic("invalid op")
	}
	push = data[1] != 0
	bo := binary.LittleEndian
	off.X = int(int32(bo.Uint32(data[2:])))
	off.Y = int(int32(bo.Uint32(data[6:])))
	return off, push
}

func EncodeColor(data []byte, c color.NRGBA) {
	data[0] = byte(TypeColor)
	data[1] = c.R
	data[2] = c.G
	data[3] = c.B
	data[4] = c.A
}

func DecodeColor(data []byte) color.NRGBA {
	if OpType(data[0]) != TypeColor {
		panic("invalid op")
	}
	return color.NRGBA{R: data[1], G: data[2], B: data[3], A: data[4]}
}

func (c ClipOp) Encode(data []byte) {
	data[0] = byte(TypeClip)
	bo := binary.LittleEndian
	bo.PutUint32(data[1:], uint32(int32(c.Bounds.Min.X)))
	bo.PutUint32(data[5:], uint32(int32(c.Bounds.Min.Y)))
	bo.PutUint32(data[9:], uint32(int32(c.Bounds.Max.X)))
	bo.PutUint32(data[13:], uint32(int32(c.Bounds.Max.Y)))
	bo.PutUint32(data[17:], math.Float32bits(c.Radius))
}

func (c *ClipOp) Decode(data []byte) {
	if OpType(data[0]) != TypeClip {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	r := image.Rectangle{
		Min: image.Point{
			X: int(int32(bo.Uint32(data[1:]))),
			Y: int(int32(bo.Uint32(data[5:]))),
		},
		Max: image.Point{
			X: int(int32(bo.Uint32(data[9:]))),
			Y: int(int32(bo.Uint32(data[13:]))),
		},
	}
	*c = ClipOp{
		Bounds: r,
		Radius: math.Float32frombits(bo.Uint32(data[17:])),
	}
}

func (t OpType) Size() int {
	return [...]int{
		TypeMacroLen,
		TypeCallLen,
		TypeTransformLen,
		TypePopTransformLen,
		TypePaintLen,
		TypeColorLen,
		TypeClipLen,
		TypePopClipLen,
	}[t-firstOpIndex]
}

func (t OpType) NumRefs() int {
	switch t {
	case TypeCall:
		return 1
	default:
		return 0
	}
}

func (t OpType) String() string {
	switch t {
	case TypeMacro:
		return "Macro"
	case TypeCall:
		return "Call"
	case TypeTransform:
		return "Transform"
	case TypePopTransform:
		return "PopTransform"
	case TypePaint:
		return "Paint"
	case TypeColor:
		return "Color"
	case TypeClip:
		return "Clip"
	case TypePopClip:
		return "PopClip"
	default:
		panic("unknown OpType")
	}
}
