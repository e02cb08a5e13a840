// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"image"
	"image/color"
	"testing"
)

func TestReaderFollowsCalls(t *testing.T) {
	var o Ops
	// Macro holding a single color op.
	id := o.PushMacro()
	start := o.PC()
	o.Write(TypeMacroLen)
	o.FillMacro(start)
	EncodeColor(o.Write(TypeColorLen), color.NRGBA{B: 0xff, A: 0xff})
	o.FillMacro(start)
	o.PopMacro(id)

	EncodeTransform(o.Write(TypeTransformLen), image.Pt(-25, 0), true)
	o.AddCall(&o, start, o.Version())
	o.Write(TypePopTransformLen)[0] = byte(TypePopTransform)
	o.AddCall(&o, start, o.Version())

	var r Reader
	r.Reset(&o)
	var got []OpType
	for op, ok := r.Decode(); ok; op, ok = r.Decode() {
		got = append(got, OpType(op.Data[0]))
	}
	want := []OpType{TypeTransform, TypeColor, TypePopTransform, TypeColor}
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReaderStaleCall(t *testing.T) {
	var macroOps, o Ops
	start := macroOps.PC()
	macroOps.Write(TypeMacroLen)
	macroOps.FillMacro(start)
	o.AddCall(&macroOps, start, macroOps.Version())
	macroOps.Reset()
	defer func() {
		if err := recover(); err == nil {
			t.Error("call into reset Ops didn't panic")
		}
	}()
	var r Reader
	r.Reset(&o)
	r.Decode()
}

func TestEncodeRoundTrip(t *testing.T) {
	data := make([]byte, TypeTransformLen)
	EncodeTransform(data, image.Pt(-3, 7), true)
	off, push := DecodeTransform(data)
	if off != image.Pt(-3, 7) || !push {
		t.Errorf("DecodeTransform = %v, %v", off, push)
	}

	clip := ClipOp{Bounds: image.Rect(-1, 2, 50, 10), Radius: 2.5}
	data = make([]byte, TypeClipLen)
	clip.Encode(data)
	var dec ClipOp
	dec.Decode(data)
	if dec != clip {
		t.Errorf("ClipOp round trip: got %+v, want %+v", dec, clip)
	}
}
