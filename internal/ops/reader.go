// SPDX-License-Identifier: Unlicense OR MIT

package ops

import (
	"encoding/binary"
)

// Reader parses an ops list. Macro definitions are skipped and
// calls are followed, so the caller sees a flat stream of
// operations.
type Reader struct {
	pc    PC
	stack []macro
	ops   *Ops
}

// EncodedOp represents an encoded op returned by
// Reader.
type EncodedOp struct {
	Data []byte
	Refs []interface{}
}

type macro struct {
	ops   *Ops
	retPC PC
	endPC PC
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *Ops) {
	r.stack = r.stack[:0]
	r.pc = PC{}
	r.ops = ops
}

func (r *Reader) Decode() (EncodedOp, bool) {
	if r.ops == nil {
		return EncodedOp{}, false
	}
	for {
		if len(r.stack) > 0 {
			b := r.stack[len(r.stack)-1]
			if r.pc == b.endPC {
				r.ops = b.ops
				r.pc = b.retPC
				r.stack = r.stack[:len(r.stack)-1]
				continue
			}
		}
		data := r.ops.Data()
		data = data[r.pc.data:]
		if len(data) == 0 {
			return EncodedOp{}, false
		}
		t := OpType(data[0])
		n := t.Size()
		nrefs := t.NumRefs()
		data = data[:n]
		refs := r.ops.Refs()
		refs = refs[r.pc.refs:]
		refs = refs[:nrefs]
		switch t {
		case TypeMacro:
			// Definitions are only executed through calls.
			r.pc = decodeMacro(data)
			continue
		case TypeCall:
			callOps := refs[0].(*Ops)
			start, version := decodeCall(data)
			if version != callOps.Version() {
				panic("invalid CallOp reference to reset Ops")
			}
			macroData := callOps.Data()[start.data:]
			if OpType(macroData[0]) != TypeMacro {
				panic("invalid macro reference")
			}
			endPC := decodeMacro(macroData[:TypeMacroLen])
			retPC := r.pc
			retPC.data += n
			retPC.refs += nrefs
			r.stack = append(r.stack, macro{
				ops:   r.ops,
				retPC: retPC,
				endPC: endPC,
			})
			r.ops = callOps
			r.pc = start
			r.pc.data += TypeMacroLen
			continue
		}
		r.pc.data += n
		r.pc.refs += nrefs
		return EncodedOp{Data: data, Refs: refs}, true
	}
}

func decodeMacro(data []byte) PC {
	if OpType(data[0]) != TypeMacro {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	return PC{
		data: int(int32(bo.Uint32(data[1:]))),
		refs: int(int32(bo.Uint32(data[5:]))),
	}
}

func decodeCall(data []byte) (PC, int) {
	if OpType(data[0]) != TypeCall {
		panic("invalid op")
	}
	bo := binary.LittleEndian
	pc := PC{
		data: int(int32(bo.Uint32(data[1:]))),
		refs: int(int32(bo.Uint32(data[5:]))),
	}
	return pc, int(int32(bo.Uint32(data[9:])))
}
