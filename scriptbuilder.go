// Copyright (c) 2013-2014 Conformal Systems LLC.
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"encoding/binary"
)

const (
	// defaultScriptAlloc is the default size used for the backing array
	// for a script being built by the ScriptBuilder.  The array will
	// dynamically grow as needed, but this figure is intended to provide
	// enough space for the vast majority of scripts without needing to
	// grow the backing array multiple times.
	defaultScriptAlloc = 500
)

// ScriptBuilder provides a facility for building custom scripts.  It
// allows you to push opcodes and data while respecting canonical push
// encoding.  It does not ensure the script will execute correctly under
// any particular registry.
//
// For example, the following would build a pay-to-pubkey-hash style
// script:
//
//	builder := scriptvm.NewScriptBuilder()
//	builder.AddOp(scriptvm.OP_DUP).AddOp(scriptvm.OP_HASH160)
//	builder.AddData(pubKeyHash)
//	builder.AddOp(scriptvm.OP_EQUALVERIFY).AddOp(scriptvm.OP_CHECKSIG)
//	fmt.Printf("final script: %x\n", builder.Script())
type ScriptBuilder struct {
	script []byte
}

// NewScriptBuilder returns a new instance of a script builder.  See
// ScriptBuilder for details.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, defaultScriptAlloc),
	}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	b.script = append(b.script, opcode)
	return b
}

// AddData pushes the passed data to the end of the script.  It
// automatically chooses the canonical push opcode depending on the length
// of the data: OP_0 for an empty push, a direct push for up to 75 bytes,
// and the smallest OP_PUSHDATA# form otherwise.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	dataLen := len(data)

	switch {
	case dataLen == 0:
		b.script = append(b.script, OP_0)
		return b

	case dataLen <= OP_DATA_75:
		b.script = append(b.script, byte((OP_DATA_1-1)+dataLen))

	case dataLen <= 0xff:
		b.script = append(b.script, OP_PUSHDATA1, byte(dataLen))

	case dataLen <= 0xffff:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, OP_PUSHDATA2)
		b.script = append(b.script, buf...)

	default:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.script = append(b.script, OP_PUSHDATA4)
		b.script = append(b.script, buf...)
	}

	// Append the actual data.
	b.script = append(b.script, data...)

	return b
}

// Reset resets the script so it has no content.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.script = b.script[0:0]
	return b
}

// Script returns the currently built script.
func (b *ScriptBuilder) Script() []byte {
	return b.script
}
