// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"encoding/binary"
	"fmt"
)

// ScriptTokenizer provides a facility for easily and efficiently decoding
// raw script bytes into the instruction sequence consumed by the engine,
// without creating allocations.  Each successive instruction is produced
// by the Next function, which returns false when iteration is complete.
//
// The tokenizer understands the canonical push encodings: OP_0 for an
// empty push, direct pushes of 1 through 75 bytes, and OP_PUSHDATA1/2/4
// with little-endian length prefixes.  Every other byte is surfaced as an
// opcode instruction for the registry to interpret.
//
// A push that declares more bytes than remain in the script is surfaced
// once as a malformed instruction carrying an ErrMalformedPush error, and
// iteration stops afterwards since there is no way to resynchronize.  The
// Err function reports the same parse error for callers iterating the
// script directly rather than through an engine.
type ScriptTokenizer struct {
	script []byte
	offset int32
	instr  Instruction
	err    error
}

// MakeScriptTokenizer returns a new instance of a script tokenizer.
//
// See the docs for ScriptTokenizer for more details.
func MakeScriptTokenizer(script []byte) ScriptTokenizer {
	return ScriptTokenizer{script: script}
}

// Done returns true when either all instructions have been exhausted or a
// parse failure was encountered and therefore the state has an associated
// error.
func (t *ScriptTokenizer) Done() bool {
	return t.err != nil || t.offset >= int32(len(t.script))
}

// malformed records a parse failure and stages a malformed instruction
// for delivery.  Iteration stops on the call after the failure is
// delivered.
func (t *ScriptTokenizer) malformed(desc string) bool {
	t.err = scriptError(ErrMalformedPush, desc)
	t.instr = Instruction{Kind: InstructionMalformed, Err: t.err}
	return true
}

// Next attempts to decode the next instruction and returns whether or not
// it was successful.  It will not be successful once the end of the
// script is reached or after a malformed instruction has been delivered.
//
// In the case of a true return, the decoded instruction can be obtained
// with the Instruction function and the offset into the script will point
// at the next instruction.
func (t *ScriptTokenizer) Next() bool {
	if t.Done() {
		return false
	}

	op := t.script[t.offset]
	switch {
	// An empty push.  The opcode is the entire instruction.
	case op == OP_0:
		t.offset++
		t.instr = Instruction{Kind: InstructionDataPush}
		return true

	// Direct pushes of specific lengths.
	case op >= OP_DATA_1 && op <= OP_DATA_75:
		script := t.script[t.offset:]
		length := int32(op)
		if int32(len(script)) < 1+length {
			str := fmt.Sprintf("opcode 0x%02x requires %d bytes, but script "+
				"only has %d remaining", op, length, len(script)-1)
			return t.malformed(str)
		}

		t.offset += 1 + length
		t.instr = Instruction{Kind: InstructionDataPush, Data: script[1 : 1+length]}
		return true

	// Data pushes with parsed lengths -- OP_PUSHDATA{1,2,4}.
	case op == OP_PUSHDATA1 || op == OP_PUSHDATA2 || op == OP_PUSHDATA4:
		lenBytes := int32(1)
		if op == OP_PUSHDATA2 {
			lenBytes = 2
		} else if op == OP_PUSHDATA4 {
			lenBytes = 4
		}

		script := t.script[t.offset+1:]
		if int32(len(script)) < lenBytes {
			str := fmt.Sprintf("opcode 0x%02x requires %d length bytes, but "+
				"script only has %d remaining", op, lenBytes, len(script))
			return t.malformed(str)
		}

		// The length bytes are a little endian count of the data bytes
		// that follow.
		var dataLen int32
		switch lenBytes {
		case 1:
			dataLen = int32(script[0])
		case 2:
			dataLen = int32(binary.LittleEndian.Uint16(script[:2]))
		case 4:
			dataLen = int32(binary.LittleEndian.Uint32(script[:4]))
		}

		// Move to the beginning of the data.
		script = script[lenBytes:]

		// Disallow entries that do not fit the script or were sign
		// extended.
		if dataLen > int32(len(script)) || dataLen < 0 {
			str := fmt.Sprintf("opcode 0x%02x pushes %d bytes, but script "+
				"only has %d remaining", op, dataLen, len(script))
			return t.malformed(str)
		}

		t.offset += 1 + lenBytes + dataLen
		t.instr = Instruction{Kind: InstructionDataPush, Data: script[:dataLen]}
		return true

	// Everything else is a single-byte opcode for the registry.
	default:
		t.offset++
		t.instr = Instruction{Kind: InstructionOpcode, Opcode: op}
		return true
	}
}

// Instruction returns the most recently decoded instruction.
func (t *ScriptTokenizer) Instruction() Instruction {
	return t.instr
}

// Script returns the full script associated with the tokenizer.
func (t *ScriptTokenizer) Script() []byte {
	return t.script
}

// ByteIndex returns the current offset into the full script that will be
// decoded next and therefore also implies everything before it has
// already been decoded.
func (t *ScriptTokenizer) ByteIndex() int32 {
	return t.offset
}

// Err returns any errors currently associated with the tokenizer.  This
// will only be non-nil in the case a parsing error was encountered.
func (t *ScriptTokenizer) Err() error {
	return t.err
}
