// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm_test

import (
	"bytes"
	"testing"

	"github.com/scriptvm/scriptvm"
)

// TestScriptBuilderAddOp tests that pushing opcodes to a script via the
// ScriptBuilder API works as expected.
func TestScriptBuilderAddOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opcodes  []byte
		expected []byte
	}{
		{
			name:     "push OP_0",
			opcodes:  []byte{scriptvm.OP_0},
			expected: []byte{scriptvm.OP_0},
		},
		{
			name:     "push OP_DUP OP_HASH160",
			opcodes:  []byte{scriptvm.OP_DUP, scriptvm.OP_HASH160},
			expected: []byte{scriptvm.OP_DUP, scriptvm.OP_HASH160},
		},
	}

	builder := scriptvm.NewScriptBuilder()
	for _, test := range tests {
		builder.Reset()
		for _, opcode := range test.opcodes {
			builder.AddOp(opcode)
		}
		result := builder.Script()
		if !bytes.Equal(result, test.expected) {
			t.Errorf("%s: unexpected script - got %x, want %x", test.name,
				result, test.expected)
		}
	}
}

// TestScriptBuilderAddData tests that pushing data to a script via the
// ScriptBuilder API uses the canonical push encoding for every length
// class.
func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
	}{
		// An empty push encodes as the empty push opcode with no data.
		{
			name:     "push empty byte sequence",
			data:     nil,
			expected: []byte{scriptvm.OP_0},
		},

		// Data of length 1 through 75 uses the direct push opcodes.
		{
			name:     "push 1 byte",
			data:     []byte{0x49},
			expected: []byte{scriptvm.OP_DATA_1, 0x49},
		},
		{
			name:     "push 75 bytes",
			data:     bytes.Repeat([]byte{0x49}, 75),
			expected: append([]byte{scriptvm.OP_DATA_75}, bytes.Repeat([]byte{0x49}, 75)...),
		},

		// Data of length 76 through 255 uses OP_PUSHDATA1.
		{
			name: "push 76 bytes",
			data: bytes.Repeat([]byte{0x49}, 76),
			expected: append([]byte{scriptvm.OP_PUSHDATA1, 76},
				bytes.Repeat([]byte{0x49}, 76)...),
		},
		{
			name: "push 255 bytes",
			data: bytes.Repeat([]byte{0x49}, 255),
			expected: append([]byte{scriptvm.OP_PUSHDATA1, 255},
				bytes.Repeat([]byte{0x49}, 255)...),
		},

		// Data of length 256 through 65535 uses OP_PUSHDATA2.
		{
			name: "push 256 bytes",
			data: bytes.Repeat([]byte{0x49}, 256),
			expected: append([]byte{scriptvm.OP_PUSHDATA2, 0x00, 0x01},
				bytes.Repeat([]byte{0x49}, 256)...),
		},
		{
			name: "push 520 bytes",
			data: bytes.Repeat([]byte{0x49}, 520),
			expected: append([]byte{scriptvm.OP_PUSHDATA2, 0x08, 0x02},
				bytes.Repeat([]byte{0x49}, 520)...),
		},

		// Data of length 65536 and beyond uses OP_PUSHDATA4.
		{
			name: "push 65536 bytes",
			data: bytes.Repeat([]byte{0x49}, 65536),
			expected: append([]byte{scriptvm.OP_PUSHDATA4, 0x00, 0x00, 0x01, 0x00},
				bytes.Repeat([]byte{0x49}, 65536)...),
		},
	}

	builder := scriptvm.NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddData(test.data)
		result := builder.Script()
		if !bytes.Equal(result, test.expected) {
			t.Errorf("%s: unexpected script - got len %d, want len %d",
				test.name, len(result), len(test.expected))
		}
	}
}

// TestScriptBuilderRoundTrip ensures every encoding the builder produces
// decodes back to the original data through the tokenizer.
func TestScriptBuilderRoundTrip(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		nil,
		{0x01},
		bytes.Repeat([]byte{0xfe}, 75),
		bytes.Repeat([]byte{0xfe}, 76),
		bytes.Repeat([]byte{0xfe}, 300),
		bytes.Repeat([]byte{0xfe}, 70000),
	}

	builder := scriptvm.NewScriptBuilder()
	for _, payload := range payloads {
		builder.AddData(payload)
	}
	builder.AddOp(scriptvm.OP_CHECKSIG)

	tokenizer := scriptvm.MakeScriptTokenizer(builder.Script())
	var idx int
	for tokenizer.Next() {
		instr := tokenizer.Instruction()
		if idx < len(payloads) {
			if instr.Kind != scriptvm.InstructionDataPush {
				t.Fatalf("instruction %d: got kind %d, want data push", idx,
					instr.Kind)
			}
			if !bytes.Equal(instr.Data, payloads[idx]) {
				t.Fatalf("instruction %d: decoded %d bytes, want %d", idx,
					len(instr.Data), len(payloads[idx]))
			}
		} else if instr.Kind != scriptvm.InstructionOpcode ||
			instr.Opcode != scriptvm.OP_CHECKSIG {

			t.Fatalf("instruction %d: got %+v, want OP_CHECKSIG", idx, instr)
		}
		idx++
	}
	if err := tokenizer.Err(); err != nil {
		t.Fatalf("unexpected tokenizer error: %v", err)
	}
	if idx != len(payloads)+1 {
		t.Fatalf("decoded %d instructions, want %d", idx, len(payloads)+1)
	}
}
