// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"testing"
)

// TestRegistryRegister ensures registration rejects empty chains and
// duplicate bindings while accepting macro chains.
func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if err := r.Register(0x01); !IsErrorCode(err, ErrEmptyChain) {
		t.Fatalf("empty chain: unexpected error: %v", err)
	}

	if err := r.Register(0x01, DupOp{}); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}
	if err := r.Register(0x01, NopOp{}); !IsErrorCode(err, ErrDuplicateOpcode) {
		t.Fatalf("duplicate: unexpected error: %v", err)
	}

	// A macro chain keeps its handler order.
	if err := r.Register(0x02, EqualOp{}, VerifyOp{}); err != nil {
		t.Fatalf("macro register: unexpected error: %v", err)
	}
	chain := r.lookup(0x02)
	if len(chain) != 2 {
		t.Fatalf("macro chain length: got %d, want 2", len(chain))
	}
	if chain[0].Name() != "EQUAL" || chain[1].Name() != "VERIFY" {
		t.Fatalf("macro chain order: got [%s %s]", chain[0].Name(),
			chain[1].Name())
	}

	if r.lookup(0x03) != nil {
		t.Fatal("lookup of unregistered opcode returned a chain")
	}
}

// TestStandardRegistry ensures the standard dialect binds the documented
// opcodes, including the two-handler macros.
func TestStandardRegistry(t *testing.T) {
	t.Parallel()

	r := StandardRegistry()

	singles := []byte{
		OP_NOP, OP_VERIFY, OP_DROP, OP_DUP, OP_EQUAL, OP_RIPEMD160,
		OP_SHA256, OP_HASH160, OP_HASH256, OP_CHECKSIG,
	}
	for _, opcode := range singles {
		if chain := r.lookup(opcode); len(chain) != 1 {
			t.Errorf("opcode 0x%02x: chain length %d, want 1", opcode,
				len(chain))
		}
	}

	macros := []byte{OP_EQUALVERIFY, OP_CHECKSIGVERIFY}
	for _, opcode := range macros {
		chain := r.lookup(opcode)
		if len(chain) != 2 {
			t.Errorf("opcode 0x%02x: chain length %d, want 2", opcode,
				len(chain))
			continue
		}
		if chain[1].Name() != "VERIFY" {
			t.Errorf("opcode 0x%02x: macro does not end in VERIFY: %s",
				opcode, chain[1].Name())
		}
	}

	// Push opcodes are the decoder's business, not the registry's.
	if r.lookup(OP_0) != nil || r.lookup(OP_PUSHDATA1) != nil {
		t.Fatal("standard registry binds push opcodes")
	}
}
