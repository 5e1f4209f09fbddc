// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"fmt"
)

// Registry maps opcode bytes to the ordered handler chains that implement
// them.  A chain with more than one handler models a macro opcode that is
// defined as a fixed sequence of primitive operations, such as
// EQUALVERIFY expanding to EQUAL followed by VERIFY.
//
// A registry must be fully populated before evaluation begins.  It is
// read-only during evaluation, so a single registry may be shared by any
// number of concurrently running sessions without synchronization.
type Registry struct {
	chains map[byte][]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{chains: make(map[byte][]Handler)}
}

// Register binds the given opcode byte to the ordered handler chain.  It
// fails with ErrEmptyChain when no handlers are provided and with
// ErrDuplicateOpcode when the opcode already has a binding, since
// silently replacing a chain mid-assembly is almost always a dialect
// definition bug.
func (r *Registry) Register(opcode byte, chain ...Handler) error {
	if len(chain) == 0 {
		return scriptError(ErrEmptyChain,
			fmt.Sprintf("no handlers provided for opcode 0x%02x", opcode))
	}
	if _, ok := r.chains[opcode]; ok {
		return scriptError(ErrDuplicateOpcode,
			fmt.Sprintf("opcode 0x%02x is already registered", opcode))
	}

	r.chains[opcode] = chain
	return nil
}

// lookup returns the handler chain bound to the opcode, or nil when the
// opcode has no binding.
func (r *Registry) lookup(opcode byte) []Handler {
	return r.chains[opcode]
}

// StandardRegistry returns a registry for a representative script dialect
// using the well-known Bitcoin opcode values.  OP_CHECKSIG and
// OP_CHECKSIGVERIFY are bound to the verification stub; callers that need
// real signature checking assemble their own registry with CheckSigOp
// since the message digest is only known per session.
func StandardRegistry() *Registry {
	r := NewRegistry()
	bind := func(opcode byte, chain ...Handler) {
		// Registration of the fixed dialect over distinct opcode bytes
		// cannot fail.
		if err := r.Register(opcode, chain...); err != nil {
			panic(err)
		}
	}

	bind(OP_NOP, NopOp{})
	bind(OP_VERIFY, VerifyOp{})
	bind(OP_DROP, DropOp{})
	bind(OP_DUP, DupOp{})
	bind(OP_EQUAL, EqualOp{})
	bind(OP_EQUALVERIFY, EqualOp{}, VerifyOp{})
	bind(OP_RIPEMD160, NewHashOp("RIPEMD160", Ripemd160))
	bind(OP_SHA256, NewHashOp("SHA256", Sha256))
	bind(OP_HASH160, NewHashOp("HASH160", Hash160))
	bind(OP_HASH256, NewHashOp("HASH256", Hash256))
	bind(OP_CHECKSIG, CheckSigStubOp{})
	bind(OP_CHECKSIGVERIFY, CheckSigStubOp{}, VerifyOp{})

	return r
}
