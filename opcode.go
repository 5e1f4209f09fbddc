// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"fmt"
)

// These constants are the values of the official opcodes used on the btc
// wiki, in bitcoin core, and in most other references and software related
// to handling scripts.  Only the opcodes bound by StandardRegistry plus
// the data push opcodes understood by the tokenizer are enumerated; a
// Registry accepts any opcode byte.
const (
	OP_0              = 0x00 // 0
	OP_DATA_1         = 0x01 // 1
	OP_DATA_75        = 0x4b // 75
	OP_PUSHDATA1      = 0x4c // 76
	OP_PUSHDATA2      = 0x4d // 77
	OP_PUSHDATA4      = 0x4e // 78
	OP_NOP            = 0x61 // 97
	OP_VERIFY         = 0x69 // 105
	OP_DROP           = 0x75 // 117
	OP_DUP            = 0x76 // 118
	OP_EQUAL          = 0x87 // 135
	OP_EQUALVERIFY    = 0x88 // 136
	OP_RIPEMD160      = 0xa6 // 166
	OP_SHA256         = 0xa8 // 168
	OP_HASH160        = 0xa9 // 169
	OP_HASH256        = 0xaa // 170
	OP_CHECKSIG       = 0xac // 172
	OP_CHECKSIGVERIFY = 0xad // 173
)

// Handler is a single primitive stack transformation.  An opcode is bound
// to an ordered chain of handlers by a Registry, and the engine runs the
// chain in order against the live stack.
//
// Invoke returns the value to push onto the stack.  A none value (see
// NoneValue) signals that the operation leaves nothing on the stack, as
// with a successful VERIFY.  Handlers must not push their own result; the
// engine does that, which keeps each handler a pure stack-in, value-out
// transformation.  Pops performed before a failure is discovered are not
// rolled back since a failed session is discarded.
type Handler interface {
	// Name returns the human-readable name of the operation for use in
	// trace logs and diagnostics.
	Name() string

	// Invoke applies the operation to the stack and returns the value to
	// push, or an error that halts the evaluation session.
	Invoke(stack *Stack) (Value, error)
}

// DupOp duplicates the top stack value.
//
// Stack transformation: [... x1 x2] -> [... x1 x2 x2]
type DupOp struct{}

// Name returns the operation name.
func (DupOp) Name() string { return "DUP" }

// Invoke reads the top value without popping it and returns it as the
// result.  Values are immutable, so no copy is needed for the duplicate.
func (DupOp) Invoke(stack *Stack) (Value, error) {
	v, err := stack.Peek(0)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// DropOp removes the top stack value.
//
// Stack transformation: [... x1 x2] -> [... x1]
type DropOp struct{}

// Name returns the operation name.
func (DropOp) Name() string { return "DROP" }

// Invoke pops the top value and discards it.
func (DropOp) Invoke(stack *Stack) (Value, error) {
	if _, err := stack.Pop(); err != nil {
		return Value{}, err
	}
	return NoneValue(), nil
}

// NopOp does nothing.
type NopOp struct{}

// Name returns the operation name.
func (NopOp) Name() string { return "NOP" }

// Invoke leaves the stack untouched.
func (NopOp) Invoke(stack *Stack) (Value, error) {
	return NoneValue(), nil
}

// HashOp pops the top stack value and pushes its digest computed by the
// collaborator hash function supplied at construction.
//
// Stack transformation: [... x1 x2] -> [... x1 hash(x2)]
type HashOp struct {
	name string
	fn   HashFunc
}

// NewHashOp returns a hash operation backed by the provided one-way hash
// collaborator.  The name is used for trace logs and diagnostics.
func NewHashOp(name string, fn HashFunc) HashOp {
	return HashOp{name: name, fn: fn}
}

// Name returns the operation name.
func (op HashOp) Name() string { return op.name }

// Invoke pops the top value, fully consuming it, and returns an owned
// value holding the digest of its bytes.
func (op HashOp) Invoke(stack *Stack) (Value, error) {
	v, err := stack.Pop()
	if err != nil {
		return Value{}, err
	}
	return OwnedValue(op.fn(v.Bytes())), nil
}

// EqualOp pops the top two stack values and pushes the canonical true
// value if their contents are byte-equal and the canonical false value
// otherwise.  The storage origin of the operands does not matter.
//
// Stack transformation: [... x1 x2] -> [... bool]
type EqualOp struct{}

// Name returns the operation name.
func (EqualOp) Name() string { return "EQUAL" }

// Invoke pops two values and compares their contents.  When fewer than
// two values are present, the first missing pop reports ErrEmptyStack and
// any value already popped stays consumed.
func (EqualOp) Invoke(stack *Stack) (Value, error) {
	a, err := stack.Pop()
	if err != nil {
		return Value{}, err
	}
	b, err := stack.Pop()
	if err != nil {
		return Value{}, err
	}

	if a.Equal(b) {
		return TrueValue(), nil
	}
	return FalseValue(), nil
}

// VerifyOp pops the top stack value and asserts that it is the canonical
// true value, halting the session with ErrVerifyFailed otherwise.  Only
// the canonical encoding passes; the loose any-nonzero-byte convention
// applies to terminal stack inspection, not to this assertion.
//
// Stack transformation: [... x1 true] -> [... x1]
type VerifyOp struct{}

// Name returns the operation name.
func (VerifyOp) Name() string { return "VERIFY" }

// Invoke pops the top value and returns a none result on success so
// nothing replaces the consumed value.
func (VerifyOp) Invoke(stack *Stack) (Value, error) {
	v, err := stack.Pop()
	if err != nil {
		return Value{}, err
	}

	if !v.IsTrue() {
		return Value{}, scriptError(ErrVerifyFailed,
			fmt.Sprintf("VERIFY failed on value %v", v))
	}
	return NoneValue(), nil
}

// CheckSigStubOp is a placeholder for signature verification that pops
// the public key and signature operands and unconditionally pushes the
// canonical true value.
//
// This is an explicit stub for structural testing of script dialects.  It
// performs no cryptographic verification whatsoever and must be replaced
// with CheckSigOp, or another real verifier, before any other use.
type CheckSigStubOp struct{}

// Name returns the operation name.
func (CheckSigStubOp) Name() string { return "CHECKSIG(stub)" }

// Invoke pops the public key and signature values and reports success.
func (CheckSigStubOp) Invoke(stack *Stack) (Value, error) {
	if _, err := stack.Pop(); err != nil {
		return Value{}, err
	}
	if _, err := stack.Pop(); err != nil {
		return Value{}, err
	}
	return TrueValue(), nil
}
