// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"bytes"
	"encoding/hex"
)

// Value is an immutable byte-sequence operand on the evaluation stack.
//
// A Value either borrows its bytes from the instruction stream that
// produced it or owns freshly computed bytes such as a hash digest.  The
// distinction exists so pushed script data can flow through the stack
// without being copied, and it is deliberately not observable through the
// API: handlers only see content.  Values never mutate in place; an
// operation that transforms a value produces a new one.
type Value struct {
	buf   []byte
	owned bool
}

// BorrowedValue wraps a byte slice whose lifetime is tied to the source
// instruction stream.  No copy is made, so the caller must not modify the
// underlying bytes for as long as the value is reachable.
func BorrowedValue(buf []byte) Value {
	return Value{buf: buf}
}

// OwnedValue wraps freshly computed bytes such as a digest.  The value
// takes over the slice; the caller must not retain or modify it.
func OwnedValue(buf []byte) Value {
	return Value{buf: buf, owned: true}
}

// TrueValue returns the canonical true value produced by comparison and
// boolean operations.
func TrueValue() Value {
	return OwnedValue([]byte{1})
}

// FalseValue returns the canonical false value produced by comparison and
// boolean operations.
func FalseValue() Value {
	return OwnedValue([]byte{0})
}

// NoneValue returns the empty value handlers use to signal that their
// result should not be pushed onto the stack.
func NoneValue() Value {
	return Value{owned: true}
}

// Bytes returns the value contents.  The returned slice must be treated
// as immutable since it may be shared with the instruction stream or with
// other stack entries.
func (v Value) Bytes() []byte {
	return v.buf
}

// IsNone returns whether the value is empty and therefore carries nothing
// to push onto the stack.
func (v Value) IsNone() bool {
	return len(v.buf) == 0
}

// Equal returns whether two values have identical byte contents.  The
// storage of the operands, borrowed or owned, does not participate in the
// comparison.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.buf, other.buf)
}

// IsTrue returns whether the value equals the canonical true value.
func (v Value) IsTrue() bool {
	return len(v.buf) == 1 && v.buf[0] == 1
}

// Bool interprets the value as a boolean using the loose convention
// applied to terminal stack inspection: any nonzero byte makes the value
// true.  Handlers that require the canonical encoding use IsTrue instead.
func (v Value) Bool() bool {
	for i := range v.buf {
		if v.buf[i] != 0 {
			return true
		}
	}
	return false
}

// Owned returns a value guaranteed to be independent of the source
// instruction stream.  Owned values are returned as is while borrowed
// values are deep-copied.
func (v Value) Owned() Value {
	if v.owned {
		return v
	}
	buf := make([]byte, len(v.buf))
	copy(buf, v.buf)
	return OwnedValue(buf)
}

// String returns the value contents as hexadecimal.
func (v Value) String() string {
	return hex.EncodeToString(v.buf)
}
