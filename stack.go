// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"encoding/hex"
	"strings"
)

// Stack represents an ordered stack of immutable values to be used with
// script evaluation.  Values may be shared between stack entries,
// therefore a value must never be modified after it has been pushed.
//
// The last element is the top of the stack.  Only the engine and handlers
// mutate a stack, and a stack belongs to exactly one evaluation session.
type Stack struct {
	stk []Value
}

// Depth returns the number of items on the stack.
func (s *Stack) Depth() int {
	return len(s.stk)
}

// Push adds the given value to the top of the stack.
//
// Stack transformation: [... x1 x2] -> [... x1 x2 data]
func (s *Stack) Push(v Value) {
	s.stk = append(s.stk, v)
}

// Pop removes the value from the top of the stack and returns it.  It
// fails with ErrEmptyStack when the stack is empty.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2]
func (s *Stack) Pop() (Value, error) {
	sz := len(s.stk)
	if sz == 0 {
		return Value{}, scriptError(ErrEmptyStack,
			"attempt to pop from an empty stack")
	}

	v := s.stk[sz-1]
	s.stk = s.stk[:sz-1]
	return v, nil
}

// PopBool pops the value off the top of the stack, converts it into a
// bool using the loose any-nonzero-byte convention, and returns it.
//
// Stack transformation: [... x1 x2 x3] -> [... x1 x2]
func (s *Stack) PopBool() (bool, error) {
	v, err := s.Pop()
	if err != nil {
		return false, err
	}

	return v.Bool(), nil
}

// Peek returns the nth item on the stack without removing it, where 0 is
// the top.  It fails with ErrEmptyStack when the index is beyond the
// stack depth.
func (s *Stack) Peek(idx int) (Value, error) {
	sz := len(s.stk)
	if idx < 0 || idx >= sz {
		return Value{}, scriptError(ErrEmptyStack,
			"attempt to peek beyond the stack depth")
	}

	return s.stk[sz-idx-1], nil
}

// String returns the stack in a readable format with the bottom entry
// first.
func (s *Stack) String() string {
	var result strings.Builder
	for _, v := range s.stk {
		if v.IsNone() {
			result.WriteString("00000000  <empty>\n")
			continue
		}
		result.WriteString(hex.Dump(v.Bytes()))
	}

	return result.String()
}
