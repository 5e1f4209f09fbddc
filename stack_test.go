// Copyright (c) 2013-2015 Conformal Systems LLC.
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/scriptvm/scriptvm"
)

// stackFromBytes builds a stack with the given entries pushed bottom to
// top as borrowed values.
func stackFromBytes(entries [][]byte) *scriptvm.Stack {
	stack := &scriptvm.Stack{}
	for _, entry := range entries {
		stack.Push(scriptvm.BorrowedValue(entry))
	}
	return stack
}

// TestStack tests that all of the stack operations work as expected.
func TestStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		before    [][]byte
		operation func(*scriptvm.Stack) error
		errCode   scriptvm.ErrorCode
		after     [][]byte
	}{
		{
			"noop",
			[][]byte{{1}, {2}, {3}},
			func(stack *scriptvm.Stack) error {
				return nil
			},
			-1,
			[][]byte{{1}, {2}, {3}},
		},
		{
			"pop",
			[][]byte{{1}, {2}, {3}},
			func(stack *scriptvm.Stack) error {
				v, err := stack.Pop()
				if err != nil {
					return err
				}
				if !bytes.Equal(v.Bytes(), []byte{3}) {
					return errors.New("not equal")
				}
				return nil
			},
			-1,
			[][]byte{{1}, {2}},
		},
		{
			"pop everything",
			[][]byte{{1}, {2}},
			func(stack *scriptvm.Stack) error {
				for i := 0; i < 2; i++ {
					if _, err := stack.Pop(); err != nil {
						return err
					}
				}
				return nil
			},
			-1,
			nil,
		},
		{
			"pop underflow",
			nil,
			func(stack *scriptvm.Stack) error {
				_, err := stack.Pop()
				return err
			},
			scriptvm.ErrEmptyStack,
			nil,
		},
		{
			"peek top",
			[][]byte{{1}, {2}, {3}},
			func(stack *scriptvm.Stack) error {
				v, err := stack.Peek(0)
				if err != nil {
					return err
				}
				if !bytes.Equal(v.Bytes(), []byte{3}) {
					return errors.New("not equal")
				}
				return nil
			},
			-1,
			[][]byte{{1}, {2}, {3}},
		},
		{
			"peek deep",
			[][]byte{{1}, {2}, {3}},
			func(stack *scriptvm.Stack) error {
				v, err := stack.Peek(2)
				if err != nil {
					return err
				}
				if !bytes.Equal(v.Bytes(), []byte{1}) {
					return errors.New("not equal")
				}
				return nil
			},
			-1,
			[][]byte{{1}, {2}, {3}},
		},
		{
			"peek underflow",
			[][]byte{{1}, {2}, {3}},
			func(stack *scriptvm.Stack) error {
				_, err := stack.Peek(3)
				return err
			},
			scriptvm.ErrEmptyStack,
			[][]byte{{1}, {2}, {3}},
		},
		{
			"peek negative",
			[][]byte{{1}},
			func(stack *scriptvm.Stack) error {
				_, err := stack.Peek(-1)
				return err
			},
			scriptvm.ErrEmptyStack,
			[][]byte{{1}},
		},
		{
			"pop bool true",
			[][]byte{{1}},
			func(stack *scriptvm.Stack) error {
				v, err := stack.PopBool()
				if err != nil {
					return err
				}
				if !v {
					return errors.New("expected true")
				}
				return nil
			},
			-1,
			nil,
		},
		{
			"pop bool loose true",
			[][]byte{{0, 0, 8}},
			func(stack *scriptvm.Stack) error {
				v, err := stack.PopBool()
				if err != nil {
					return err
				}
				if !v {
					return errors.New("expected true")
				}
				return nil
			},
			-1,
			nil,
		},
		{
			"pop bool false",
			[][]byte{{0}},
			func(stack *scriptvm.Stack) error {
				v, err := stack.PopBool()
				if err != nil {
					return err
				}
				if v {
					return errors.New("expected false")
				}
				return nil
			},
			-1,
			nil,
		},
		{
			"pop bool underflow",
			nil,
			func(stack *scriptvm.Stack) error {
				_, err := stack.PopBool()
				return err
			},
			scriptvm.ErrEmptyStack,
			nil,
		},
	}

	for _, test := range tests {
		stack := stackFromBytes(test.before)

		err := test.operation(stack)
		if test.errCode >= 0 {
			if !scriptvm.IsErrorCode(err, test.errCode) {
				t.Errorf("%s: unexpected error: got %v, want code %v",
					test.name, err, test.errCode)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		if stack.Depth() != len(test.after) {
			t.Errorf("%s: depth mismatch: got %d, want %d", test.name,
				stack.Depth(), len(test.after))
			continue
		}
		for i, want := range test.after {
			v, err := stack.Peek(len(test.after) - i - 1)
			if err != nil {
				t.Errorf("%s: peek %d: %v", test.name, i, err)
				continue
			}
			if !bytes.Equal(v.Bytes(), want) {
				t.Errorf("%s: entry %d: got %x, want %x", test.name, i,
					v.Bytes(), want)
			}
		}
	}
}
