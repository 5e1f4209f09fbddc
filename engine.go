// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"fmt"
)

// InstructionKind identifies the variant of a decoded instruction.
type InstructionKind byte

const (
	// InstructionDataPush is a literal push of the bytes in the Data
	// field onto the stack.  The bytes may be empty.
	InstructionDataPush InstructionKind = iota

	// InstructionOpcode is a single-byte opcode to be resolved through
	// the registry.
	InstructionOpcode

	// InstructionMalformed marks a decode failure, with the detail in
	// the Err field.  The decoder cannot produce further instructions
	// after one of these.
	InstructionMalformed
)

// Instruction is the unit decoded from a raw script by a script decoder.
// Exactly one of the payload fields is meaningful depending on Kind.
type Instruction struct {
	// Kind identifies which variant this instruction is.
	Kind InstructionKind

	// Data is the payload of an InstructionDataPush.
	Data []byte

	// Opcode is the opcode byte of an InstructionOpcode.
	Opcode byte

	// Err describes the decode failure of an InstructionMalformed.
	Err error
}

// InstructionSource is a lazy, finite, non-restartable sequence of decoded
// instructions.  ScriptTokenizer implements it for raw script bytes; any
// other decoder producing the same instruction model can drive an engine.
type InstructionSource interface {
	// Next advances to the next instruction and returns whether one is
	// available.  Once it returns false it must keep returning false.
	Next() bool

	// Instruction returns the current instruction.  It is only valid
	// after a call to Next that returned true.
	Instruction() Instruction
}

// Flags adjust the behavior of an evaluation session.
type Flags uint32

const (
	// TolerateMalformed causes the engine to log and skip malformed
	// instructions instead of halting with ErrMalformedInstruction.
	// This mirrors the behavior of early verifiers and exists for
	// compatibility; halting is the default because continuing past a
	// decode failure silently ignores part of the script.
	TolerateMalformed Flags = 1 << iota
)

// Engine is the virtual machine that executes scripts.  One engine is one
// evaluation session: it owns its stack exclusively, consumes its
// instruction source exactly once, and is discarded afterwards.  The
// registry it dispatches through is never mutated and may be shared with
// other sessions.
type Engine struct {
	// The following fields are set when the engine is created and must
	// not be changed afterwards.
	registry *Registry
	source   InstructionSource
	flags    Flags

	// The following fields handle keeping track of the current execution
	// state of the engine.
	//
	// dstack is the data stack the handlers push and pop values to and
	// from during execution.
	//
	// instrIdx counts consumed instructions and is really only used for
	// trace logs and error descriptions.
	//
	// done is set once the instruction sequence is exhausted, and err
	// latches the first failure so every later call reports the same
	// terminal outcome.
	dstack   Stack
	instrIdx int
	done     bool
	err      error
}

// NewEngine returns a new script engine that will evaluate the
// instructions produced by the provided source against the provided
// registry.  The registry must already be fully populated and must not be
// mutated while any engine is using it.
func NewEngine(registry *Registry, source InstructionSource, flags Flags) (*Engine, error) {
	if registry == nil {
		return nil, scriptError(ErrInvalidSession,
			"a session requires a registry")
	}
	if source == nil {
		return nil, scriptError(ErrInvalidSession,
			"a session requires an instruction source")
	}

	return &Engine{registry: registry, source: source, flags: flags}, nil
}

// hasFlag returns whether the engine instance has the passed flag set.
func (vm *Engine) hasFlag(flag Flags) bool {
	return vm.flags&flag == flag
}

// fail transitions the engine to its terminal failure state and returns
// the recorded error.
func (vm *Engine) fail(err error) error {
	vm.done = true
	vm.err = err
	return err
}

// executeOpcode resolves the opcode through the registry and runs its
// handler chain in order against the live stack.  The first handler
// failure halts the chain; a successful handler has its result pushed
// unless the result is the none value.
func (vm *Engine) executeOpcode(opcode byte) error {
	chain := vm.registry.lookup(opcode)
	if chain == nil {
		str := fmt.Sprintf("no handler chain registered for opcode 0x%02x",
			opcode)
		return scriptError(ErrUnsupportedOpcode, str)
	}

	for _, handler := range chain {
		log.Tracef("executing %s (opcode 0x%02x)", handler.Name(), opcode)
		result, err := handler.Invoke(&vm.dstack)
		if err != nil {
			return err
		}
		if !result.IsNone() {
			vm.dstack.Push(result)
		}
	}
	return nil
}

// Step consumes the next instruction and executes it.  It returns done
// when the instruction sequence has been exhausted, in which case the
// final stack contents are the verification result.
//
// Once Step has returned an error, the session is halted and every
// subsequent call returns the same error.  Step is the natural preemption
// point for callers that want to bound execution with an instruction
// count or embed the engine in a cooperative scheduler.
func (vm *Engine) Step() (done bool, err error) {
	if vm.err != nil {
		return true, vm.err
	}
	if vm.done {
		return true, nil
	}

	if !vm.source.Next() {
		vm.done = true
		return true, nil
	}
	instr := vm.source.Instruction()
	vm.instrIdx++

	switch instr.Kind {
	case InstructionDataPush:
		log.Tracef("pushing %d bytes of data", len(instr.Data))
		vm.dstack.Push(BorrowedValue(instr.Data))

	case InstructionOpcode:
		if err := vm.executeOpcode(instr.Opcode); err != nil {
			return true, vm.fail(err)
		}

	case InstructionMalformed:
		if !vm.hasFlag(TolerateMalformed) {
			str := fmt.Sprintf("malformed instruction %d: %v",
				vm.instrIdx, instr.Err)
			return true, vm.fail(scriptError(ErrMalformedInstruction, str))
		}
		log.Warnf("skipping malformed instruction %d: %v", vm.instrIdx,
			instr.Err)

	default:
		str := fmt.Sprintf("instruction %d has unknown kind %d",
			vm.instrIdx, instr.Kind)
		return true, vm.fail(scriptError(ErrMalformedInstruction, str))
	}

	return false, nil
}

// Execute runs the session to completion and returns nil when every
// instruction executed successfully, or the first failure encountered.
// Execution is fail-fast: nothing after the failing instruction runs, and
// within a macro opcode nothing after the failing handler runs.
//
// A nil return only guarantees that no handler failed.  Whether the final
// stack constitutes a passing verification is a convention belonging to
// the caller; CheckErrorCondition implements the usual one.
func (vm *Engine) Execute() error {
	done := false
	for !done {
		var err error
		done, err = vm.Step()
		if err != nil {
			return err
		}

		log.Tracef("stack depth %d after instruction %d",
			vm.dstack.Depth(), vm.instrIdx)
	}

	return nil
}

// CheckErrorCondition returns nil if the session has ended successfully
// with a true value on top of the stack, and an error otherwise.  The top
// value is interpreted with the loose any-nonzero-byte convention that
// governs terminal inspection.
//
// This is a convenience for the common pass/fail decision; callers with a
// different terminal convention can inspect GetStack directly.
func (vm *Engine) CheckErrorCondition() error {
	if vm.err != nil {
		return vm.err
	}
	if !vm.done {
		return scriptError(ErrScriptUnfinished,
			"error check when script unfinished")
	}

	if vm.dstack.Depth() < 1 {
		return scriptError(ErrEmptyStack,
			"stack empty at end of script execution")
	}

	v, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}
	if !v {
		return scriptError(ErrEvalFalse,
			"false stack entry at end of script execution")
	}
	return nil
}

// GetStack returns the contents of the data stack as raw byte slices
// where the last item in the array is the top of the stack.  The returned
// slices are independent copies that remain valid after the instruction
// stream backing the session is released.
func (vm *Engine) GetStack() [][]byte {
	array := make([][]byte, vm.dstack.Depth())
	for i := range array {
		// Peek cannot fail for indexes below the depth.
		v, _ := vm.dstack.Peek(i)
		array[len(array)-i-1] = v.Owned().Bytes()
	}
	return array
}

// SetStack sets the contents of the data stack to the provided array
// where the last item in the array will be the top of the stack.  The
// values are borrowed, so the caller must not modify the slices while the
// session is live.
func (vm *Engine) SetStack(data [][]byte) {
	vm.dstack = Stack{}
	for i := range data {
		vm.dstack.Push(BorrowedValue(data[i]))
	}
}
