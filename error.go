// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"fmt"
)

// ErrorCode identifies a kind of script error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrEmptyStack is returned when an operation requires more operands
	// than are present on the stack.  It is also returned when the stack
	// is empty at the end of execution during terminal inspection.
	ErrEmptyStack ErrorCode = iota

	// ErrVerifyFailed is returned when a VERIFY operation pops a value
	// other than the canonical true value.
	ErrVerifyFailed

	// ErrUnsupportedOpcode is returned when the instruction sequence
	// contains an opcode byte with no handler chain registered for it.
	ErrUnsupportedOpcode

	// ErrMalformedInstruction is returned when the instruction source
	// produces a malformed instruction and the engine was not created
	// with the TolerateMalformed flag.
	ErrMalformedInstruction

	// ErrMalformedPush is returned when a data push opcode declares more
	// bytes than remain in the script.
	ErrMalformedPush

	// ErrEmptyChain is returned when attempting to register an opcode
	// with no handlers.
	ErrEmptyChain

	// ErrDuplicateOpcode is returned when attempting to register an
	// opcode that already has a handler chain bound to it.
	ErrDuplicateOpcode

	// ErrInvalidSession is returned when an engine is created without a
	// registry or an instruction source.
	ErrInvalidSession

	// ErrScriptUnfinished is returned when CheckErrorCondition is called
	// on a session that has not finished executing.
	ErrScriptUnfinished

	// ErrEvalFalse is returned when the final stack of a successful
	// execution does not have a true value on top during terminal
	// inspection.
	ErrEvalFalse

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrEmptyStack:           "ErrEmptyStack",
	ErrVerifyFailed:         "ErrVerifyFailed",
	ErrUnsupportedOpcode:    "ErrUnsupportedOpcode",
	ErrMalformedInstruction: "ErrMalformedInstruction",
	ErrMalformedPush:        "ErrMalformedPush",
	ErrEmptyChain:           "ErrEmptyChain",
	ErrDuplicateOpcode:      "ErrDuplicateOpcode",
	ErrInvalidSession:       "ErrInvalidSession",
	ErrScriptUnfinished:     "ErrScriptUnfinished",
	ErrEvalFalse:            "ErrEvalFalse",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script-related error.  It is used to indicate three
// classes of errors:
//  1. Script execution failures due to violating one of the many
//     requirements imposed by the handlers and the engine
//  2. Improper API usage such as registering an empty handler chain
//  3. Malformed scripts reported by the decoder
//
// The caller can use type assertions to determine if an error is an Error
// and access the ErrorCode field to ascertain the specific reason for the
// failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
