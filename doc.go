// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package scriptvm implements a stack-based script virtual machine.

Scripts in this package are written in a FORTH-like language: a sequence of
data pushes and single-byte opcodes is executed left to right against an
operand stack, and the final stack contents are the verification result.
There are no loops and no jumps; execution either reaches the end of the
instruction sequence or halts on the first failure.

Unlike interpreters with a fixed opcode table, the mapping from opcode
bytes to behavior is supplied by the caller as a Registry.  Each opcode is
bound to an ordered chain of one or more Handler values, so composite
opcodes such as EQUALVERIFY are expressed as a chain of the EQUAL and
VERIFY primitives rather than a bespoke combined operation.  This lets
callers assemble different script dialects without modifying the engine.
StandardRegistry returns a registry for a representative dialect using the
well-known Bitcoin opcode values.

The engine consumes instructions from any InstructionSource.  The
ScriptTokenizer in this package decodes raw script bytes into such a
sequence, but any decoder producing data pushes, opcodes, and malformed
markers can drive the engine.

# Errors

Errors returned by this package are of type Error and carry an ErrorCode
identifying the specific failure.  The IsErrorCode function can be used to
test an error against a particular code.  Every failure is terminal for
the evaluation session; re-running a script requires a fresh Engine.
*/
package scriptvm
