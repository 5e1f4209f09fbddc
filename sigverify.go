// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CheckSigOp verifies an ECDSA signature over a message digest that is
// fixed at handler construction time.  It pops the public key and then
// the signature from the stack and pushes the canonical true value when
// the signature verifies and the canonical false value otherwise.
//
// The digest must be computed by the caller before evaluation begins; no
// I/O or message reconstruction happens inside the handler.  A signature
// or public key that fails to parse yields canonical false rather than an
// error, so a dialect can chain VerifyOp after this handler to turn a
// failed check into ErrVerifyFailed, which is how CHECKSIGVERIFY macros
// are assembled.
//
// Stack transformation: [... sig pubkey] -> [... bool]
type CheckSigOp struct {
	digest chainhash.Hash
	cache  *SigCache
}

// NewCheckSigOp returns a signature check operation for the provided
// 32-byte message digest.  The cache is optional; when non-nil, previously
// verified signatures are accepted without re-running the ECDSA math.
func NewCheckSigOp(digest *chainhash.Hash, cache *SigCache) CheckSigOp {
	return CheckSigOp{digest: *digest, cache: cache}
}

// Name returns the operation name.
func (CheckSigOp) Name() string { return "CHECKSIG" }

// Invoke pops the public key and signature and verifies the signature
// over the configured digest.
func (op CheckSigOp) Invoke(stack *Stack) (Value, error) {
	pkValue, err := stack.Pop()
	if err != nil {
		return Value{}, err
	}
	sigValue, err := stack.Pop()
	if err != nil {
		return Value{}, err
	}

	pubKey, err := btcec.ParsePubKey(pkValue.Bytes())
	if err != nil {
		log.Debugf("CHECKSIG pubkey parse failure: %v", err)
		return FalseValue(), nil
	}
	sig, err := ecdsa.ParseDERSignature(sigValue.Bytes())
	if err != nil {
		log.Debugf("CHECKSIG signature parse failure: %v", err)
		return FalseValue(), nil
	}

	if op.cache != nil && op.cache.Exists(op.digest, sig, pubKey) {
		return TrueValue(), nil
	}

	if !sig.Verify(op.digest[:], pubKey) {
		return FalseValue(), nil
	}

	if op.cache != nil {
		op.cache.Add(op.digest, sig, pubKey)
	}
	return TrueValue(), nil
}
