// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// HashFunc is the contract for the one-way hash collaborator consumed by
// HashOp.  Implementations must be pure and produce a digest of fixed,
// known length.
type HashFunc func([]byte) []byte

// Sha256 returns the SHA-256 digest of the input.
func Sha256(buf []byte) []byte {
	digest := sha256.Sum256(buf)
	return digest[:]
}

// Ripemd160 returns the RIPEMD-160 digest of the input.
func Ripemd160(buf []byte) []byte {
	h := ripemd160.New()
	h.Write(buf)
	return h.Sum(nil)
}

// Hash160 returns RIPEMD-160 applied to the SHA-256 digest of the input,
// the digest used for public key hashes.
func Hash160(buf []byte) []byte {
	return btcutil.Hash160(buf)
}

// Hash256 returns the double SHA-256 digest of the input.
func Hash256(buf []byte) []byte {
	return chainhash.DoubleHashB(buf)
}
