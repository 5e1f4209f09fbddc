// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024-2026 The scriptvm developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scriptvm

import (
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigCacheEntry represents an entry in the SigCache.  Entries within the
// SigCache are keyed according to the digest of the message the signature
// covers.  In the scenario of a cache collision, newer entries overwrite
// previous ones.
type sigCacheEntry struct {
	sig    *ecdsa.Signature
	pubKey *btcec.PublicKey
}

// SigCache implements an ECDSA signature verification cache with a
// randomized entry eviction policy.  Only valid signatures will be added
// to the cache.  Usage of SigCache avoids re-running the verification
// math for scripts that are evaluated more than once, and bounds the work
// an attacker can force with crafted invalid signatures since those are
// never cached.
type SigCache struct {
	validSigs  map[chainhash.Hash]sigCacheEntry
	maxEntries uint
	sync.RWMutex
}

// NewSigCache creates and initializes a new instance of SigCache.  Its
// sole parameter 'maxEntries' represents the maximum number of entries
// allowed to exist in the SigCache at any particular moment.  Random
// entries are evicted to make room for new entries that would cause the
// number of entries in the cache to exceed the max.
func NewSigCache(maxEntries uint) *SigCache {
	return &SigCache{
		validSigs:  make(map[chainhash.Hash]sigCacheEntry, maxEntries),
		maxEntries: maxEntries,
	}
}

// Exists returns true if an existing entry of 'sig' over 'sigHash' for
// public key 'pubKey' is found within the SigCache.  Otherwise, false is
// returned.
//
// NOTE: This function is safe for concurrent access.  Readers won't be
// blocked unless there exists a writer, adding an entry to the SigCache.
func (s *SigCache) Exists(sigHash chainhash.Hash, sig *ecdsa.Signature, pubKey *btcec.PublicKey) bool {
	s.RLock()
	entry, ok := s.validSigs[sigHash]
	s.RUnlock()

	return ok && entry.pubKey.IsEqual(pubKey) && entry.sig.IsEqual(sig)
}

// Add adds an entry for a signature over 'sigHash' under public key
// 'pubKey' to the signature cache.  In the event that the SigCache is
// 'full', an existing entry is randomly chosen to be evicted in order to
// make space for the new entry.
//
// NOTE: This function is safe for concurrent access.  Writers will block
// simultaneous readers until function execution has concluded.
func (s *SigCache) Add(sigHash chainhash.Hash, sig *ecdsa.Signature, pubKey *btcec.PublicKey) {
	s.Lock()
	defer s.Unlock()

	if s.maxEntries <= 0 {
		return
	}

	// If adding this new entry will put us over the max number of allowed
	// entries, then evict an entry.  Relying on the random starting point
	// of Go's map iteration, this effectively evicts a pseudo-random
	// entry.
	if uint(len(s.validSigs)+1) > s.maxEntries {
		for sigEntry := range s.validSigs {
			delete(s.validSigs, sigEntry)
			break
		}
	}
	s.validSigs[sigHash] = sigCacheEntry{sig, pubKey}
}
