package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// hasherPool holds reusable HMAC-SHA256 instances keyed with the shared
// transport hash key. Must be initialized via InitHasherPool before the first
// call to Hash.
var hasherPool sync.Pool

// InitHasherPool configures the package-level hasher pool with the given key.
// Both the client adapter and the server hashing middleware call it once at
// startup with the same SECURITY_HASH_KEY so that request body signatures
// computed on one side verify on the other.
//
// Pooling avoids allocating a fresh hash.Hash for every signed request.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 digest of data using a hasher taken from the
// pool. The hasher is reset before and after use, so leftover state from a
// previous request can never leak into the digest.
//
// The returned slice is the raw digest; callers that put it in the
// HashSHA256 header hex-encode it first.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}
