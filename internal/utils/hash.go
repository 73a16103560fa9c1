// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing of request and response bodies.
// Hash instances are pooled per key so concurrent requests do not allocate
// a new HMAC each time.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher for hashKey, or nil when hashKey is empty.
// A nil *Hasher is valid and disables hashing.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	sig := h.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Enabled reports whether the hasher has a key.
func (h *Hasher) Enabled() bool {
	return h != nil
}

// Sum computes the raw HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex computes the hex-encoded HMAC-SHA256 digest of data, the format
// carried by the HashSHA256 header.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex digest of data. Comparison is
// constant-time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	decoded, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), decoded)
}
