// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestNewHasher_EmptyKeyDisables(t *testing.T) {
	h := NewHasher("")
	assert.Nil(t, h)
	assert.False(t, h.Enabled())
}

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	require.True(t, h.Enabled())

	body := []byte(`{"deviceId":"device-1","operations":[]}`)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, h.SumHex(body))
	// pooled instance must be reset between calls
	assert.Equal(t, want, h.SumHex(body))
}

func TestHasher_DifferentKeys(t *testing.T) {
	body := []byte(`{"cursors":{"hot":"7"}}`)

	assert.NotEqual(t, NewHasher("key-one").SumHex(body), NewHasher("key-two").SumHex(body))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	body := []byte(`{"appliedOperationIds":["op-1"]}`)
	sig := h.SumHex(body)

	tests := []struct {
		name string
		data []byte
		sig  string
		want bool
	}{
		{name: "valid", data: body, sig: sig, want: true},
		{name: "tampered body", data: []byte(`{"appliedOperationIds":[]}`), sig: sig, want: false},
		{name: "not hex", data: body, sig: "zz", want: false},
		{name: "empty", data: body, sig: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.data, tt.sig))
		})
	}
}
