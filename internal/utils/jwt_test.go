// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestParseSubject_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("study-server", "user-42", time.Hour, "secret")
	require.NoError(t, err)

	sub, err := ParseSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)
}

// TestParseSubject_IgnoresSignatureAndExpiry verifies the subject is read
// even from tokens the client cannot verify.
func TestParseSubject_IgnoresSignatureAndExpiry(t *testing.T) {
	expired, err := GenerateJWTToken("study-server", "user-7", -time.Minute, "other-key")
	require.NoError(t, err)

	sub, err := ParseSubject(expired)
	require.NoError(t, err)
	assert.Equal(t, "user-7", sub)
}

func TestParseSubject_EmptySubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": "x"}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = ParseSubject(token)
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestParseSubject_Malformed(t *testing.T) {
	_, err := ParseSubject("not.a.token")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "padded", header: "  Bearer tok  ", want: "tok"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "other scheme", header: "Basic abc", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
