// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the identity middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken is returned when the bearer token does not name an
	// identity.
	ErrInvalidToken = errors.New("invalid token in `Authorization` header")

	// ErrIntegrityCheckFailed is returned by the hashing middleware when the
	// HashSHA256 header does not match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
