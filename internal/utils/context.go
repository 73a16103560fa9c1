// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, bearer token parsing,
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the identity taken from the bearer
// token's subject.
var UserIDCtxKey = contextKey("userID")

// DeviceIDCtxKey is the key used to store the device identifier a sync
// request was sent from.
var DeviceIDCtxKey = contextKey("deviceID")

// GetUserIDFromContext retrieves the identity from the context.
// ok is false when the value is missing, empty, or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithDeviceID returns a copy of ctx carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}

// GetDeviceIDFromContext retrieves the device identifier from the context.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
