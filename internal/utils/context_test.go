// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-42")

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "user-42" {
		t.Errorf("expected userID=user-42, got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %s", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty identity, got true")
	}
}

func TestDeviceIDRoundTrip(t *testing.T) {
	ctx := WithDeviceID(context.Background(), "device-1")

	deviceID, ok := GetDeviceIDFromContext(ctx)

	if !ok || deviceID != "device-1" {
		t.Errorf("expected device-1, got %q (ok=%v)", deviceID, ok)
	}
	if _, ok := GetDeviceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false on a bare context")
	}
}
