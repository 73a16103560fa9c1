// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 5*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", got)
	}
	if client.RetryCount != 0 {
		t.Errorf("expected no automatic retries, got %d", client.RetryCount)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent resty clients")
	}
}
