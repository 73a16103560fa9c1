// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// OperationType is the kind of local mutation carried by a PendingOperation.
type OperationType string

const (
	OperationUpsert OperationType = "UPSERT"
	OperationDelete OperationType = "DELETE"
)

// Valid reports whether t is UPSERT or DELETE.
func (t OperationType) Valid() bool {
	return t == OperationUpsert || t == OperationDelete
}

// PendingOperation is a queued local mutation that the remote side has not
// acknowledged yet.
type PendingOperation struct {
	// ID is generated at enqueue time.
	ID string `json:"id"`

	Entity   Entity `json:"entity"`
	EntityID string `json:"entityId"`

	// Category is always derived from Entity via [CategoryFor].
	Category Category      `json:"category"`
	Type     OperationType `json:"type"`

	// Payload is the full replacement value for UPSERT and nil for DELETE.
	Payload json.RawMessage `json:"payload"`

	// Version is an opaque conflict token, usually the local lastModifiedAt.
	Version string `json:"version,omitempty"`

	// CreatedAt defines the FIFO order within one category.
	CreatedAt time.Time `json:"createdAt"`

	// OwnerID is the local identity that produced the mutation. It is kept
	// locally and never sent as part of the sync contract.
	OwnerID string `json:"-"`
}

// PendingOperationDraft is what callers hand to the queue. ID, CreatedAt,
// Category and OwnerID are derived by the queue.
type PendingOperationDraft struct {
	Entity   Entity
	EntityID string
	Type     OperationType
	Payload  json.RawMessage
	Version  string

	// Owner is the declared owner of the affected record. For UPSERT it
	// defaults to the payload's ownerId.
	Owner string
}
