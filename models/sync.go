// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncOptions tunes one sync pass.
type SyncOptions struct {
	// Categories restricts the pass. Empty means all categories.
	Categories []Category `json:"categories,omitempty"`

	// ForcePull asks the remote side to ignore its incremental cursor and
	// resend complete snapshots of the requested categories.
	ForcePull bool `json:"forcePull,omitempty"`

	// Reason is diagnostic only.
	Reason string `json:"reason,omitempty"`
}

// SyncRequest is the body of the remote reconciliation call.
type SyncRequest struct {
	DeviceID   string             `json:"deviceId"`
	Operations []PendingOperation `json:"operations"`
	Cursors    CursorMap          `json:"cursors"`
	Options    *SyncOptions       `json:"options,omitempty"`
}

// Collections carries the entity snapshots returned by the remote side. Each
// element is the canonical JSON payload of one record.
type Collections struct {
	Decks            []json.RawMessage `json:"decks,omitempty"`
	Cards            []json.RawMessage `json:"cards,omitempty"`
	Templates        []json.RawMessage `json:"templates,omitempty"`
	Styles           []json.RawMessage `json:"styles,omitempty"`
	Fields           []json.RawMessage `json:"fields,omitempty"`
	FieldPreferences []json.RawMessage `json:"fieldPreferences,omitempty"`
	Progresses       []json.RawMessage `json:"progresses,omitempty"`
	UserPreferences  []json.RawMessage `json:"userPreferences,omitempty"`
}

// ByEntity returns the non-empty collections keyed by entity kind.
func (c Collections) ByEntity() map[Entity][]json.RawMessage {
	all := map[Entity][]json.RawMessage{
		EntityDeck:            c.Decks,
		EntityCard:            c.Cards,
		EntityTemplate:        c.Templates,
		EntityStyle:           c.Styles,
		EntityField:           c.Fields,
		EntityFieldPreference: c.FieldPreferences,
		EntityProgress:        c.Progresses,
		EntityUserPreference:  c.UserPreferences,
	}

	out := make(map[Entity][]json.RawMessage, len(all))
	for entity, items := range all {
		if len(items) > 0 {
			out[entity] = items
		}
	}
	return out
}

// Set replaces the collection of entity with items.
func (c *Collections) Set(entity Entity, items []json.RawMessage) {
	switch entity {
	case EntityDeck:
		c.Decks = items
	case EntityCard:
		c.Cards = items
	case EntityTemplate:
		c.Templates = items
	case EntityStyle:
		c.Styles = items
	case EntityField:
		c.Fields = items
	case EntityFieldPreference:
		c.FieldPreferences = items
	case EntityProgress:
		c.Progresses = items
	case EntityUserPreference:
		c.UserPreferences = items
	}
}

// Len returns the total number of records over all collections.
func (c Collections) Len() int {
	n := 0
	for _, items := range c.ByEntity() {
		n += len(items)
	}
	return n
}

// SyncResponse is the body returned by the remote reconciliation endpoint.
type SyncResponse struct {
	AppliedOperationIDs []string    `json:"appliedOperationIds"`
	Collections         Collections `json:"collections"`
	Cursors             CursorMap   `json:"cursors"`
	DeviceID            string      `json:"deviceId"`
	Timestamp           time.Time   `json:"timestamp"`
}

// SyncMetadata describes a finished pass.
type SyncMetadata struct {
	DeviceID            string    `json:"deviceId"`
	Cursors             CursorMap `json:"cursors"`
	Timestamp           time.Time `json:"timestamp"`
	AppliedOperationIDs []string  `json:"appliedOperationIds"`
}

// SyncSnapshot is what a successful pass returns to its caller.
type SyncSnapshot struct {
	Collections Collections  `json:"collections"`
	QueueSize   int          `json:"queueSize"`
	Metadata    SyncMetadata `json:"metadata"`
}

// SyncState is the observable state of the sync engine.
type SyncState string

const (
	SyncStateIdle      SyncState = "idle"
	SyncStateRunning   SyncState = "running"
	SyncStateSucceeded SyncState = "succeeded"
	SyncStateFailed    SyncState = "failed"
)

// SyncStatus is published to observers after every state change.
type SyncStatus struct {
	State      SyncState `json:"state"`
	Reason     string    `json:"reason,omitempty"`
	LastError  string    `json:"lastError,omitempty"`
	LastSyncAt time.Time `json:"lastSyncAt,omitempty"`
	QueueSize  int       `json:"queueSize"`
}
