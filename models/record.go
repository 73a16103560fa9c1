// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// LocalRecord is one row of a Local Collection table.
type LocalRecord struct {
	ID string `json:"id"`

	// Keys holds the denormalized foreign keys of the row (for example
	// "deck_id" of a card). They exist for indexed lookups only.
	Keys map[string]string `json:"keys,omitempty"`

	// Payload is the canonical representation of the entity.
	Payload json.RawMessage `json:"payload"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Decode unmarshals the record payload into v.
func (r LocalRecord) Decode(v any) error {
	return json.Unmarshal(r.Payload, v)
}
