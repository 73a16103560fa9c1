// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-study-sync/models"
)

// indexColumn maps a denormalized table column to the payload path it is
// extracted from.
type indexColumn struct {
	column string
	path   string
}

// collectionTable describes the Local Collection table of one entity kind.
type collectionTable struct {
	name    string
	indexes []indexColumn
}

var ownerIndex = indexColumn{column: "owner_id", path: "ownerId"}

var collectionTables = map[models.Entity]collectionTable{
	models.EntityDeck: {
		name:    "decks",
		indexes: []indexColumn{ownerIndex},
	},
	models.EntityCard: {
		name: "cards",
		indexes: []indexColumn{
			ownerIndex,
			{column: "deck_id", path: "deckId"},
			{column: "template_id", path: "templateId"},
		},
	},
	models.EntityTemplate: {
		name: "templates",
		indexes: []indexColumn{
			ownerIndex,
			{column: "style_id", path: "styleId"},
		},
	},
	models.EntityStyle: {
		name:    "styles",
		indexes: []indexColumn{ownerIndex},
	},
	models.EntityField: {
		name: "fields",
		indexes: []indexColumn{
			ownerIndex,
			{column: "template_id", path: "templateId"},
		},
	},
	models.EntityFieldPreference: {
		name: "field_preferences",
		indexes: []indexColumn{
			ownerIndex,
			{column: "field_id", path: "fieldId"},
			{column: "deck_id", path: "deckId"},
		},
	},
	models.EntityProgress: {
		name: "progresses",
		indexes: []indexColumn{
			ownerIndex,
			{column: "card_id", path: "cardId"},
			{column: "deck_id", path: "deckId"},
		},
	},
	models.EntityUserPreference: {
		name:    "user_preferences",
		indexes: []indexColumn{ownerIndex},
	},
}

func tableFor(entity models.Entity) (collectionTable, error) {
	table, ok := collectionTables[entity]
	if !ok {
		return collectionTable{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return table, nil
}

// columns returns the table columns in insert order.
func (t collectionTable) columns() []string {
	cols := make([]string, 0, len(t.indexes)+3)
	cols = append(cols, "id")
	for _, idx := range t.indexes {
		cols = append(cols, idx.column)
	}
	return append(cols, "payload", "updated_at")
}

// hasIndex reports whether column is one of the extracted index columns.
func (t collectionTable) hasIndex(column string) bool {
	for _, idx := range t.indexes {
		if idx.column == column {
			return true
		}
	}
	return false
}

// values returns the row values of record matching columns().
func (t collectionTable) values(record models.LocalRecord) []any {
	vals := make([]any, 0, len(t.indexes)+3)
	vals = append(vals, record.ID)
	for _, idx := range t.indexes {
		vals = append(vals, record.Keys[idx.column])
	}
	return append(vals, string(record.Payload), record.UpdatedAt.UnixNano())
}

// RecordFromPayload builds the Local Collection row of a canonical entity
// payload. The id and the denormalized keys are read from the payload itself;
// updatedAt comes from "lastModifiedAt", then "updatedAt", then now.
func RecordFromPayload(entity models.Entity, payload json.RawMessage) (models.LocalRecord, error) {
	table, err := tableFor(entity)
	if err != nil {
		return models.LocalRecord{}, err
	}

	if !gjson.ValidBytes(payload) {
		return models.LocalRecord{}, fmt.Errorf("%w: malformed JSON", ErrInvalidPayload)
	}
	parsed := gjson.ParseBytes(payload)
	if !parsed.IsObject() {
		return models.LocalRecord{}, fmt.Errorf("%w: not an object", ErrInvalidPayload)
	}

	id := parsed.Get("id").String()
	if id == "" {
		return models.LocalRecord{}, fmt.Errorf("%w: empty id", ErrInvalidPayload)
	}

	keys := make(map[string]string, len(table.indexes))
	for _, idx := range table.indexes {
		keys[idx.column] = parsed.Get(idx.path).String()
	}

	return models.LocalRecord{
		ID:        id,
		Keys:      keys,
		Payload:   payload,
		UpdatedAt: payloadTime(parsed),
	}, nil
}

func payloadTime(parsed gjson.Result) time.Time {
	for _, path := range []string{"lastModifiedAt", "updatedAt"} {
		if v := parsed.Get(path); v.Exists() {
			if t, err := time.Parse(time.RFC3339Nano, v.String()); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Now().UTC()
}
