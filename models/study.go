// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Syncable is implemented by every study entity that can be queued for
// synchronization.
type Syncable interface {
	// Kind returns the entity kind of the value.
	Kind() Entity
	// Key returns the record identifier within its collection.
	Key() string
	// Owner returns the declared owner of the record.
	Owner() string
}

// Deck groups cards.
type Deck struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	TemplateID     string     `json:"templateId,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// Card is a single study item rendered by a template.
type Card struct {
	ID             string            `json:"id"`
	OwnerID        string            `json:"ownerId"`
	DeckID         string            `json:"deckId"`
	TemplateID     string            `json:"templateId,omitempty"`
	Fields         map[string]string `json:"fields,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	CreatedAt      *time.Time        `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time        `json:"lastModifiedAt,omitempty"`
}

// Template describes how a card's fields are laid out on each side.
type Template struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	Name           string     `json:"name"`
	StyleID        string     `json:"styleId,omitempty"`
	FieldIDs       []string   `json:"fieldIds,omitempty"`
	Front          string     `json:"front,omitempty"`
	Back           string     `json:"back,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// Style is a reusable stylesheet attached to templates.
type Style struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	Name           string     `json:"name"`
	CSS            string     `json:"css,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// Field is a named slot of a template.
type Field struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	TemplateID     string     `json:"templateId"`
	Name           string     `json:"name"`
	InputType      string     `json:"kind,omitempty"`
	Order          int        `json:"order"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// FieldPreference is a per-deck display preference for a field.
type FieldPreference struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	FieldID        string     `json:"fieldId"`
	DeckID         string     `json:"deckId,omitempty"`
	Hidden         bool       `json:"hidden"`
	Position       int        `json:"position"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// Progress is the review state of one card. The scheduling numbers are
// produced by an external spaced-repetition library and stored as-is.
type Progress struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	CardID         string     `json:"cardId"`
	DeckID         string     `json:"deckId,omitempty"`
	Due            *time.Time `json:"due,omitempty"`
	Stability      float64    `json:"stability"`
	Difficulty     float64    `json:"difficulty"`
	Reps           int        `json:"reps"`
	Lapses         int        `json:"lapses"`
	State          string     `json:"state,omitempty"`
	LastReview     *time.Time `json:"lastReview,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

// UserPreference is a single user-level setting.
type UserPreference struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"ownerId"`
	Name           string          `json:"key"`
	Value          json.RawMessage `json:"value,omitempty"`
	LastModifiedAt *time.Time      `json:"lastModifiedAt,omitempty"`
}

// Syncable implementations. The owner is whatever the record declares; the
// ownership guard compares it with the active identity.

func (d Deck) Kind() Entity  { return EntityDeck }
func (d Deck) Key() string   { return d.ID }
func (d Deck) Owner() string { return d.OwnerID }

func (c Card) Kind() Entity  { return EntityCard }
func (c Card) Key() string   { return c.ID }
func (c Card) Owner() string { return c.OwnerID }

func (t Template) Kind() Entity  { return EntityTemplate }
func (t Template) Key() string   { return t.ID }
func (t Template) Owner() string { return t.OwnerID }

func (s Style) Kind() Entity  { return EntityStyle }
func (s Style) Key() string   { return s.ID }
func (s Style) Owner() string { return s.OwnerID }

func (f Field) Kind() Entity  { return EntityField }
func (f Field) Key() string   { return f.ID }
func (f Field) Owner() string { return f.OwnerID }

func (f FieldPreference) Kind() Entity  { return EntityFieldPreference }
func (f FieldPreference) Key() string   { return f.ID }
func (f FieldPreference) Owner() string { return f.OwnerID }

func (p Progress) Kind() Entity  { return EntityProgress }
func (p Progress) Key() string   { return p.ID }
func (p Progress) Owner() string { return p.OwnerID }

func (u UserPreference) Kind() Entity  { return EntityUserPreference }
func (u UserPreference) Key() string   { return u.ID }
func (u UserPreference) Owner() string { return u.OwnerID }
