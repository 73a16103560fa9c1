// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"sort"
	"strings"
)

// Entity names one synced collection kind. The set is closed: values outside
// of [Entities] are rejected by the validators.
type Entity string

const (
	EntityDeck            Entity = "deck"
	EntityCard            Entity = "card"
	EntityTemplate        Entity = "template"
	EntityStyle           Entity = "style"
	EntityField           Entity = "field"
	EntityFieldPreference Entity = "fieldPreference"
	EntityProgress        Entity = "progress"
	EntityUserPreference  Entity = "userPreference"
)

// Entities lists every synced entity kind in a stable order.
var Entities = []Entity{
	EntityDeck,
	EntityCard,
	EntityTemplate,
	EntityStyle,
	EntityField,
	EntityFieldPreference,
	EntityProgress,
	EntityUserPreference,
}

// Category is the priority tier that decides how often an entity kind is
// synchronized.
type Category string

const (
	// CategoryCold covers structural and configuration data.
	CategoryCold Category = "cold"
	// CategoryWarm covers cards.
	CategoryWarm Category = "warm"
	// CategoryHot covers review progress, the most latency-sensitive data.
	CategoryHot Category = "hot"
)

// AllCategories is the default category set of a sync pass.
var AllCategories = []Category{CategoryHot, CategoryWarm, CategoryCold}

// entityCategories is the single source of truth for the entity → category
// mapping. Nothing else in the code base decides a category.
var entityCategories = map[Entity]Category{
	EntityDeck:            CategoryCold,
	EntityTemplate:        CategoryCold,
	EntityStyle:           CategoryCold,
	EntityField:           CategoryCold,
	EntityFieldPreference: CategoryCold,
	EntityUserPreference:  CategoryCold,
	EntityCard:            CategoryWarm,
	EntityProgress:        CategoryHot,
}

// CategoryFor returns the category of entity. ok is false for unknown
// entities.
func CategoryFor(entity Entity) (category Category, ok bool) {
	category, ok = entityCategories[entity]
	return category, ok
}

// Valid reports whether e is one of the known entity kinds.
func (e Entity) Valid() bool {
	_, ok := entityCategories[e]
	return ok
}

// Category returns the category of e or an empty string for unknown kinds.
func (e Entity) Category() Category {
	return entityCategories[e]
}

// Valid reports whether c is hot, warm or cold.
func (c Category) Valid() bool {
	switch c {
	case CategoryHot, CategoryWarm, CategoryCold:
		return true
	}
	return false
}

// ParseCategories parses a comma separated category list such as
// "hot,warm". An empty string yields nil.
func ParseCategories(s string) ([]Category, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	categories := make([]Category, 0, len(parts))
	for _, part := range parts {
		c := Category(strings.ToLower(strings.TrimSpace(part)))
		if !c.Valid() {
			return nil, fmt.Errorf("unknown category %q", part)
		}
		categories = append(categories, c)
	}

	return NormalizeCategories(categories), nil
}

// NormalizeCategories returns a sorted copy of categories without duplicates.
// A nil or empty input stays nil, meaning "all categories" to the callers.
func NormalizeCategories(categories []Category) []Category {
	if len(categories) == 0 {
		return nil
	}

	seen := make(map[Category]struct{}, len(categories))
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// CategoriesKey renders a normalized category set as a stable string key.
func CategoriesKey(categories []Category) string {
	normalized := NormalizeCategories(categories)
	if len(normalized) == 0 {
		normalized = NormalizeCategories(AllCategories)
	}

	parts := make([]string, len(normalized))
	for i, c := range normalized {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
