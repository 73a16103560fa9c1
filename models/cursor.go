// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CursorMap holds one opaque incremental-sync token per category. A nil field
// means "no cursor known" in a read and "leave untouched" in a write.
type CursorMap struct {
	Cold *string `json:"cold,omitempty"`
	Warm *string `json:"warm,omitempty"`
	Hot  *string `json:"hot,omitempty"`
}

// Get returns the cursor of category c.
func (m CursorMap) Get(c Category) (string, bool) {
	p := m.ptr(c)
	if p == nil || *p == nil {
		return "", false
	}
	return **p, true
}

// Set stores value as the cursor of category c.
func (m *CursorMap) Set(c Category, value string) {
	if p := m.ptr(c); p != nil {
		v := value
		*p = &v
	}
}

// Merge copies every category present in other into m and leaves the rest.
func (m *CursorMap) Merge(other CursorMap) {
	for _, c := range AllCategories {
		if v, ok := other.Get(c); ok {
			m.Set(c, v)
		}
	}
}

// Empty reports whether no category carries a cursor.
func (m CursorMap) Empty() bool {
	return m.Cold == nil && m.Warm == nil && m.Hot == nil
}

// Entries returns the present cursors keyed by category.
func (m CursorMap) Entries() map[Category]string {
	out := make(map[Category]string, 3)
	for _, c := range AllCategories {
		if v, ok := m.Get(c); ok {
			out[c] = v
		}
	}
	return out
}

// ptr returns the field holding the cursor of c, nil for unknown categories.
func (m *CursorMap) ptr(c Category) **string {
	switch c {
	case CategoryCold:
		return &m.Cold
	case CategoryWarm:
		return &m.Warm
	case CategoryHot:
		return &m.Hot
	}
	return nil
}
