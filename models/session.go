// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the locally persisted authentication state. UserID is the
// active local identity used by the ownership guard.
type Session struct {
	UserID string    `json:"user_id"`
	Token  string    `json:"token"`
	At     time.Time `json:"at"`
}
