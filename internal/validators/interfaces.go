// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks queue drafts on the client and reconciliation
// requests on the reference server.
//
// A [Validator] accepts any supported model and an optional list of field
// names. With no fields a sensible default set is checked; with fields only
// those are checked, in order, and the first failure is returned. Failures
// are sentinels from errors.go, so callers match them with [errors.Is].
package validators

import "context"

// Validator validates an arbitrary model, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
