// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/logger"
)

// ownershipGuard is the [OwnershipGuard] implementation. It reads the active
// identity on every check instead of caching it.
type ownershipGuard struct {
	sessions SessionService
}

// NewOwnershipGuard creates an OwnershipGuard reading the active identity
// from sessions.
func NewOwnershipGuard(sessions SessionService) OwnershipGuard {
	return &ownershipGuard{sessions: sessions}
}

// Check implements OwnershipGuard. It never writes anything.
func (g *ownershipGuard) Check(ctx context.Context, declaredOwner string) (string, error) {
	active, err := g.sessions.ActiveIdentity(ctx)
	if err != nil {
		return "", err
	}

	if declaredOwner != "" && declaredOwner != active {
		logger.FromContext(ctx).Warn().
			Str("func", "ownershipGuard.Check").
			Str("active", active).
			Str("declared_owner", declaredOwner).
			Msg("mutation rejected: record belongs to another identity")
		return "", fmt.Errorf("%w: record owned by %q, active identity is %q", ErrOwnershipMismatch, declaredOwner, active)
	}

	return active, nil
}
