// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/adapter"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/store"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// clientSessionService keeps the session in the metadata table and the
// bearer token in the adapter in step.
type clientSessionService struct {
	store   store.LocalStore
	adapter adapter.ServerAdapter

	// now stamps the session start. Tests replace it.
	now func() time.Time
}

// NewClientSessionService creates a SessionService persisting the session in
// the metadata table of localStore.
func NewClientSessionService(localStore store.LocalStore, serverAdapter adapter.ServerAdapter) SessionService {
	return &clientSessionService{
		store:   localStore,
		adapter: serverAdapter,
		now:     time.Now,
	}
}

// Login implements SessionService. The token is not verified here: the
// remote endpoint does that on every request.
func (s *clientSessionService) Login(ctx context.Context, token string) (models.Session, bool, error) {
	log := logger.FromContext(ctx)

	userID, err := utils.ParseSubject(token)
	if err != nil {
		log.Err(err).Str("func", "clientSessionService.Login").Msg("token does not name an identity")
		return models.Session{}, false, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	previous, err := s.store.Metadata().LoadSession(ctx)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		log.Err(err).Str("func", "clientSessionService.Login").Msg("failed to read stored session")
		return models.Session{}, false, err
	}

	session := models.Session{UserID: userID, Token: token, At: s.now().UTC()}
	if err = s.store.Metadata().SaveSession(ctx, session); err != nil {
		log.Err(err).Str("func", "clientSessionService.Login").Msg("failed to persist session")
		return models.Session{}, false, err
	}
	s.adapter.SetToken(token)

	switched := previous.UserID != userID
	log.Info().
		Str("func", "clientSessionService.Login").
		Str("user_id", userID).
		Bool("switched", switched).
		Msg("session started")

	return session, switched, nil
}

// Logout implements SessionService.
func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.store.Metadata().ClearSession(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientSessionService.Logout").Msg("failed to clear session")
		return err
	}
	s.adapter.SetToken("")
	return nil
}

// Restore implements SessionService.
func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.load(ctx)
	if err != nil {
		return models.Session{}, err
	}
	s.adapter.SetToken(session.Token)
	return session, nil
}

// ActiveIdentity implements SessionService. The session is read from storage
// every time so that a login from another process is seen immediately.
func (s *clientSessionService) ActiveIdentity(ctx context.Context) (string, error) {
	session, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

// load reads the persisted session. A missing session is reported as
// [ErrNotAuthenticated].
func (s *clientSessionService) load(ctx context.Context) (models.Session, error) {
	session, err := s.store.Metadata().LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotAuthenticated
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "clientSessionService.load").Msg("failed to read session")
		return models.Session{}, err
	}
	return session, nil
}
