// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

const (
	syncPath = "/api/sync"
	pingPath = "/api/ping"
)

// httpServerAdapter is the resty based [ServerAdapter].
type httpServerAdapter struct {
	// client carries the base URL, timeout and transport retries.
	client *utils.HTTPClient

	// hasher signs request bodies and checks HashSHA256 on responses when a
	// hash key is configured.
	hasher *utils.Hasher

	// token is the bearer token of the active session, guarded by mu.
	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout. When
// appCfg.HashKey is set every request body is signed and signed responses
// are verified.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Sync implements [ServerAdapter]. It POSTs req to /api/sync and decodes the
// reconciliation response.
func (h *httpServerAdapter) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if req.Operations == nil {
		req.Operations = []models.PendingOperation{}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("encode sync request: %w", err)
	}

	request := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher.Enabled() {
		request.SetHeader(HashHeader, h.hasher.SumHex(body))
	}

	resp, err := request.Post(syncPath)
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Sync").Msg("sync request failed")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpServerAdapter.Sync").
			Int("status", resp.StatusCode()).
			Msg("sync endpoint rejected the request")
		return models.SyncResponse{}, err
	}

	if err = h.verifyResponse(resp); err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Sync").Msg("unsigned or tampered sync response")
		return models.SyncResponse{}, err
	}

	var out models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	log.Debug().
		Str("func", "httpServerAdapter.Sync").
		Int("sent", len(req.Operations)).
		Int("applied", len(out.AppliedOperationIDs)).
		Dur("took", resp.Time()).
		Msg("sync round trip finished")

	return out, nil
}

// Ping implements [ServerAdapter].
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(pingPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return mapHTTPError(resp)
}

// verifyResponse checks the response signature when hashing is enabled and
// the server sent one.
func (h *httpServerAdapter) verifyResponse(resp *resty.Response) error {
	signature := resp.Header().Get(HashHeader)
	if !h.hasher.Enabled() || signature == "" {
		return nil
	}
	if !h.hasher.Verify(resp.Body(), signature) {
		return ErrIntegrityViolation
	}
	return nil
}

// authedRequest starts a request bound to ctx, with the bearer token of the
// active session when there is one.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
