// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router of the reference server.
//
// Every route gets panic recovery, a trace id, access logging and gzip. The
// sync route additionally runs body signing and bearer identity checks:
//
//	GET  /api/ping
//	GET  /api/version/
//	POST /api/sync
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/ping", h.ping)
	router.Get("/api/version/", h.getServerVersion)

	// hashing sits inside gzip so it always sees plain bodies
	router.Group(func(r chi.Router) {
		r.Use(h.withHashing, h.withIdentity)
		r.Post("/api/sync", h.sync)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
