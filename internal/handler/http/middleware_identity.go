// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
)

// withIdentity stores the subject of an optional bearer token in the request
// context under [utils.UserIDCtxKey]. Requests without an "Authorization"
// header pass through anonymously; a header that does not carry a readable
// token is rejected with 401.
//
// The reference server does not verify signatures. A real backend replaces
// this middleware with one that does.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIdentity").Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		userID, err := utils.ParseSubject(tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIdentity").Msg("token does not name an identity")
			utils.WriteError(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
