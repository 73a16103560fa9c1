// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// withHashing checks the HashSHA256 header of signed requests and signs every
// response body. It is a no-op when no hash key is configured. Unsigned
// requests are accepted so that clients without a key can still sync.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if !h.hasher.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if signature := r.Header.Get(HashHeader); signature != "" {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			// restore request body
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, signature) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
				return
			}
		}

		bw := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(bw, r)

		body := bw.buf.Bytes()
		w.Header().Set(HashHeader, h.hasher.SumHex(body))
		w.WriteHeader(bw.status)
		if _, err := w.Write(body); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response body")
		}
	})
}

// bufferedResponseWriter holds the response back until it can be signed.
// Nothing reaches the wrapped writer until withHashing has computed the
// HashSHA256 header over the complete body.
type bufferedResponseWriter struct {
	http.ResponseWriter

	// buf collects everything the handler writes.
	buf bytes.Buffer

	// status is the last code passed to WriteHeader, [http.StatusOK] when
	// the handler never calls it.
	status int
}

// WriteHeader only records statusCode. withHashing sends it once the
// signature header is set.
func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

// Write appends b to the buffer.
func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
