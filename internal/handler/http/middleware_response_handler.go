// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// captures the status code and the body size of a response.
//
// withLogging wraps every request with it and reads both values after the
// downstream handler has returned. The body itself is not buffered: sync
// responses can carry whole collection snapshots.
//
// WriteHeader is forwarded to the wrapped writer at most once. Later calls are
// ignored, as the [http.ResponseWriter] contract expects.
type responseWriter struct {
	http.ResponseWriter

	// status is the code recorded by the first WriteHeader call, explicit or
	// implied by Write. It stays zero while nothing has been written.
	status int

	// wroteHeader reports whether WriteHeader has reached the wrapped writer.
	wroteHeader bool

	// size is the number of body bytes the wrapped writer accepted.
	size int
}

// WriteHeader records statusCode and forwards it to the wrapped writer. Only
// the first call has an effect.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b and adds the accepted byte count to size. A Write without
// a prior WriteHeader implies [http.StatusOK].
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
