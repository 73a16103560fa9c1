// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-study-sync/internal/utils"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip encoded sync bodies and compresses responses for
// clients that send Accept-Encoding: gzip. Large collection snapshots are the
// main beneficiary.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasToken(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				utils.WriteError(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !hasToken(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			_ = zw.Close()
			gzipWriters.Put(zw)
		}()

		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, r)
	})
}

// hasToken reports whether a comma separated header value such as
// Accept-Encoding mentions token.
func hasToken(header, token string) bool {
	return strings.Contains(header, token)
}

// inflate returns a body that decompresses src and puts its reader back into
// the pool on Close.
func inflate(src io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &pooledReader{Reader: zr, release: func() {
		_ = zr.Close()
		gzipReaders.Put(zr)
		_ = src.Close()
	}}, nil
}

// pooledReader is the request body handed to the sync handler when the
// client sent a gzip encoded body.
type pooledReader struct {
	io.Reader

	// release returns the gzip reader to gzipReaders and closes the original
	// body. It runs at most once.
	release func()
	once    sync.Once
}

// Close releases the pooled gzip reader. It is safe to call more than once,
// which happens when both the handler and net/http close the body.
func (p *pooledReader) Close() error {
	if p.release != nil {
		p.once.Do(p.release)
	}
	return nil
}

// gzipResponseWriter compresses the response body through a pooled
// [gzip.Writer]. Headers still go to the wrapped writer, so withGZip must
// close zw after the handler returns to flush the trailer.
type gzipResponseWriter struct {
	http.ResponseWriter

	// zw writes into the wrapped ResponseWriter.
	zw *gzip.Writer

	// wroteHeader guards the one-time header rewrite in WriteHeader.
	wroteHeader bool
}

// WriteHeader marks the response as gzip encoded and drops any
// Content-Length, which would describe the uncompressed body.
func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(status)
}

// Write compresses p. The returned count is the number of uncompressed bytes
// consumed.
func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(p)
}
