// Package server runs the reference reconciliation server: it owns the HTTP
// listener lifecycle, including startup, signal handling and graceful
// shutdown.
package server
