// Package http implements the HTTP transport of the reference sync server.
//
// It exposes the reconciliation endpoint, a liveness probe and the version
// endpoint. Request tracing, access logging, response compression, bearer
// identity extraction and body integrity checks are handled here before
// requests reach the service layer.
package http
