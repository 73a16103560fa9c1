// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags (the server's own flag set, or the layer the client
//     CLI builds from its cobra flags)
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the reference server
// and [GetClientConfig] for the sync client.
package config
