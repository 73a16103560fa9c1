// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime used by the studysync
// CLI.
//
// [App] wires the local store, the remote adapter and the client services.
// While [App.Run] is active it also runs the scheduler together with the two
// environment signal sources of a terminal process: [ConnectivityMonitor]
// (reconnects) and [VisibilityMonitor] (resume from background).
package client
