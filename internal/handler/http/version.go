// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// buildCommitHeader carries the commit the server binary was built from.
const buildCommitHeader = "X-Build-Commit"

// getServerVersion serves GET /api/version/ with the server version as a
// plain text body and the build commit in [buildCommitHeader].
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set(buildCommitHeader, h.services.AppInfoService.GetBuildInfo(ctx).BuildCommit())
	w.Write([]byte(serverVersion))
}
