// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command studysync is the command line front end of the study data sync
// client: it queues local mutations, runs sync passes and keeps a background
// scheduler alive with "studysync run".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-study-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := execute(ctx, root); err != nil {
		stop()
		os.Exit(1)
	}
}
