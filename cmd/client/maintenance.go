// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-study-sync/internal/client"
	"github.com/MKhiriev/go-study-sync/models"
)

var errResetNotConfirmed = errors.New("reset wipes all local data, pass --yes to confirm")

func newResetCmd(opts *globalOptions) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all local data, including queued operations and the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return writeCommandError(cmd, errResetNotConfirmed)
			}
			return opts.withApp(cmd, func(app *client.App) error {
				if err := app.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "local data wiped")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the wipe")
	return cmd
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Keep syncing in the background until interrupted",
		Long: "run enables the scheduler (hot and warm timers, retry backoff), probes the remote endpoint " +
			"for reconnects and treats SIGCONT as returning to the foreground. Stop it with Ctrl+C.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(app *client.App) error {
				fmt.Fprintln(cmd.OutOrStdout(), "syncing in the background, press Ctrl+C to stop")
				return app.Run(cmd.Context())
			})
		},
	}
}

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", buildInfo.BuildCommit())
			return nil
		},
	}
}
