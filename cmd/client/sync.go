// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-study-sync/internal/client"
	"github.com/MKhiriev/go-study-sync/models"
)

func newSyncCmd(opts *globalOptions) *cobra.Command {
	var (
		categories []string
		forcePull  bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync pass now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategories(categories)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			return opts.withApp(cmd, func(app *client.App) error {
				snapshot, err := app.Sync(cmd.Context(), forcePull, cats...)
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(cmd, snapshot)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "applied %s operation(s), %s still queued\n",
					humanize.Comma(int64(len(snapshot.Metadata.AppliedOperationIDs))),
					humanize.Comma(int64(snapshot.QueueSize)))
				writeCursors(out, snapshot.Metadata.Cursors)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "restrict the pass to hot, warm or cold (repeatable)")
	cmd.Flags().BoolVar(&forcePull, "force", false, "ask the remote side for complete snapshots")

	return cmd
}

func newPendingCmd(opts *globalOptions) *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List queued operations in send order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategories(categories)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			return opts.withApp(cmd, func(app *client.App) error {
				pending, err := app.Pending(cmd.Context(), cats...)
				if err != nil {
					return err
				}
				if opts.asJSON {
					if pending == nil {
						pending = []models.PendingOperation{}
					}
					return writeJSON(cmd, pending)
				}

				out := cmd.OutOrStdout()
				if len(pending) == 0 {
					fmt.Fprintln(out, "queue is empty")
					return nil
				}
				for _, op := range pending {
					fmt.Fprintf(out, "%s  %-4s  %-6s  %s/%s  %s\n",
						op.ID, op.Category, op.Type, op.Entity, op.EntityID, humanize.Time(op.CreatedAt))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "only show hot, warm or cold operations (repeatable)")

	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show identity, device, cursors and queue size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(app *client.App) error {
				report, err := app.Status(cmd.Context())
				if err != nil {
					return err
				}
				if opts.asJSON {
					return writeJSON(cmd, report)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "identity:   %s\n", orDash(report.Identity))
				fmt.Fprintf(out, "device:     %s\n", orDash(report.DeviceID))
				if report.LastSyncAt.IsZero() {
					fmt.Fprintln(out, "last sync:  never")
				} else {
					fmt.Fprintf(out, "last sync:  %s\n", humanize.Time(report.LastSyncAt))
				}
				fmt.Fprintf(out, "queued:     %d (hot %d, warm %d, cold %d)\n",
					report.QueueSize,
					report.QueueByCategory[models.CategoryHot],
					report.QueueByCategory[models.CategoryWarm],
					report.QueueByCategory[models.CategoryCold])
				writeCursors(out, report.Cursors)
				return nil
			})
		},
	}
}

func newDeviceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "device",
		Short: "Print the device id of this installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(app *client.App) error {
				deviceID, err := app.DeviceID(cmd.Context())
				if err != nil {
					return err
				}
				if deviceID == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "not assigned yet, it is created by the first sync pass")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), deviceID)
				return nil
			})
		},
	}
}

func writeCursors(out io.Writer, cursors models.CursorMap) {
	for _, c := range []struct {
		name  models.Category
		value *string
	}{
		{models.CategoryHot, cursors.Hot},
		{models.CategoryWarm, cursors.Warm},
		{models.CategoryCold, cursors.Cold},
	} {
		value := "-"
		if c.value != nil {
			value = *c.value
		}
		fmt.Fprintf(out, "cursor %-4s %s\n", c.name, value)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
