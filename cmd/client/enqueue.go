// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-study-sync/internal/client"
	"github.com/MKhiriev/go-study-sync/models"
)

func newEnqueueCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queue a local mutation",
	}

	cmd.AddCommand(newEnqueueUpsertCmd(opts), newEnqueueDeleteCmd(opts))
	return cmd
}

func newEnqueueUpsertCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upsert <entity> <json|->",
		Short: "Queue a full replacement of a record; '-' reads the payload from stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := parseEntity(args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			payload := []byte(args[1])
			if args[1] == "-" {
				if payload, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return writeCommandError(cmd, fmt.Errorf("read payload: %w", err))
				}
			}

			return opts.withApp(cmd, func(app *client.App) error {
				op, err := app.EnqueueUpsert(cmd.Context(), entity, json.RawMessage(payload))
				if err != nil {
					return err
				}
				return printOperation(cmd, opts, op)
			})
		},
	}
}

func newEnqueueDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Queue the removal of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, err := parseEntity(args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}

			return opts.withApp(cmd, func(app *client.App) error {
				op, err := app.EnqueueDelete(cmd.Context(), entity, args[1])
				if err != nil {
					return err
				}
				return printOperation(cmd, opts, op)
			})
		},
	}
}

func printOperation(cmd *cobra.Command, opts *globalOptions, op models.PendingOperation) error {
	if opts.asJSON {
		return writeJSON(cmd, op)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "queued %s %s/%s as %s (%s)\n", op.Type, op.Entity, op.EntityID, op.ID, op.Category)
	return nil
}

