// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-study-sync/internal/client"
)

func newLoginCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Adopt the identity named by a bearer token",
		Long: "login stores the token as the local session. When the identity differs from the " +
			"previous one, a full pass with forcePull follows so local collections match the new identity.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(app *client.App) error {
				session, switched, err := app.Login(cmd.Context(), args[0])
				if session.UserID == "" {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "logged in as %s\n", session.UserID)
				if !switched {
					return nil
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: identity switched but the refresh pass failed: %v\n", err)
					return nil
				}
				fmt.Fprintln(out, "identity switched, local data refreshed")
				return nil
			})
		},
	}
}

func newLogoutCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the active identity; queued operations are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(app *client.App) error {
				if err := app.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return nil
			})
		},
	}
}
