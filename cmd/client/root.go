// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-study-sync/internal/client"
	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

const appName = "studysync"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	dsn        string
	address    string
	hashKey    string
	logFile    string
	asJSON     bool
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Offline-first sync client for study data",
		Long:          "studysync queues local study mutations and reconciles them with the remote endpoint in hot, warm and cold categories.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = buildInfo.BuildVersion()
	cmd.SetVersionTemplate(appName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON config file")
	flags.StringVar(&opts.dsn, "db", "", "path to the local SQLite database")
	flags.StringVarP(&opts.address, "address", "a", "", "base URL of the remote sync endpoint")
	flags.StringVarP(&opts.hashKey, "hash-key", "k", "", "HMAC key for request integrity")
	flags.StringVar(&opts.logFile, "log-file", "", "path of the rotating log file")
	flags.BoolVar(&opts.asJSON, "json", false, "output in JSON format")

	cmd.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newSyncCmd(opts),
		newPendingCmd(opts),
		newStatusCmd(opts),
		newEnqueueCmd(opts),
		newDeviceCmd(opts),
		newResetCmd(opts),
		newRunCmd(opts),
		newVersionCmd(buildInfo),
	)

	return cmd
}

// overrides turns the flags the user actually set into a config layer.
func (o *globalOptions) overrides(cmd *cobra.Command) *config.StructuredConfig {
	cfg := &config.StructuredConfig{
		JSONFilePath: o.configPath,
		App:          config.App{HashKey: o.hashKey},
		Adapter:      config.Adapter{HTTPAddress: o.address},
		Storage:      config.Storage{DB: config.DB{DSN: o.dsn}},
		Log:          config.Log{File: o.logFile},
	}

	if !cmd.Flags().Changed("db") && os.Getenv("STORAGE_DB_DSN") == "" {
		cfg.Storage.DB.DSN = defaultDSN()
	}

	return cfg
}

// defaultDSN places the database in the user config directory, falling back
// to the working directory.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return appName + ".db"
	}
	return filepath.Join(dir, appName, appName+".db")
}

// openApp loads the client configuration and opens the App. The caller must
// Close it.
func (o *globalOptions) openApp(cmd *cobra.Command) (*client.App, error) {
	cfg, err := config.GetClientConfig(o.overrides(cmd))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if dir := filepath.Dir(cfg.Storage.DB.DSN); dir != "" {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	log := logger.NewClientLogger(appName, cfg.Log.File)
	return client.NewApp(cmd.Context(), cfg, log)
}

// withApp opens the App, runs fn and closes the App again.
func (o *globalOptions) withApp(cmd *cobra.Command, fn func(app *client.App) error) error {
	app, err := o.openApp(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer app.Close()

	if err = fn(app); err != nil {
		return writeCommandError(cmd, err)
	}
	return nil
}

// reportedError marks an error that was already written to stderr.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func writeCommandError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
	return reportedError{err}
}

// execute runs cmd and reports errors cobra raised on its own, such as an
// unknown flag or a wrong argument count.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.As(err, new(reportedError)) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
		fmt.Fprintf(cmd.ErrOrStderr(), "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseCategories accepts repeated or comma separated category names.
func parseCategories(values []string) ([]models.Category, error) {
	var categories []models.Category
	for _, value := range values {
		parsed, err := models.ParseCategories(value)
		if err != nil {
			return nil, fmt.Errorf("%w (want hot, warm or cold)", err)
		}
		categories = append(categories, parsed...)
	}
	return models.NormalizeCategories(categories), nil
}

func parseEntity(value string) (models.Entity, error) {
	entity := models.Entity(value)
	if !entity.Valid() {
		names := make([]string, 0, len(models.Entities))
		for _, e := range models.Entities {
			names = append(names, string(e))
		}
		return "", fmt.Errorf("unknown entity %q (want one of %s)", value, strings.Join(names, ", "))
	}
	return entity, nil
}
