package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/paths"
	"github.com/dbpibus/dbpibus/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending settings database migrations",
		Long: "Applies migrations for the sqlite or postgres settings backend. " +
			"The display also does this on startup.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			return migrate(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
}

func migrate(ctx context.Context, w io.Writer, cfg config.Config) error {
	var (
		store   storage.SettingsStore
		applied []string
		err     error
	)

	switch backend := storage.Backend(cfg.Settings.Backend); backend {
	case storage.BackendSQLite:
		path := cfg.Settings.SQLitePath
		if path == "" {
			if _, err := paths.EnsureDir(); err != nil {
				return err
			}
			if path, err = paths.DB(); err != nil {
				return err
			}
		}
		store, applied, err = storage.OpenSQLite(ctx, path)
	case storage.BackendPostgres:
		if cfg.Database.URL == "" {
			return fmt.Errorf("postgres settings backend needs DATABASE_URL")
		}
		store, applied, err = storage.OpenPostgres(ctx, cfg.Database.URL)
	default:
		return fmt.Errorf("settings backend %q has no migrations (use sqlite or postgres)", backend)
	}
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if len(applied) == 0 {
		fmt.Fprintln(w, "No pending migrations")
		return nil
	}
	for _, name := range applied {
		fmt.Fprintf(w, "Applied %s\n", name)
	}
	return nil
}
