package main

import (
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Fetch the current stats once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client := newStatsClient(cfg, xslog.Discard())
			snap, err := client.Fetch(cmd.Context(), time.Now())
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %w", err)
			}

			out, err := go_json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode stats: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
