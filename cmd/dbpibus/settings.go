package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or change the service menu settings",
	}
	cmd.AddCommand(settingsListCmd())
	cmd.AddCommand(settingsGetCmd())
	cmd.AddCommand(settingsSetCmd())
	return cmd
}

func settingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every setting, its value and its options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
}

func settingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print one setting",
		Args:      cobra.ExactArgs(1),
		ValidArgs: keyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := settings.Key(args[0])
			if _, ok := settings.Lookup(key); !ok {
				return fmt.Errorf("%w: %s", settings.ErrUnknownKey, key)
			}
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.Get(key))
				return nil
			})
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long:  "Changes a setting in the configured store. A running display picks it up on restart.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := settings.Key(args[0]), args[1]
			return withSettings(cmd.Context(), func(s *settings.Settings) error {
				if err := s.Set(cmd.Context(), key, value); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
				return nil
			})
		},
	}
}

func withSettings(ctx context.Context, fn func(*settings.Settings) error) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	s, store, err := openSettings(ctx, cfg, xslog.Discard())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return fn(s)
}

func printSettings(w io.Writer, s settings.Reader) {
	width := 0
	for _, d := range settings.Definitions {
		width = max(width, len(d.Key))
	}
	for _, d := range settings.Definitions {
		fmt.Fprintf(w, "%-*s  %-14s  %s\n", width, d.Key, s.Get(d.Key), strings.Join(d.Options, "|"))
	}
}

func keyNames() []string {
	names := make([]string, 0, len(settings.Definitions))
	for _, d := range settings.Definitions {
		names = append(names, string(d.Key))
	}
	slices.Sort(names)
	return names
}
