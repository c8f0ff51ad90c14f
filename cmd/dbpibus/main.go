package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dbpibus/dbpibus/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "dbpibus",
		Short: "Desert Bus stats on a 16x2 LCD",
		Long: "Polls the Desert Bus for Hope stats feed and shows it on an RGB-backlit " +
			"character LCD, with shift animations and a four-button service menu.",
		Version: version.Get(),
		RunE:    runDisplay,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(simCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(upgradeCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
