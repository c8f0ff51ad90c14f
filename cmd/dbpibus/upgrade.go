package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/dbpibus/dbpibus/internal/client/github"
	"github.com/dbpibus/dbpibus/internal/version"
)

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			client := github.NewClient()
			latest, err := client.GetLatestRelease(ctx, github.DefaultOwner, github.DefaultRepo)
			if errors.Is(err, github.ErrNoRelease) {
				fmt.Printf("no releases published yet (running %s)\n", currentVersion)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(currentVersion, latest.TagName) {
				fmt.Printf("dbpibus is up to date (%s)\n", currentVersion)
				return nil
			}

			fmt.Printf("Updating dbpibus %s → %s\n", currentVersion, latest.TagName)
			return goInstallUpgrade(ctx, latest.TagName)
		},
	}
}

// goInstallUpgrade rebuilds from source. The Pi image ships a Go toolchain;
// restart the service afterwards to pick up the new binary.
func goInstallUpgrade(ctx context.Context, tag string) error {
	cmd := exec.CommandContext(ctx, "go", "install", "github.com/dbpibus/dbpibus/cmd/dbpibus@"+tag)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("upgrade failed: %w", err)
	}
	fmt.Println("Successfully updated! Restart the dbpibus service to run it.")
	return nil
}
