// Package paths locates the files dbpibus keeps between runs: the settings
// file or database and the simulator's log.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvDir overrides the directory. systemd units on the Pi point it at
// /var/lib/dbpibus.
const EnvDir = "DBPIBUS_DIR"

const (
	dotConfig    = ".config"
	appName      = "dbpibus"
	settingsName = "dbpibus.json"
	dbName       = "dbpibus.db"
	logName      = "dbpibus.log"
)

func Dir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

// EnsureDir creates Dir if needed and returns it.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

func Settings() (string, error) { return join(settingsName) }

func DB() (string, error) { return join(dbName) }

func Log() (string, error) { return join(logName) }

func join(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
