// Package config holds the environment helpers shared by the labtrack
// binaries.
package config

import (
	"os"
	"path/filepath"
)

const (
	// CLIConfigEnv overrides the location of the CLI config file
	CLIConfigEnv = "LABTRACK_CONFIG"
	// CLIConfigFileName is the CLI config file kept in the home directory
	CLIConfigFileName = ".labtrack.yaml"
)

// GetEnv returns the value of key, or fallback when it is unset
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// CLIConfigPath is ~/.labtrack.yaml unless LABTRACK_CONFIG points elsewhere.
// Without a home directory the file is looked up in the working directory.
func CLIConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return GetEnv(CLIConfigEnv, filepath.Join(home, CLIConfigFileName))
}
