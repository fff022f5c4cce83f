// Package cli implements the ts-app command line on top of the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Itterum/ts-app/internal/adapters/driven/config/environment"
	"github.com/Itterum/ts-app/internal/adapters/driven/config/file"
	"github.com/Itterum/ts-app/internal/adapters/driven/storage/memory"
	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
	"github.com/Itterum/ts-app/internal/core/services"
	"github.com/Itterum/ts-app/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose     bool
	configDir   string
	backendName string
)

// svc holds the services commands run against. Tests preset it.
var svc *Services

// settingsService reads and writes the configuration file.
var settingsService *services.SettingsService

var rootCmd = &cobra.Command{
	Use:   "ts-app",
	Short: "Manage users and cars in memory",
	Long: `ts-app manages entities (users and cars) through a gateway over an
in-memory store. Nothing outlives the process: use "shell" for a session
or "demo" for a walkthrough.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print store operations to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Configuration directory (default ~/.ts-app)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Storage backend: memory or sqlite")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// owned reports whether svc was built by setup and must be closed by teardown.
var owned bool

func setup(cmd *cobra.Command, args []string) error {
	// A previous command that failed never reached teardown.
	if owned {
		teardown(cmd, args)
	}

	if settingsService == nil {
		settingsService = services.NewSettingsService(openConfig())
	}

	overrides, err := environment.Load()
	if err != nil {
		return err
	}
	settings := overrides.Apply(settingsService.Get())
	logger.SetVerbose(verbose || settings.Verbose)

	if backendName != "" {
		backend, err := domain.ParseStorageBackend(backendName)
		if err != nil {
			return err
		}
		settings.Backend = backend
	}

	if svc != nil {
		return nil
	}

	built, err := NewServices(settings)
	if err != nil {
		return err
	}
	svc = built
	owned = true
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if !owned || svc == nil {
		return
	}
	if err := svc.Close(); err != nil {
		logger.Warn("closing stores: %v", err)
	}
	svc = nil
	owned = false
}

// openConfig opens the TOML config store, falling back to an empty
// in-memory store when the directory is unusable.
func openConfig() driven.ConfigStore {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		return memory.NewConfigStore(nil)
	}
	return store
}
