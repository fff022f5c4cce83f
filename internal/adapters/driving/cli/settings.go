package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Itterum/ts-app/internal/core/domain"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the storage backend and id generation.

Settings are read from config.toml in the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend <name>",
	Short: "Set storage backend",
	Long: `Set the storage backend entities are kept in.

Available backends:
  memory - Go maps (default)
  sqlite - in-memory SQLite database`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBackend,
}

var settingsIDLengthCmd = &cobra.Command{
	Use:   "id-length <n>",
	Short: "Set generated id length",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsIDLength,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsIDLengthCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings := settingsService.Get()

	cmd.Println(headerStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Backend.Description())
	cmd.Println()

	cmd.Println("[IDs]")
	cmd.Printf("  Length: %d\n", settings.IDLength)
	cmd.Println()

	cmd.Println("[Security]")
	if settings.BcryptCost == 0 {
		cmd.Printf("  Bcrypt cost: (default)\n")
	} else {
		cmd.Printf("  Bcrypt cost: %d\n", settings.BcryptCost)
	}
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Verbose: %t\n", settings.Verbose)
	cmd.Println()

	cmd.Println(mutedStyle.Render("Config: " + settingsService.Path()))
	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	backend, err := domain.ParseStorageBackend(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	return nil
}

func runSettingsIDLength(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	length, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id length %q", args[0])
	}
	if err := settingsService.SetIDLength(length); err != nil {
		return fmt.Errorf("failed to set id length: %w", err)
	}

	cmd.Printf("ID length set to: %d\n", length)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	current := settingsService.Get()

	cmd.Println(headerStyle.Render("ts-app Setup Wizard"))
	cmd.Println()

	backends := []domain.StorageBackend{domain.StorageMemory, domain.StorageSQLite}
	defaultChoice := 1
	cmd.Println("Select Storage Backend")
	for i, b := range backends {
		cmd.Printf("  %d. %s\n", i+1, b.Description())
		if b == current.Backend {
			defaultChoice = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultChoice)
	idx := parseChoice(readLine(reader), len(backends), defaultChoice)
	if err := settingsService.SetBackend(backends[idx-1]); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	cmd.Printf("Enter id length [%d]: ", current.IDLength)
	length := current.IDLength
	if input := readLine(reader); input != "" {
		val, err := strconv.Atoi(input)
		if err != nil || val <= 0 {
			return fmt.Errorf("invalid id length %q", input)
		}
		length = val
	}
	if err := settingsService.SetIDLength(length); err != nil {
		return fmt.Errorf("failed to set id length: %w", err)
	}

	cmd.Println()
	cmd.Println(successStyle.Render("Settings saved."))
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// maskSecret hides all but the ends of a secret.
func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
