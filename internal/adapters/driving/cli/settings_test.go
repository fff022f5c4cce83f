package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Itterum/ts-app/internal/core/domain"
)

// Settings Command Tests

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commands := settingsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "wizard")
	assert.Contains(t, commandNames, "backend")
	assert.Contains(t, commandNames, "id-length")
}

func TestSettingsShowCmd_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Backend: Memory (Go maps)")
	assert.Contains(t, out, "Length: 32")
	assert.Contains(t, out, "Bcrypt cost: (default)")
	assert.Contains(t, out, "Verbose: false")
	assert.Contains(t, out, "Config: :memory:")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsShowCmd_NotConfigured(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	assert.ErrorIs(t, runSettingsShow(settingsShowCmd, nil), errSettingsNotConfigured)
	assert.ErrorIs(t, runSettingsBackend(settingsBackendCmd, []string{"memory"}), errSettingsNotConfigured)
	assert.ErrorIs(t, runSettingsIDLength(settingsIDLengthCmd, []string{"8"}), errSettingsNotConfigured)
	assert.ErrorIs(t, runSettingsWizard(settingsWizardCmd, nil), errSettingsNotConfigured)
}

func TestSettingsBackendCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "backend", "sqlite")

	require.NoError(t, err)
	assert.Contains(t, out, "Storage backend set to: SQLite (in-memory database)")
	assert.Equal(t, domain.StorageSQLite, settingsService.Get().Backend)
}

func TestSettingsBackendCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "backend", "redis")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown storage backend "redis"`)
	assert.Equal(t, domain.StorageMemory, settingsService.Get().Backend)
}

func TestSettingsBackendCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "settings", "backend")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSettingsIDLengthCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "id-length", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "ID length set to: 10")
	assert.Equal(t, 10, settingsService.Get().IDLength)
}

func TestSettingsIDLengthCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "id-length", "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id length "ten"`)

	_, err = execute(t, "settings", "id-length", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id length must be positive")
}

func TestSettingsWizardCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("2\n12\n"))
	out, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "Select Storage Backend")
	assert.Contains(t, out, "Settings saved.")

	settings := settingsService.Get()
	assert.Equal(t, domain.StorageSQLite, settings.Backend)
	assert.Equal(t, 12, settings.IDLength)
}

func TestSettingsWizardCmd_AcceptsDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("\n\n"))
	_, err := execute(t, "settings", "wizard")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings().Backend, settingsService.Get().Backend)
	assert.Equal(t, domain.DefaultSettings().IDLength, settingsService.Get().IDLength)
}

func TestSettingsWizardCmd_InvalidLength(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("1\n-3\n"))
	_, err := execute(t, "settings", "wizard")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id length "-3"`)
}

// Helper Tests

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Very long key",
			input:    "sk-proj-1234567890abcdefghijklmnop",
			expected: "sk-p...mnop",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskSecret(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}
