package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loggerfix.dev/pkg/loggerfix/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "loggerfix", configBaseName)
	assert.Equal(t, "loggerfix.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "scan.root", scanRootKey)
	assert.Equal(t, "scan.extensions", scanExtensionsKey)
	assert.Equal(t, "logger.module", loggerModuleKey)
	assert.Equal(t, "check.parallel", checkParallelKey)
	assert.Equal(t, ".loggerfix.log", defaultLogFilename)
	assert.Equal(t, "LOGGERFIX", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

// resetFlagBindings rebinds config keys to fresh, unchanged flags.
func resetFlagBindings() {
	newRootCmd()
	newCheckCmd()
}

func TestConfigDefaults(t *testing.T) {
	resetFlagBindings()

	assert.Equal(t, domain.DefaultRoot, viper.GetString(scanRootKey))
	assert.Equal(t, domain.DefaultExtensions, viper.GetStringSlice(scanExtensionsKey))
	assert.Equal(t, domain.DefaultLoggerModule, viper.GetString(loggerModuleKey))
	assert.Equal(t, defaultCheckFormat, viper.GetString(checkFormatKey))
}

func TestConfigEnvOverride(t *testing.T) {
	resetFlagBindings()
	t.Setenv("LOGGERFIX_LOGGER_MODULE", "~/log")

	assert.Equal(t, "~/log", viper.GetString(loggerModuleKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "run.log")
	configureLogger(logPath, true)

	slog.Debug("logger ready", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"logger ready\"")
	assert.Contains(t, string(data), "key=value")
}

func TestReadConfig(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, readConfig())
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		require.NoError(t, os.WriteFile(configFileName, []byte("scan: [unterminated\n"), 0o644))
		t.Cleanup(func() { _ = os.Remove(configFileName) })

		err := readConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), configFileName)
	})
}
