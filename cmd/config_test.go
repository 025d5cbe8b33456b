package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
)

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo), tt.value)
	}
}

func TestConfigDefaults(t *testing.T) {
	newRootCmd() // rebinds flags left changed by other tests

	assert.Equal(t, domain.DefaultScanConfig(), scanConfigFromViper())
	assert.Equal(t, domain.DefaultAssociationConfig(), associationConfigFromViper())

	cfg := workflowConfigFromViper()
	assert.Equal(t, defaultExtensions, cfg.Extensions)
	assert.Equal(t, defaultExcludeDirs, cfg.ExcludeDirs)
	assert.Equal(t, defaultLanguage, cfg.Language)
	assert.InDelta(t, defaultLowThreshold, cfg.LowThreshold, 1e-9)
	assert.Empty(t, cfg.MetricsFile)
}

func TestConfigFromEnvironment(t *testing.T) {
	newRootCmd()
	t.Setenv("DOCCOV_ASSOCIATOR_POLICY", "Strict")
	t.Setenv("DOCCOV_REPORT_LOW_THRESHOLD", "35")

	assert.Equal(t, domain.PolicyStrict, associationConfigFromViper().Policy)
	assert.InDelta(t, 35.0, workflowConfigFromViper().LowThreshold, 1e-9)
}

func TestConfigureLogger(t *testing.T) {
	configureLogger(filepath.Join(t.TempDir(), "test.log"), true)

	assert.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	viper.Set(logLevelKey, "error")
	defer viper.Set(logLevelKey, defaultLogLevel)

	configureLogger(filepath.Join(t.TempDir(), "test.log"), false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelWarn))
}

func TestReadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "missing file"},
		{name: "valid file", content: "output: reports\nassociator:\n  policy: strict\n"},
		{name: "malformed file", content: "output: [reports\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)

			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(tt.content), 0o600))
			}

			v := viper.New()
			configureViper(v)

			err := readConfigFile(v)
			if tt.wantErr {
				require.ErrorContains(t, err, "read config")
				return
			}

			require.NoError(t, err)

			if tt.content != "" {
				assert.Equal(t, "reports", v.GetString(outputFlagName))
				assert.Equal(t, "strict", v.GetString(associatorPolicyKey))
			}
		})
	}
}

func TestRootCmd_ReportsConfigError(t *testing.T) {
	saved := configErr
	t.Cleanup(func() { configErr = saved })

	configErr = errors.New("read config doccov.yaml: yaml: line 1: did not find expected node content")

	cmd, out := testRootCmd(t, newVersionCmd())
	cmd.SetArgs([]string{"version"})

	require.ErrorIs(t, cmd.Execute(), configErr)
	assert.NotContains(t, out.String(), "policy\t", "version must not run with a broken config")
}
