package platform

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_MissingOptional(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, "notepad_file: notes.yaml\nlog_level: debug\n")

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultScheduleFile, cfg.ScheduleFile)
	assert.Equal(t, "notes.yaml", cfg.NotepadFile)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed yaml": "schedule_file: [unterminated\n",
		"empty file":     "schedule_file: \"\"\n",
		"bad level":      "log_level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body), true)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestConfigLevel_DefaultsToInfo(t *testing.T) {
	level, err := Config{}.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}
