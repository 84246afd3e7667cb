package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults without a settings file",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "gemini-2.5-pro-exp-03-25", cfg.Models.Default)
				require.Len(t, cfg.Models.Available, 3)
				assert.Equal(t, "Gemini 1.5 Pro (Latest)", cfg.Models.Available[0].Name)
				assert.Equal(t, 2*time.Hour, cfg.Workspace.TTL)
				assert.True(t, cfg.DiagnosticsActive())
			},
		},
		{
			name: "load from settings file",
			file: `
server:
  port: 9000
database:
  path: ""
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.False(t, cfg.DiagnosticsActive())
			},
		},
		{
			name: "environment variable override",
			env:  map[string]string{"MINUTES_SERVER_PORT": "9090", "MINUTES_GEMINI_API_KEY": "env-key"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "env-key", cfg.Gemini.APIKey)
			},
		},
		{
			name: "invalid port",
			file: `
server:
  port: 70000
`,
			wantErr: true,
		},
		{
			name: "default model missing from catalog",
			file: `
models:
  default: gemini-unknown
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.file != "" {
				path = writeSettings(t, tt.file)
			}

			err := InitFromFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg, err := GetConfig()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSetOverridesValue(t *testing.T) {
	reset()
	t.Cleanup(reset)
	require.NoError(t, InitFromFile(filepath.Join(t.TempDir(), "none.yaml")))

	Set("logging.level", "debug")
	assert.Equal(t, "debug", GetString("logging.level"))
	assert.Equal(t, 100, GetInt("workspace.max_workspaces"))
	assert.True(t, GetBool("rate_limiting.enabled"))
	assert.Equal(t, 10*time.Minute, GetDuration("workspace.operation_timeout"))
}

func TestDefaultAudioLimitFitsInlineRequest(t *testing.T) {
	reset()
	t.Cleanup(reset)
	require.NoError(t, InitFromFile(filepath.Join(t.TempDir(), "none.yaml")))
	cfg, err := GetConfig()
	require.NoError(t, err)

	encoded := (cfg.Workspace.MaxAudioBytes + 2) / 3 * 4
	assert.Less(t, encoded, int64(20_000_000))
	assert.Equal(t, 14<<20, GetInt("workspace.max_audio_bytes"))
}
