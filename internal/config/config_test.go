package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RECRUITER_CONSOLE_HOME",
		"RECRUITER_API_BASE_URL",
		"RECRUITER_HTTP_TIMEOUT",
		"RECRUITER_LOG_LEVEL",
		"RECRUITER_LOG_ENV",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("RECRUITER_CONSOLE_HOME", home)
	t.Setenv("RECRUITER_API_BASE_URL", "http://localhost:8080/api/v1")
	t.Setenv("RECRUITER_HTTP_TIMEOUT", "30")
	t.Setenv("RECRUITER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.BaseURL)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, "token"), cfg.TokenPath())
}

func TestLoadRequiresBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECRUITER_CONSOLE_HOME", t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API base URL is required")
}

func TestLoadMergesConfigFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("RECRUITER_CONSOLE_HOME", home)

	body := `{"base_url": "http://file.example.com", "timeout_seconds": 5, "log_env": "development"}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte(body), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://file.example.com", cfg.BaseURL)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, "development", cfg.LogEnv)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("RECRUITER_CONSOLE_HOME", home)

	body := `{"base_url": "http://file.example.com", "timeout_seconds": 5}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte(body), 0o600))
	t.Setenv("RECRUITER_API_BASE_URL", "http://env.example.com")
	t.Setenv("RECRUITER_HTTP_TIMEOUT", "45")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.BaseURL)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("RECRUITER_CONSOLE_HOME", home)
	t.Setenv("RECRUITER_API_BASE_URL", "http://localhost:8080")

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("RECRUITER_HTTP_TIMEOUT", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid RECRUITER_HTTP_TIMEOUT")
	})

	t.Run("bad config json", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte("{"), 0o600))
		_, err := Load()
		assert.ErrorContains(t, err, "failed to parse config JSON")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{BaseURL: "http://localhost:8080", TimeoutSeconds: 15}},
		{name: "missing url", cfg: Config{TimeoutSeconds: 15}, wantErr: "base URL is required"},
		{name: "relative url", cfg: Config{BaseURL: "/api/v1", TimeoutSeconds: 15}, wantErr: "invalid API base URL"},
		{name: "zero timeout", cfg: Config{BaseURL: "http://localhost:8080"}, wantErr: "timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
