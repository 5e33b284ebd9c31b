package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := values[k]
		return v, ok
	}
}

func TestDefaultConfigNeedsAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.key is required")

	cfg.API.Key = "secret"
	require.NoError(t, Validate(cfg))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Key = "secret"
	cfg.API.Endpoint = "not a url"
	cfg.API.Limit = 0
	cfg.Search.Debounce = Duration(-time.Second)

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.endpoint must be a URL")
	assert.Contains(t, err.Error(), "api.limit failed min=1")
	assert.Contains(t, err.Error(), "search.debounce failed min=0")
}

func TestApplyEnvPrefersFirstVariable(t *testing.T) {
	cfg := DefaultConfig()
	ApplyEnv(cfg, env(map[string]string{
		"SPOONACULAR_API_KEY":           " primary ",
		"REACT_APP_SPOONACULAR_API_KEY": "legacy",
	}))
	assert.Equal(t, "primary", cfg.API.Key)

	cfg = DefaultConfig()
	ApplyEnv(cfg, env(map[string]string{"REACT_APP_SPOONACULAR_API_KEY": "legacy"}))
	assert.Equal(t, "legacy", cfg.API.Key)

	cfg = DefaultConfig()
	cfg.API.Key = "from-file"
	ApplyEnv(cfg, env(map[string]string{"SPOONACULAR_API_KEY": "  "}))
	assert.Equal(t, "from-file", cfg.API.Key)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.API.Key = "secret"
	cfg.Search.Debounce = Duration(250 * time.Millisecond)
	require.NoError(t, svc.SaveToPath(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "250ms")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[api]\nkey = \"abc\"\n"), 0600))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.API.Key)
	assert.Equal(t, DefaultEndpoint, cfg.API.Endpoint)
	assert.Equal(t, DefaultLimit, cfg.API.Limit)
	assert.Equal(t, 500*time.Millisecond, cfg.Search.Debounce.Std())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "absent.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[search]\ndebounce = \"soon\"\n"), 0600))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
