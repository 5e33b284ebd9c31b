package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultEndpoint is the Spoonacular ingredient autocomplete endpoint
	DefaultEndpoint = "https://api.spoonacular.com/food/ingredients/autocomplete"
	// DefaultLimit is the number of suggestions requested per query
	DefaultLimit = 20
	// FileName is the config file name inside the user config directory
	FileName = "pantrypick.toml"
)

// APIKeyEnvVars are checked in order for the API key
var APIKeyEnvVars = []string{"SPOONACULAR_API_KEY", "REACT_APP_SPOONACULAR_API_KEY"}

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	API     APISettings    `toml:"api"`
	Search  SearchSettings `toml:"search"`
	Log     LogSettings    `toml:"log"`
}

// APISettings configures the food API client
type APISettings struct {
	Key      string   `toml:"key" validate:"required"`
	Endpoint string   `toml:"endpoint" validate:"required,url"`
	Limit    int      `toml:"limit" validate:"min=1,max=100"`
	Timeout  Duration `toml:"timeout" validate:"min=0"`
}

// SearchSettings configures the input side of the search
type SearchSettings struct {
	Debounce Duration `toml:"debounce" validate:"min=0"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Duration is a time.Duration that reads and writes as "500ms" in TOML
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "pantrypick", FileName),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file this service loads by default
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the default file; a missing file yields DefaultConfig
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path, filling unset
// fields with defaults
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration. It has no API key and
// therefore does not validate on its own.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			Endpoint: DefaultEndpoint,
			Limit:    DefaultLimit,
			Timeout:  Duration(10 * time.Second),
		},
		Search: SearchSettings{
			Debounce: Duration(500 * time.Millisecond),
		},
		Log: LogSettings{
			File:  "pantrypick.log",
			Level: "info",
		},
	}
}

// ApplyEnv overrides the API key from the environment. lookup is usually
// os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for _, name := range APIKeyEnvVars {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			cfg.API.Key = strings.TrimSpace(v)
			return
		}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report toml names, e.g. "api.key"
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration before any request can be made
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("invalid config: missing")
	}
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "url":
			msgs = append(msgs, field+" must be a URL")
		default:
			if fe.Param() != "" {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
			}
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
