package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const appName = "minichrome"

// Config holds user configuration. Values come from the config file, then
// MINICHROME_* environment variables, then command line flags.
type Config struct {
	Theme         string        `json:"theme" envconfig:"THEME"`
	StartURL      string        `json:"start_url" envconfig:"START_URL"`
	FrequentCount int           `json:"frequent_count" envconfig:"FREQUENT_COUNT"`
	PageCacheSize int           `json:"page_cache_size" envconfig:"PAGE_CACHE_SIZE"`
	GlamourStyle  string        `json:"glamour_style" envconfig:"GLAMOUR_STYLE"`
	UserAgent     string        `json:"user_agent" envconfig:"USER_AGENT"`
	FetchTimeout  time.Duration `json:"fetch_timeout" envconfig:"FETCH_TIMEOUT"`
	FetchRetries  int           `json:"fetch_retries" envconfig:"FETCH_RETRIES"`
	LogLevel      string        `json:"log_level" envconfig:"LOG_LEVEL"`
	LogDev        bool          `json:"log_dev" envconfig:"LOG_DEV"`

	path string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:         "default",
		StartURL:      "",
		FrequentCount: 5,
		PageCacheSize: 50,
		GlamourStyle:  "dark",
		UserAgent:     "minichrome/0.1 (terminal browser)",
		FetchTimeout:  15 * time.Second,
		FetchRetries:  2,
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from the standard config directory,
// writing the defaults there on first run.
func LoadConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(filepath.Join(dir, "config.json"))
}

// LoadConfigFrom loads configuration from path and applies environment
// overrides. A missing file is created with the defaults.
func LoadConfigFrom(path string) (*Config, error) {
	cfg, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if err := envconfig.Process(appName, cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// UpdateConfigFile applies fn to the configuration stored at path and
// writes it back. Environment and flag overrides are not involved, so
// they never end up in the file.
func UpdateConfigFile(path string, fn func(*Config)) error {
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.json")
	}
	cfg, err := readConfigFile(path)
	if err != nil {
		return err
	}
	fn(cfg)
	return cfg.Save()
}

// readConfigFile loads the file alone, creating it with the defaults when
// missing.
func readConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.path = path
	return &cfg, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.json")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DataDir returns the directory for logs and other generated files.
func DataDir() (string, error) {
	return platformDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// ConfigDir returns the directory holding config.json.
func ConfigDir() (string, error) {
	return platformDir("XDG_CONFIG_HOME", ".config")
}

func platformDir(xdgVar, xdgFallback string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return filepath.Join(home, "."+appName), nil
	default: // Linux, BSD, etc.
		if xdg := os.Getenv(xdgVar); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		return filepath.Join(home, xdgFallback, appName), nil
	}
}
