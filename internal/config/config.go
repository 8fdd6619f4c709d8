// File: internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/berrythewa/sysclip/pkg/clipboard"
	"gopkg.in/yaml.v3"
)

// ConfigPaths holds all relevant paths for the application
type ConfigPaths struct {
	BaseDir    string `yaml:"base_dir"`    // Directory holding config.yaml
	ConfigFile string `yaml:"config_file"` // Path to the config file
	DataDir    string `yaml:"data_dir"`    // Directory for application data
	LogDir     string `yaml:"log_dir"`     // Directory for log files
}

// Config holds all application configuration
type Config struct {
	// Backend selects the clipboard implementation (auto, unix, darwin, windows, empty, atotto)
	Backend clipboard.Backend `yaml:"backend"`

	// Logging configuration
	Log LogConfig `yaml:"log"`

	// Extra utilities tried before the built-in ones by the unix backend
	Candidates CandidatesConfig `yaml:"candidates"`

	// Native Windows clipboard options
	Windows WindowsConfig `yaml:"windows"`

	// System paths, derived at load time and never read from the file
	SystemPaths ConfigPaths `yaml:"-"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level             string `yaml:"level"`
	Format            string `yaml:"format"` // "json" or "console"
	EnableFileLogging bool   `yaml:"enable_file_logging"`
}

// CandidatesConfig lists user-provided clipboard utilities
type CandidatesConfig struct {
	Paste []clipboard.Candidate `yaml:"paste,omitempty"`
	Copy  []clipboard.Candidate `yaml:"copy,omitempty"`
}

// WindowsConfig holds options for the native Windows backend
type WindowsConfig struct {
	OpenTimeout time.Duration `yaml:"open_timeout"`
}

var (
	// ErrInvalidConfig is wrapped by every Validate failure
	ErrInvalidConfig = errors.New("invalid configuration")

	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// getConfigPaths is a variable so tests can point it elsewhere
var getConfigPaths = GetConfigPaths

// GetConfigPaths returns the platform-specific configuration paths
func GetConfigPaths() (*ConfigPaths, error) {
	// First check environment variable for base directory
	baseDir := os.Getenv("SYSCLIP_CONFIG_DIR")
	if baseDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}

		switch runtime.GOOS {
		case "windows":
			baseDir = filepath.Join(configDir, "Sysclip")
		case "darwin":
			baseDir = filepath.Join(configDir, "com.berrythewa.sysclip")
		default:
			baseDir = filepath.Join(configDir, "sysclip")
		}
	}

	dataDir := os.Getenv("SYSCLIP_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		switch runtime.GOOS {
		case "windows":
			if appData, err := os.UserCacheDir(); err == nil {
				dataDir = filepath.Join(appData, "Sysclip")
			} else {
				dataDir = filepath.Join(homeDir, "AppData", "Local", "Sysclip")
			}
		case "darwin":
			dataDir = filepath.Join(homeDir, "Library", "Application Support", "Sysclip")
		default:
			if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
				dataDir = filepath.Join(xdgDataHome, "sysclip")
			} else {
				dataDir = filepath.Join(homeDir, ".local", "share", "sysclip")
			}
		}
	}

	return &ConfigPaths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
		DataDir:    dataDir,
		LogDir:     filepath.Join(dataDir, "logs"),
	}, nil
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	cfg := &Config{
		Backend: clipboard.BackendAuto,
		Log: LogConfig{
			Level:             "info",
			Format:            "console",
			EnableFileLogging: false,
		},
		Windows: WindowsConfig{
			OpenTimeout: clipboard.DefaultOpenTimeout,
		},
	}

	if paths, err := getConfigPaths(); err == nil {
		cfg.SystemPaths = *paths
	}
	return cfg
}

// Load reads the configuration at configPath, or the default location when
// configPath is empty. A missing file yields the defaults; nothing is written.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = cfg.SystemPaths.ConfigFile
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg.SystemPaths.ConfigFile = configPath
	}

	overrideFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values a user may have mistyped
func (c *Config) Validate() error {
	if !slices.Contains(clipboard.Backends, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Windows.OpenTimeout < 0 {
		return fmt.Errorf("%w: windows.open_timeout must not be negative", ErrInvalidConfig)
	}
	for _, cand := range append(append([]clipboard.Candidate(nil), c.Candidates.Paste...), c.Candidates.Copy...) {
		if strings.TrimSpace(cand.Name) == "" {
			return fmt.Errorf("%w: candidate without a name", ErrInvalidConfig)
		}
	}
	return nil
}

// ClipboardOptions maps the configuration onto clipboard.New options
func (c *Config) ClipboardOptions() clipboard.Options {
	return clipboard.Options{
		Backend:         c.Backend,
		PasteCandidates: c.Candidates.Paste,
		CopyCandidates:  c.Candidates.Copy,
		OpenTimeout:     c.Windows.OpenTimeout,
	}
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) {
	if val := os.Getenv("SYSCLIP_BACKEND"); val != "" {
		config.Backend = clipboard.Backend(val)
	}
	if val := os.Getenv("SYSCLIP_LOG_LEVEL"); val != "" {
		config.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("SYSCLIP_LOG_FORMAT"); val != "" {
		config.Log.Format = strings.ToLower(val)
	}
	if val := os.Getenv("SYSCLIP_OPEN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.Windows.OpenTimeout = d
		}
	}
}
