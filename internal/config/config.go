package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the memoria API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Documents DocumentsConfig `yaml:"documents"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings. Static keys authenticate
// service callers; personal access tokens are issued at runtime and live in
// the database.
type AuthConfig struct {
	APIKeys []APIKey `yaml:"api_keys"`
}

// APIKey maps a static bearer key to the owner it acts as.
type APIKey struct {
	Key   string `yaml:"key"`
	Owner string `yaml:"owner"`
}

// Owners returns the key → owner lookup table.
func (a AuthConfig) Owners() map[string]string {
	m := make(map[string]string, len(a.APIKeys))
	for _, k := range a.APIKeys {
		m[k.Key] = k.Owner
	}
	return m
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver           string   `yaml:"driver"` // valkey, redis (default: redis)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// DocumentsConfig holds document limits and the write-path frontmatter mode.
type DocumentsConfig struct {
	MaxPerOwner     int    `yaml:"max_per_owner"`
	MaxSizeBytes    int64  `yaml:"max_size_bytes"`
	FrontmatterMode string `yaml:"frontmatter_mode"` // auto, required, off (default: auto)
}

// RetrievalConfig holds get-document size limits.
type RetrievalConfig struct {
	DefaultMaxBytes  int `yaml:"default_max_bytes"`
	AbsoluteMaxBytes int `yaml:"absolute_max_bytes"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references, then
// applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "redis"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Documents.MaxPerOwner <= 0 {
		c.Documents.MaxPerOwner = 10
	}
	if c.Documents.MaxSizeBytes <= 0 {
		c.Documents.MaxSizeBytes = 800 * 1024
	}
	if c.Documents.FrontmatterMode == "" {
		c.Documents.FrontmatterMode = "auto"
	}
	if c.Retrieval.DefaultMaxBytes <= 0 {
		c.Retrieval.DefaultMaxBytes = 64 * 1024
	}
	if c.Retrieval.AbsoluteMaxBytes <= 0 {
		c.Retrieval.AbsoluteMaxBytes = 800 * 1024
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "memoria:"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "redis", "valkey":
	default:
		return fmt.Errorf("database.driver must be \"redis\" or \"valkey\", got %q", c.Database.Driver)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	switch c.Documents.FrontmatterMode {
	case "auto", "required", "off":
	default:
		return fmt.Errorf(
			"documents.frontmatter_mode must be \"auto\", \"required\" or \"off\", got %q",
			c.Documents.FrontmatterMode,
		)
	}
	if c.Retrieval.DefaultMaxBytes > c.Retrieval.AbsoluteMaxBytes {
		return fmt.Errorf("retrieval.default_max_bytes (%d) exceeds retrieval.absolute_max_bytes (%d)",
			c.Retrieval.DefaultMaxBytes, c.Retrieval.AbsoluteMaxBytes)
	}
	for i, k := range c.Auth.APIKeys {
		if k.Key == "" || k.Owner == "" {
			return fmt.Errorf("auth.api_keys[%d] needs both key and owner", i)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
