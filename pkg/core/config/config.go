package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/whilec/foundation/core/error"
	mdwlog "github.com/msto63/whilec/foundation/core/log"
)

// Environment variables overriding file values
const (
	EnvConfig    = "WHILEC_CONFIG"
	EnvLogLevel  = "WHILEC_LOG_LEVEL"
	EnvLogFormat = "WHILEC_LOG_FORMAT"
	EnvStorePath = "WHILEC_STORE_PATH"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Oracle  OracleConfig  `toml:"oracle" yaml:"oracle"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
	MaxDepth       int `toml:"max_depth" yaml:"max_depth"`
}

// OracleConfig holds settings of the accept/reject oracle
type OracleConfig struct {
	CacheTTL      Duration `toml:"cache_ttl" yaml:"cache_ttl"`
	CacheMaxItems int      `toml:"cache_max_items" yaml:"cache_max_items"`
	StorePath     string   `toml:"store_path" yaml:"store_path"`
}

// RenderConfig holds tree output settings
type RenderConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  *bool  `toml:"color" yaml:"color"`
}

// ColorEnabled reports whether styled output is enabled (default true)
func (r RenderConfig) ColorEnabled() bool {
	return r.Color == nil || *r.Color
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// DefaultConfig returns a configuration with all defaults applied
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, the file named by WHILEC_CONFIG or the first
// existing default location. Without any file the defaults are used.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./whilec.toml",
			"./whilec.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/whilec/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		cfg := DefaultConfig()
		cfg.applyEnv()
		cfg.expandEnvVars()
		return cfg, cfg.Validate()
	}
	return Load(path)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return mdwerror.Newf("invalid configuration value for %s: %v", field, value).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength)
	}
	if c.Parser.MaxDepth < 0 {
		return invalid("parser.max_depth", c.Parser.MaxDepth)
	}
	if c.Oracle.CacheTTL.Duration < 0 {
		return invalid("oracle.cache_ttl", c.Oracle.CacheTTL)
	}
	if c.Oracle.CacheMaxItems < 0 {
		return invalid("oracle.cache_max_items", c.Oracle.CacheMaxItems)
	}
	switch c.Render.Format {
	case "text", "tree", "json", "yaml":
	default:
		return invalid("render.format", c.Render.Format)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "whilec"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 64 * 1024
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 10000
	}

	// Oracle
	if c.Oracle.CacheTTL.Duration == 0 {
		c.Oracle.CacheTTL.Duration = 10 * time.Minute
	}
	if c.Oracle.CacheMaxItems == 0 {
		c.Oracle.CacheMaxItems = 10000
	}

	// Render
	if c.Render.Format == "" {
		c.Render.Format = "text"
	}
}

// applyEnv applies WHILEC_* environment overrides
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		c.Oracle.StorePath = v
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Oracle.StorePath = os.ExpandEnv(c.Oracle.StorePath)
}

// String renders the configuration as TOML
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}
