package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/agentcore/pkg/sandbox"
)

// Config represents the full configuration for the agentcore tools
type Config struct {
	// AWS region hosting the sandbox service
	Region string `yaml:"region" json:"region"`

	// Endpoint overrides the regional service endpoint
	Endpoint string `yaml:"endpoint" json:"endpoint"`

	// HTTP client timeout for sandbox API calls, in seconds
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" json:"http_timeout_seconds"`

	// Browser session defaults
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Code interpreter session defaults
	Interpreter InterpreterConfig `yaml:"interpreter" json:"interpreter"`

	// AllowedTools restricts which tools the registry exposes.
	// Glob patterns; an empty list allows all tools.
	AllowedTools []string `yaml:"allowed_tools" json:"allowed_tools"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// BrowserConfig defines defaults for browser sessions
type BrowserConfig struct {
	Identifier            string `yaml:"identifier" json:"identifier"`
	SessionTimeoutSeconds int    `yaml:"session_timeout_seconds" json:"session_timeout_seconds"`
	ViewExpirySeconds     int    `yaml:"view_expiry_seconds" json:"view_expiry_seconds"`
}

// InterpreterConfig defines defaults for code interpreter sessions
type InterpreterConfig struct {
	Identifier            string `yaml:"identifier" json:"identifier"`
	SessionTimeoutSeconds int    `yaml:"session_timeout_seconds" json:"session_timeout_seconds"`
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Verbosity controls logging level: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity" json:"verbosity"`
}

// DefaultConfig returns a default configuration suitable for most use cases
func DefaultConfig() *Config {
	return &Config{
		HTTPTimeoutSeconds: 30,
		Browser: BrowserConfig{
			Identifier:            "aws.browser.v1",
			SessionTimeoutSeconds: 3600,
			ViewExpirySeconds:     300,
		},
		Interpreter: InterpreterConfig{
			Identifier:            "aws.codeinterpreter.v1",
			SessionTimeoutSeconds: 900,
		},
		Logging: LoggingConfig{
			Verbosity: "normal",
		},
	}
}

// Load reads a YAML configuration file, merges it over the defaults,
// applies environment fallbacks, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// FromEnv returns the default configuration with environment fallbacks
// applied. Used when no configuration file is given.
func FromEnv() (*Config, error) {
	config := DefaultConfig()
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnv fills unset fields from the environment: the AWS region
// fallback chain and the service endpoint override.
func (c *Config) applyEnv() {
	c.Region = sandbox.ResolveRegion(c.Region)

	if c.Endpoint == "" {
		c.Endpoint = os.Getenv(sandbox.EndpointEnvVar)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http_timeout_seconds cannot be negative")
	}

	if c.Browser.SessionTimeoutSeconds < 0 {
		return fmt.Errorf("browser session_timeout_seconds cannot be negative")
	}

	if c.Browser.ViewExpirySeconds < 0 {
		return fmt.Errorf("browser view_expiry_seconds cannot be negative")
	}

	if c.Interpreter.SessionTimeoutSeconds < 0 {
		return fmt.Errorf("interpreter session_timeout_seconds cannot be negative")
	}

	// Compile the tool patterns so bad globs fail at load, not at dispatch
	if _, err := NewToolFilter(c.AllowedTools); err != nil {
		return err
	}

	// Set default verbosity if not specified
	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = "normal"
	}

	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	if !validLevels[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	return nil
}
