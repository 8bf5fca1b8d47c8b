package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearRegionEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AGENTCORE_ENDPOINT", "")
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agentcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "aws.browser.v1", config.Browser.Identifier)
	assert.Equal(t, 3600, config.Browser.SessionTimeoutSeconds)
	assert.Equal(t, 300, config.Browser.ViewExpirySeconds)
	assert.Equal(t, "aws.codeinterpreter.v1", config.Interpreter.Identifier)
	assert.Equal(t, 900, config.Interpreter.SessionTimeoutSeconds)
	assert.Equal(t, 30, config.HTTPTimeoutSeconds)
	assert.Equal(t, "normal", config.Logging.Verbosity)
	assert.Empty(t, config.AllowedTools)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	clearRegionEnv(t)

	path := writeConfigFile(t, `
region: eu-central-1
browser:
  session_timeout_seconds: 7200
allowed_tools:
  - browser_*
logging:
  verbosity: debug
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", config.Region)
	assert.Equal(t, 7200, config.Browser.SessionTimeoutSeconds)

	// Unset fields keep their defaults
	assert.Equal(t, "aws.browser.v1", config.Browser.Identifier)
	assert.Equal(t, 300, config.Browser.ViewExpirySeconds)
	assert.Equal(t, 900, config.Interpreter.SessionTimeoutSeconds)

	assert.Equal(t, []string{"browser_*"}, config.AllowedTools)
	assert.Equal(t, "debug", config.Logging.Verbosity)
}

func TestLoadAppliesEnvFallbacks(t *testing.T) {
	clearRegionEnv(t)
	t.Setenv("AWS_REGION", "ap-southeast-2")
	t.Setenv("AGENTCORE_ENDPOINT", "https://sandbox.internal.example.com")

	path := writeConfigFile(t, "browser:\n  identifier: custom.browser\n")

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", config.Region)
	assert.Equal(t, "https://sandbox.internal.example.com", config.Endpoint)
	assert.Equal(t, "custom.browser", config.Browser.Identifier)
}

func TestLoadFileRegionWinsOverEnv(t *testing.T) {
	clearRegionEnv(t)
	t.Setenv("AWS_REGION", "us-east-1")

	path := writeConfigFile(t, "region: eu-west-1\n")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", config.Region)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "region: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestFromEnv(t *testing.T) {
	clearRegionEnv(t)
	t.Setenv("AWS_DEFAULT_REGION", "ca-central-1")

	config, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "ca-central-1", config.Region)
	assert.Empty(t, config.Endpoint)
	assert.Equal(t, 3600, config.Browser.SessionTimeoutSeconds)
}

func TestFromEnvRegionDefault(t *testing.T) {
	clearRegionEnv(t)

	config, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", config.Region)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative http timeout",
			mutate:  func(c *Config) { c.HTTPTimeoutSeconds = -1 },
			wantErr: "http_timeout_seconds cannot be negative",
		},
		{
			name:    "negative browser session timeout",
			mutate:  func(c *Config) { c.Browser.SessionTimeoutSeconds = -10 },
			wantErr: "browser session_timeout_seconds cannot be negative",
		},
		{
			name:    "negative view expiry",
			mutate:  func(c *Config) { c.Browser.ViewExpirySeconds = -5 },
			wantErr: "browser view_expiry_seconds cannot be negative",
		},
		{
			name:    "negative interpreter session timeout",
			mutate:  func(c *Config) { c.Interpreter.SessionTimeoutSeconds = -1 },
			wantErr: "interpreter session_timeout_seconds cannot be negative",
		},
		{
			name:    "invalid tool pattern",
			mutate:  func(c *Config) { c.AllowedTools = []string{"[invalid"} },
			wantErr: "invalid tool pattern",
		},
		{
			name:    "invalid verbosity",
			mutate:  func(c *Config) { c.Logging.Verbosity = "loud" },
			wantErr: "invalid logging verbosity",
		},
		{
			name:   "empty verbosity defaults to normal",
			mutate: func(c *Config) { c.Logging.Verbosity = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateSetsDefaultVerbosity(t *testing.T) {
	config := DefaultConfig()
	config.Logging.Verbosity = ""

	require.NoError(t, config.Validate())
	assert.Equal(t, "normal", config.Logging.Verbosity)
}
