package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), config)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
endpoint: https://router.example.com/mcp
transport: streamable-http
timeout: 10s
limit: 50
tls:
  caCert: /etc/ca.pem
  insecureSkipVerify: true
`)

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://router.example.com/mcp", config.Endpoint)
	assert.Equal(t, "streamable-http", config.Transport)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, 50, config.Limit)
	assert.Equal(t, DefaultOutput, config.Output)
	assert.Equal(t, "/etc/ca.pem", config.TLS.CACert)
	assert.True(t, config.TLS.InsecureSkipVerify)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "endpoint: [unclosed")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "transport: carrier-pigeon\nlimit: -1\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transport")
	assert.Contains(t, err.Error(), "limit")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "endpoint: http://from-file:8672\nlimit: 10\n")

	t.Setenv(EnvEndpoint, "http://from-env:8672")
	t.Setenv(EnvLimit, "25")
	t.Setenv(EnvTimeout, "2s")
	t.Setenv(EnvTransport, "sse")
	t.Setenv(EnvTLSInsecure, "true")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8672", config.Endpoint)
	assert.Equal(t, 25, config.Limit)
	assert.Equal(t, 2*time.Second, config.Timeout)
	assert.Equal(t, "sse", config.Transport)
	assert.True(t, config.TLS.InsecureSkipVerify)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"limit", EnvLimit, "lots"},
		{"timeout", EnvTimeout, "soon"},
		{"insecure", EnvTLSInsecure, "perhaps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	config := GetDefaultConfig()
	assert.NoError(t, config.Validate())

	config.TLS.Cert = "/tmp/cert.pem"
	err := config.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 1)
	assert.Equal(t, "tls", errs[0].Field)
}

func TestGetDefaultConfigPath(t *testing.T) {
	assert.Equal(t, appDirName, filepath.Base(GetDefaultConfigPath()))
}
