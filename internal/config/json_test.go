package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"version": "1.0.0",
			"log_level": "debug"
		},
		"server": {
			"grpc_address": "localhost:9090",
			"max_lifetime": "10m",
			"shutdown_grace_period": "2s",
			"enable_reflection": true,
			"metrics_address": "127.0.0.1:9100"
		},
		"dictionary": {
			"file_path": "/etc/translator/words.yaml"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Minute, cfg.Server.MaxLifetime)
	require.NotNil(t, cfg.Server.ShutdownGracePeriod)
	assert.Equal(t, 2*time.Second, *cfg.Server.ShutdownGracePeriod)
	assert.True(t, cfg.Server.EnableReflection)
	assert.Equal(t, "127.0.0.1:9100", cfg.Server.MetricsAddress)

	assert.Equal(t, "/etc/translator/words.yaml", cfg.Dictionary.FilePath)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_ZeroGracePeriodIsSet(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "zero_grace.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"shutdown_grace_period": "0s"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg.Server.ShutdownGracePeriod)
	assert.Equal(t, time.Duration(0), *cfg.Server.ShutdownGracePeriod)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"server": { "max_lifetime": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "grpc_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.GRPCAddress)
	assert.Zero(t, cfg.Server.MaxLifetime)
	assert.Nil(t, cfg.Server.ShutdownGracePeriod)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Dictionary{}, cfg.Dictionary)
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string", input: `"1m30s"`, expected: 90 * time.Second},
		{name: "nanoseconds", input: `1500000000`, expected: 1500 * time.Millisecond},
		{name: "invalid string", input: `"soon"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))

			out, err := json.Marshal(d)
			require.NoError(t, err)
			assert.JSONEq(t, `"`+tt.expected.String()+`"`, string(out))
		})
	}
}
