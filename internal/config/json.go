package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version  string `env:"VERSION" json:"version"`
		LogLevel string `env:"LOG_LEVEL" json:"log_level"`
	} `envPrefix:"APP_" json:"app,omitempty"`

	Server struct {
		GRPCAddress         string   `env:"GRPC_ADDRESS" json:"grpc_address"`
		MaxLifetime         Duration `env:"MAX_LIFETIME" json:"max_lifetime"`
		ShutdownGracePeriod *Duration `env:"SHUTDOWN_GRACE_PERIOD" json:"shutdown_grace_period,omitempty"`
		EnableReflection    bool     `env:"ENABLE_REFLECTION" json:"enable_reflection"`
		MetricsAddress      string   `env:"METRICS_ADDRESS" json:"metrics_address"`
	} `envPrefix:"SERVER_" json:"server,omitempty"`

	Dictionary struct {
		FilePath string `env:"FILE_PATH" json:"file_path"`
	} `envPrefix:"DICTIONARY_" json:"dictionary,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			GRPCAddress:         jsonCfg.Server.GRPCAddress,
			MaxLifetime:         time.Duration(jsonCfg.Server.MaxLifetime),
			ShutdownGracePeriod: jsonCfg.Server.ShutdownGracePeriod.durationPtr(),
			EnableReflection:    jsonCfg.Server.EnableReflection,
			MetricsAddress:      jsonCfg.Server.MetricsAddress,
		},
		Dictionary: Dictionary{
			FilePath: jsonCfg.Dictionary.FilePath,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// durationPtr converts an optional JSON duration, keeping nil as nil.
func (d *Duration) durationPtr() *time.Duration {
	if d == nil {
		return nil
	}
	v := time.Duration(*d)
	return &v
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
