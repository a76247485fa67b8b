package config

import (
	"fmt"
	"time"
)

// Valid output formats for extraction results.
var ValidFormats = []string{"text", "json", "csv", "yaml"}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Pipeline: PipelineConfig{
			DecodeTimeoutSec: 30,
			ConfidenceFloor:  0,
			MatchDistancePx:  300,
			Regions: RegionsConfig{
				CellSize:      50,
				CellThreshold: 0.3,
				EdgeThreshold: 100,
				MergeFactor:   1.5,
				MinSide:       80,
			},
		},
		OCR: OCRConfig{
			Binary:   "tesseract",
			Language: "eng",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			CORSOrigin:      "*",
			MaxUploadMB:     20,
			TimeoutSec:      60,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.Pipeline.DecodeTimeoutSec <= 0 {
		return fmt.Errorf("decode timeout must be positive, got %d", c.Pipeline.DecodeTimeoutSec)
	}
	if c.Pipeline.ConfidenceFloor < 0 || c.Pipeline.ConfidenceFloor > 100 {
		return fmt.Errorf("confidence floor must be within [0, 100], got %d", c.Pipeline.ConfidenceFloor)
	}
	if c.Pipeline.MatchDistancePx <= 0 {
		return fmt.Errorf("match distance must be positive, got %f", c.Pipeline.MatchDistancePx)
	}
	if c.Pipeline.Regions.CellSize <= 0 {
		return fmt.Errorf("region cell size must be positive, got %d", c.Pipeline.Regions.CellSize)
	}
	valid := false
	for _, f := range ValidFormats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.Server.MaxUploadMB)
	}
	return nil
}

// DecodeTimeout returns the decode budget as a duration.
func (c *Config) DecodeTimeout() time.Duration {
	return time.Duration(c.Pipeline.DecodeTimeoutSec) * time.Second
}
