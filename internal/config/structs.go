package config

// Config represents the complete configuration for the menuscan
// application. It covers the extract and serve commands and supports
// loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Extraction pipeline configuration
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline" json:"pipeline"`

	// OCR engine configuration
	OCR OCRConfig `mapstructure:"ocr" yaml:"ocr" json:"ocr"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// PipelineConfig contains extraction pipeline settings.
type PipelineConfig struct {
	DecodeTimeoutSec int           `mapstructure:"decode_timeout_sec" yaml:"decode_timeout_sec" json:"decode_timeout_sec"`
	ConfidenceFloor  int           `mapstructure:"confidence_floor" yaml:"confidence_floor" json:"confidence_floor"`
	MatchDistancePx  float64       `mapstructure:"match_distance_px" yaml:"match_distance_px" json:"match_distance_px"`
	Regions          RegionsConfig `mapstructure:"regions" yaml:"regions" json:"regions"`
}

// RegionsConfig contains image-region detector settings.
type RegionsConfig struct {
	CellSize      int     `mapstructure:"cell_size" yaml:"cell_size" json:"cell_size"`
	CellThreshold float64 `mapstructure:"cell_threshold" yaml:"cell_threshold" json:"cell_threshold"`
	EdgeThreshold float64 `mapstructure:"edge_threshold" yaml:"edge_threshold" json:"edge_threshold"`
	MergeFactor   float64 `mapstructure:"merge_factor" yaml:"merge_factor" json:"merge_factor"`
	MinSide       int     `mapstructure:"min_side" yaml:"min_side" json:"min_side"`
}

// OCRConfig contains external OCR engine settings.
type OCRConfig struct {
	Binary   string `mapstructure:"binary" yaml:"binary" json:"binary"`
	Language string `mapstructure:"language" yaml:"language" json:"language"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxUploadMB     int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}
