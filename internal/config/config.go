// =============================================================================
// IFSC Enricher - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// The program is designed to run with no configuration at all: Default()
// returns the fixed file names and service URLs the tool has always used.
// A YAML file passed with --config only overrides the fields it sets.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULT VALUES
// =============================================================================

const (
	DefaultInputFile  = "sample.xlsx"
	DefaultOutputFile = "output.xlsx"

	// DefaultIFSCAPIURL is the public IFSC lookup API. Details for a code are
	// served from <url>/<IFSC>.
	DefaultIFSCAPIURL = "https://ifsc.razorpay.com"

	// DefaultGeocodeURL is the OpenStreetMap Nominatim search endpoint.
	DefaultGeocodeURL = "https://nominatim.openstreetmap.org/search"

	DefaultUserAgent = "ifsc-enricher/1.0"

	// DefaultGeocodeRate follows the Nominatim usage policy of at most one
	// request per second.
	DefaultGeocodeRate = 1.0
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputFile is the workbook whose first sheet holds IFSC codes in
	// column A. Default: "sample.xlsx"
	InputFile string `yaml:"input_file"`

	// OutputFile is where the enriched workbook is written.
	// Default: "output.xlsx"
	OutputFile string `yaml:"output_file"`

	// BankRegistry is an optional CSV file (columns bank_code, bank_name)
	// replacing the embedded list of known bank codes used for validation.
	BankRegistry string `yaml:"bank_registry"`

	// =========================================================================
	// SERVICE SETTINGS
	// =========================================================================

	IFSCAPIURL string `yaml:"ifsc_api_url"`
	GeocodeURL string `yaml:"geocode_url"`

	// UserAgent is sent with every outgoing request. Nominatim rejects
	// requests without one.
	UserAgent string `yaml:"user_agent"`

	// IFSCRequestsPerSecond paces detail lookups. 0 means unlimited.
	IFSCRequestsPerSecond float64 `yaml:"ifsc_requests_per_second"`

	// GeocodeRequestsPerSecond paces region searches. 0 means unlimited.
	GeocodeRequestsPerSecond float64 `yaml:"geocode_requests_per_second"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// ContinueOnLookupError keeps the pipeline going when a details lookup
	// fails, marking the row "Lookup Failed" instead of aborting the run.
	// Default: false
	ContinueOnLookupError bool `yaml:"continue_on_lookup_error"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{GeocodeRequestsPerSecond: DefaultGeocodeRate}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. An empty path returns
//     the defaults without touching the filesystem.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed, or fails validation.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields absent from the document keep these seeded values.
	cfg := Config{GeocodeRequestsPerSecond: DefaultGeocodeRate}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Rates are left alone: 0 means unlimited.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.IFSCAPIURL == "" {
		cfg.IFSCAPIURL = DefaultIFSCAPIURL
	}
	if cfg.GeocodeURL == "" {
		cfg.GeocodeURL = DefaultGeocodeURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.IFSCAPIURL = strings.TrimRight(cfg.IFSCAPIURL, "/")
}

// Validate checks the configuration for values the program cannot use.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.IFSCRequestsPerSecond < 0 {
		return fmt.Errorf("ifsc_requests_per_second must not be negative")
	}
	if c.GeocodeRequestsPerSecond < 0 {
		return fmt.Errorf("geocode_requests_per_second must not be negative")
	}
	if c.InputFile == c.OutputFile {
		return fmt.Errorf("output_file must differ from input_file")
	}
	return nil
}
