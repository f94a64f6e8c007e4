package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.InputFile != "sample.xlsx" || cfg.OutputFile != "output.xlsx" {
		t.Errorf("files = %q/%q, want sample.xlsx/output.xlsx", cfg.InputFile, cfg.OutputFile)
	}
	if cfg.GeocodeRequestsPerSecond != DefaultGeocodeRate {
		t.Errorf("GeocodeRequestsPerSecond = %v, want %v", cfg.GeocodeRequestsPerSecond, DefaultGeocodeRate)
	}
	if cfg.ContinueOnLookupError {
		t.Error("ContinueOnLookupError should default to false")
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := writeConfig(t, `
output_file: out/enriched.xlsx
ifsc_api_url: http://localhost:9000/
continue_on_lookup_error: true
log_level: DEBUG
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.InputFile != DefaultInputFile {
		t.Errorf("InputFile = %q, want default", cfg.InputFile)
	}
	if cfg.OutputFile != "out/enriched.xlsx" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
	if cfg.IFSCAPIURL != "http://localhost:9000" {
		t.Errorf("IFSCAPIURL = %q, want trailing slash trimmed", cfg.IFSCAPIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.ContinueOnLookupError {
		t.Error("ContinueOnLookupError = false, want true")
	}
	if cfg.GeocodeRequestsPerSecond != DefaultGeocodeRate {
		t.Errorf("GeocodeRequestsPerSecond = %v, want default", cfg.GeocodeRequestsPerSecond)
	}
}

func TestLoadExplicitZeroRate(t *testing.T) {
	cfg, err := Load(writeConfig(t, "geocode_requests_per_second: 0\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.GeocodeRequestsPerSecond != 0 {
		t.Errorf("GeocodeRequestsPerSecond = %v, want 0", cfg.GeocodeRequestsPerSecond)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "log_level: loud\n"},
		{"negative rate", "ifsc_requests_per_second: -1\n"},
		{"same files", "input_file: a.xlsx\noutput_file: a.xlsx\n"},
		{"malformed", "input_file: [unterminated\n"},
	}
	for _, tt := range tests {
		if _, err := Load(writeConfig(t, tt.body)); err == nil {
			t.Errorf("%s: Load succeeded, want error", tt.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}
