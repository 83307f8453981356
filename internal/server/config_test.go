package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q) error = %v", path, err)
		}

		if cfg.Address != constants.DefaultServerAddress {
			t.Errorf("Address = %q, expected %q", cfg.Address, constants.DefaultServerAddress)
		}
		if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
			t.Errorf("UploadSizeBytes() = %d, expected %d", cfg.UploadSizeBytes(), constants.DefaultMaxUploadSizeBytes)
		}
		read, write := cfg.Timeouts()
		if read != DefaultReadTimeout || write != DefaultWriteTimeout {
			t.Errorf("Timeouts() = %v, %v, expected defaults", read, write)
		}
		if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
			t.Errorf("expected empty logging defaults, got %+v", cfg.Logging)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxUploadSize: 2M
readTimeout: 5s
writeTimeout: 2m
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Errorf("expected address override, got %s", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 2*1024*1024 {
		t.Errorf("expected max upload override, got %d", cfg.UploadSizeBytes())
	}
	read, write := cfg.Timeouts()
	if read != 5*time.Second || write != 2*time.Minute {
		t.Errorf("Timeouts() = %v, %v, expected 5s and 2m", read, write)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" || cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}

	cfg.SetUploadSizeBytes(4096)
	if cfg.UploadSizeBytes() != 4096 || cfg.MaxUploadSize != "4096" {
		t.Errorf("SetUploadSizeBytes(4096) left %d / %s", cfg.UploadSizeBytes(), cfg.MaxUploadSize)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"Invalid size", "maxUploadSize: invalid"},
		{"Invalid timeout", "readTimeout: soon"},
		{"Malformed YAML", "address: [unterminated"},
		{"Invalid log level", "logging:\n  level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0600); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig() expected error but got nil")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxUploadSizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Errorf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Error("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Error("expected error for invalid number")
	}
}
