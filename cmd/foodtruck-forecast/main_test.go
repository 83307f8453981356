package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/foodtruck-forecast/internal/config"
)

var fixture = filepath.Join("..", "..", "test", "test_config.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name        string
		logging     config.LoggingConfig
		override    string
		expectError bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Warning alias", config.LoggingConfig{Level: "warning"}, "", false},
		{"Override wins", config.LoggingConfig{Level: "verbose"}, "error", false},
		{"Invalid level", config.LoggingConfig{Level: "verbose"}, "", true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if (err != nil) != tt.expectError {
				t.Fatalf("initializeLogger() error = %v, expectError %v", err, tt.expectError)
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "foodtruck.log")
	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected the logged message", data)
	}
}

func TestResolveOutputFormat(t *testing.T) {
	tests := []struct {
		configured  string
		override    string
		expected    string
		expectError bool
	}{
		{"", "", "pretty", false},
		{"csv", "", "csv", false},
		{"csv", "pretty", "pretty", false},
		{"", "xml", "", true},
	}

	for _, tt := range tests {
		got, err := resolveOutputFormat(tt.configured, tt.override)
		if (err != nil) != tt.expectError {
			t.Fatalf("resolveOutputFormat(%q, %q) error = %v", tt.configured, tt.override, err)
		}
		if got != tt.expected {
			t.Errorf("resolveOutputFormat(%q, %q) = %q, expected %q", tt.configured, tt.override, got, tt.expected)
		}
	}
}

func TestReportCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		prefix   string
		contains string
	}{
		{"Default command writes forecast csv", []string{"-c", fixture, "-o", "csv"}, "date,stage", "CAPEX outlay of 62450.00"},
		{"Report without simulation", []string{"report", "-c", fixture, "--no-simulation"}, "", "Scenario Comparison"},
		{"Scenarios csv", []string{"scenarios", "-c", fixture, "-o", "csv"}, "scenario,orders per day", "Normal,40.00,11200.00"},
		{"Simulate pretty", []string{"simulate", "-c", fixture, "--samples", "200", "--seed", "7"}, "", "seed 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("output starts %q, expected prefix %q", firstLine(out), tt.prefix)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out)
			}
		})
	}
}

func TestSimulateCsvReproducible(t *testing.T) {
	args := []string{"simulate", "-c", fixture, "-o", "csv", "--samples", "5", "--seed", "3", "--workers", "2"}
	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 6 || lines[0] != "trial,revenue,net revenue" {
		t.Fatalf("unexpected samples csv:\n%s", first)
	}
	if first != second {
		t.Errorf("simulate with a fixed seed is not reproducible")
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Missing config", []string{"-c", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"Invalid output format", []string{"-c", fixture, "-o", "xml"}},
		{"Invalid log level", []string{"-c", fixture, "--log-level", "loud"}},
		{"Unknown command", []string{"forecast", "-c", fixture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("execute(%v) expected error", tt.args)
			}
		})
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
