// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
)

var (
	outputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV}
	logLevels     = []string{"debug", "info", "warn", "warning", "error"}
	logFormats    = []string{"json", "console"}
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("expected output format of %s, got %q", strings.Join(outputFormats, " or "), format)
	}
	return nil
}

// ValidateLogging checks a logging level and format. Empty values are
// allowed and fall back to the logger defaults.
func ValidateLogging(level, format string) error {
	if level != "" && !slices.Contains(logLevels, level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	if format != "" && !slices.Contains(logFormats, format) {
		return fmt.Errorf("invalid log format: %s", format)
	}
	return nil
}
