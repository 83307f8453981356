// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
)

// FindScenario finds a scenario outcome by name.
// Returns a pointer to the outcome if found, nil otherwise.
func FindScenario(outcomes []finance.ScenarioOutcome, name finance.ScenarioName) *finance.ScenarioOutcome {
	for i := range outcomes {
		if outcomes[i].Name == name {
			return &outcomes[i]
		}
	}
	return nil
}

// FixturePath returns the path of a file under the repository's test
// directory, located by walking up from the working directory to go.mod.
func FixturePath(t testing.TB, elem ...string) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(append([]string{dir, "test"}, elem...)...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("go.mod not found above working directory")
		}
		dir = parent
	}
}
