package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/foodtruck-forecast/pkg/refdata"
)

// LoadReferenceData reads the configured CSV tables, resolving relative paths
// against baseDir, and appends their rows to the inline lists.
func (c *Configuration) LoadReferenceData(baseDir string) error {
	if c.Data.Menu != "" {
		err := readCSV(baseDir, c.Data.Menu, func(f *os.File) error {
			items, err := refdata.LoadMenu(f)
			c.Menu = append(c.Menu, items...)
			return err
		})
		if err != nil {
			return err
		}
	}

	if c.Data.Competitors != "" {
		err := readCSV(baseDir, c.Data.Competitors, func(f *os.File) error {
			competitors, err := refdata.LoadCompetitors(f)
			c.Competitors = append(c.Competitors, competitors...)
			return err
		})
		if err != nil {
			return err
		}
	}

	if c.Data.Capex != "" {
		err := readCSV(baseDir, c.Data.Capex, func(f *os.File) error {
			items, err := refdata.LoadCostItems(f)
			c.Capex = append(c.Capex, items...)
			return err
		})
		if err != nil {
			return err
		}
	}

	if c.Data.Opex != "" {
		err := readCSV(baseDir, c.Data.Opex, func(f *os.File) error {
			items, err := refdata.LoadCostItems(f)
			c.Opex = append(c.Opex, items...)
			return err
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func readCSV(baseDir, path string, load func(*os.File) error) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening reference data: %w", err)
	}
	defer f.Close()

	if err := load(f); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
