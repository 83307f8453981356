// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/datetime"
)

// ValidateCostItems warns about negative amounts in a CAPEX or OPEX list.
func ValidateCostItems(kind string, items []CostConfig) []string {
	var warnings []string
	for _, item := range items {
		if item.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("%s item '%s' has a negative amount (%.2f)", kind, item.Name, item.Amount))
		}
	}
	return warnings
}

// ValidateOperations warns about operating assumptions outside their usual
// ranges. The values are still used as given.
func ValidateOperations(ops OperationsConfig) []string {
	var warnings []string

	if ops.PricePerCombo <= 0 {
		warnings = append(warnings, fmt.Sprintf("Price per combo is not positive (%.2f) - revenue will be zero or negative", ops.PricePerCombo))
	}
	if ops.FoodCostPercent < 0 || ops.FoodCostPercent > constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("Food cost percent %.2f is outside 0..100", ops.FoodCostPercent))
	}
	if ops.DaysPerWeek < 1 || ops.DaysPerWeek > constants.DaysPerWeek {
		warnings = append(warnings, fmt.Sprintf("Operating days per week %d is outside 1..%d", ops.DaysPerWeek, constants.DaysPerWeek))
	}

	return warnings
}

// ValidateStages warns about stages that occupy no time on the roadmap.
func ValidateStages(stages []StageConfig) []string {
	var warnings []string
	for _, stage := range stages {
		if stage.DurationMonths <= 0 {
			warnings = append(warnings, fmt.Sprintf("Stage '%s' has a non-positive duration (%d months)", stage.Name, stage.DurationMonths))
		}
		if stage.OrdersPerDay < 0 {
			warnings = append(warnings, fmt.Sprintf("Stage '%s' has negative orders per day (%.2f)", stage.Name, stage.OrdersPerDay))
		}
	}
	return warnings
}

// ConfigValidator collects the parts of a plan that are checked for warnings.
type ConfigValidator struct {
	StartDate  string
	Scenario   string
	Scenarios  []ScenarioConfig
	Capex      []CostConfig
	Opex       []CostConfig
	Operations OperationsConfig
	Stages     []StageConfig
}

type ScenarioConfig struct {
	Name         string
	OrdersPerDay float64
}

type CostConfig struct {
	Name   string
	Amount float64
}

type OperationsConfig struct {
	PricePerCombo   float64
	DaysPerWeek     int
	FoodCostPercent float64
}

type StageConfig struct {
	Name           string
	DurationMonths int
	OrdersPerDay   float64
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if cv.StartDate != "" {
		if err := datetime.ValidateDate(cv.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Project start date: %v", err))
		}
	}

	// The selected scenario must be one of the declared scenarios; matching
	// is left to the caller, which passes names already normalized.
	found := false
	for _, scenario := range cv.Scenarios {
		if scenario.Name == cv.Scenario {
			found = true
		}
		if scenario.OrdersPerDay < 0 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has negative orders per day (%.2f)", scenario.Name, scenario.OrdersPerDay))
		}
	}
	if !found {
		warnings = append(warnings, fmt.Sprintf("Selected scenario '%s' is not defined", cv.Scenario))
	}

	if len(cv.Capex) == 0 {
		warnings = append(warnings, "No CAPEX items defined - break-even will be immediate")
	}
	warnings = append(warnings, ValidateCostItems("CAPEX", cv.Capex)...)
	warnings = append(warnings, ValidateCostItems("OPEX", cv.Opex)...)
	warnings = append(warnings, ValidateOperations(cv.Operations)...)
	warnings = append(warnings, ValidateStages(cv.Stages)...)

	return warnings
}
