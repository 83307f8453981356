package config

import (
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. A plan with warnings is still evaluated as given.
func (c *Configuration) ValidateConfiguration() []string {
	cv := validation.ConfigValidator{
		StartDate: c.Project.StartDate,
		Scenario:  string(c.SelectedScenario()),
		Operations: validation.OperationsConfig{
			PricePerCombo:   c.Operations.PricePerCombo,
			DaysPerWeek:     c.Operations.DaysPerWeek,
			FoodCostPercent: c.Operations.FoodCostPercent,
		},
	}

	for _, s := range c.Scenarios {
		cv.Scenarios = append(cv.Scenarios, validation.ScenarioConfig{
			Name:         string(finance.ParseScenarioName(s.Name)),
			OrdersPerDay: s.OrdersPerDay,
		})
	}
	cv.Capex = costConfigs(c.Capex)
	cv.Opex = costConfigs(c.Opex)
	for _, stage := range c.Stages {
		cv.Stages = append(cv.Stages, validation.StageConfig{
			Name:           stage.Name,
			DurationMonths: stage.DurationMonths,
			OrdersPerDay:   stage.OrdersPerDay,
		})
	}

	return cv.ValidateAll()
}

func costConfigs(items []finance.CostLineItem) []validation.CostConfig {
	var out []validation.CostConfig
	for _, item := range items {
		out = append(out, validation.CostConfig{Name: item.Name, Amount: item.Amount})
	}
	return out
}
