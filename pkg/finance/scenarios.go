package finance

import (
	"fmt"
	"sort"
	"strings"
)

// ScenarioName identifies a named demand level.
type ScenarioName string

// Declared scenario names.
const (
	ScenarioLow    ScenarioName = "Low"
	ScenarioNormal ScenarioName = "Normal"
	ScenarioHigh   ScenarioName = "High"
)

// ScenarioOrder is the fixed display order of the declared scenarios.
var ScenarioOrder = []ScenarioName{ScenarioLow, ScenarioNormal, ScenarioHigh}

var scenarioAliases = map[string]ScenarioName{
	"low":    ScenarioLow,
	"flojo":  ScenarioLow,
	"normal": ScenarioNormal,
	"high":   ScenarioHigh,
	"fuerte": ScenarioHigh,
}

// ParseScenarioName resolves a case-insensitive scenario label, including the
// Spanish labels Flojo and Fuerte, to its declared name. Unknown labels are
// returned trimmed but otherwise unchanged.
func ParseScenarioName(label string) ScenarioName {
	trimmed := strings.TrimSpace(label)
	if name, ok := scenarioAliases[strings.ToLower(trimmed)]; ok {
		return name
	}
	return ScenarioName(trimmed)
}

// DemandTable maps a scenario to its orders per day.
type DemandTable map[ScenarioName]float64

// DefaultDemandTable returns the Low/Normal/High demand levels of the plan.
func DefaultDemandTable() DemandTable {
	return DemandTable{
		ScenarioLow:    20,
		ScenarioNormal: 40,
		ScenarioHigh:   60,
	}
}

// Names returns the table's scenarios in display order: declared scenarios
// first, then any others sorted lexically.
func (t DemandTable) Names() []ScenarioName {
	names := make([]ScenarioName, 0, len(t))
	declared := make(map[ScenarioName]struct{}, len(ScenarioOrder))
	for _, name := range ScenarioOrder {
		declared[name] = struct{}{}
		if _, ok := t[name]; ok {
			names = append(names, name)
		}
	}

	var extra []ScenarioName
	for name := range t {
		if _, ok := declared[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(names, extra...)
}

// Demand returns the orders per day of the named scenario.
func (t DemandTable) Demand(name ScenarioName) (float64, error) {
	orders, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("scenario %q is not defined", name)
	}
	return orders, nil
}

// ScenarioOutcome is the financial result of one named scenario.
type ScenarioOutcome struct {
	Name         ScenarioName    `json:"name"`
	OrdersPerDay float64         `json:"ordersPerDay"`
	Result       FinancialResult `json:"result"`
}

// CompareScenarios recomputes the monthly financials for every scenario in
// table, holding all parameters of base other than orders per day fixed.
// Results follow Names order, independent of which scenario base was built from.
func CompareScenarios(table DemandTable, base ScenarioParameters, capexTotal float64) []ScenarioOutcome {
	names := table.Names()
	outcomes := make([]ScenarioOutcome, 0, len(names))
	for _, name := range names {
		orders := table[name]
		outcomes = append(outcomes, ScenarioOutcome{
			Name:         name,
			OrdersPerDay: orders,
			Result:       ComputeMonthlyFinancials(base.WithOrders(orders), capexTotal),
		})
	}
	return outcomes
}
