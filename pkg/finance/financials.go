// Package finance computes the deterministic monthly financials of a food-truck
// plan: revenue, OPEX, profit, ROI, break-even and scenario comparisons.
//
// Every function is pure. Inputs are passed explicitly as ScenarioParameters
// and a CAPEX total; nothing is read from shared state.
package finance

import (
	"encoding/json"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/format"
	"github.com/iwvelando/foodtruck-forecast/pkg/mathutil"
)

// CostLineItem is a single named CAPEX or OPEX entry.
type CostLineItem struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// SumCosts totals a sequence of cost line items. An empty sequence sums to zero.
func SumCosts(items []CostLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// ScenarioParameters fully determines one scenario's deterministic outputs.
type ScenarioParameters struct {
	OrdersPerDay         float64 `json:"ordersPerDay"`
	PricePerCombo        float64 `json:"pricePerCombo"`
	OperatingDaysPerWeek int     `json:"operatingDaysPerWeek"`
	FoodCostPercent      float64 `json:"foodCostPercent"`
	BaseMonthlyOpex      float64 `json:"baseMonthlyOpex"`
}

// WithOrders returns a copy of p with a different daily order volume.
func (p ScenarioParameters) WithOrders(ordersPerDay float64) ScenarioParameters {
	p.OrdersPerDay = ordersPerDay
	return p
}

// Breakeven is the number of months of profit needed to recover CAPEX. It is
// either reachable with a month count or unreachable because the plan does not
// make a monthly profit.
type Breakeven struct {
	months    float64
	reachable bool
}

// ReachableIn returns a reachable break-even after the given months.
func ReachableIn(months float64) Breakeven {
	return Breakeven{months: months, reachable: true}
}

// Unreachable returns the break-even state of a plan that never recovers CAPEX.
func Unreachable() Breakeven {
	return Breakeven{}
}

// Months returns the break-even month count and whether it is reachable.
func (b Breakeven) Months() (float64, bool) {
	return b.months, b.reachable
}

// Reachable reports whether the plan ever recovers its CAPEX.
func (b Breakeven) Reachable() bool {
	return b.reachable
}

func (b Breakeven) String() string {
	if !b.reachable {
		return "unreachable"
	}
	return format.Months(b.months)
}

type breakevenJSON struct {
	Reachable bool     `json:"reachable"`
	Months    *float64 `json:"months,omitempty"`
}

// MarshalJSON encodes the break-even as {"reachable":false} or
// {"reachable":true,"months":n}.
func (b Breakeven) MarshalJSON() ([]byte, error) {
	out := breakevenJSON{Reachable: b.reachable}
	if b.reachable {
		months := b.months
		out.Months = &months
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (b *Breakeven) UnmarshalJSON(data []byte) error {
	var in breakevenJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Reachable && in.Months != nil {
		*b = ReachableIn(*in.Months)
		return nil
	}
	*b = Unreachable()
	return nil
}

// FinancialResult holds the monthly figures derived from one ScenarioParameters.
type FinancialResult struct {
	MonthlyRevenue float64   `json:"monthlyRevenue"`
	FoodCost       float64   `json:"foodCost"`
	TotalOpex      float64   `json:"totalOpex"`
	MonthlyProfit  float64   `json:"monthlyProfit"`
	ROIPercent     float64   `json:"roiPercent"`
	Breakeven      Breakeven `json:"breakeven"`
}

// ComputeROI returns (revenue - costs) / costs * 100. Costs at or below zero
// saturate to an ROI of 0 instead of dividing by zero.
func ComputeROI(revenue, costs float64) float64 {
	if costs > 0 {
		return (revenue - costs) / costs * constants.PercentageMultiplier
	}
	return 0
}

// MonthlyRevenue is orders x price x operating days x 4 weeks.
func MonthlyRevenue(ordersPerDay, pricePerCombo, daysPerWeek float64) float64 {
	return ordersPerDay * pricePerCombo * daysPerWeek * constants.WeeksPerMonth
}

// ComputeMonthlyFinancials derives revenue, OPEX, profit, ROI and break-even
// for one scenario. Non-finite inputs propagate to non-finite outputs.
func ComputeMonthlyFinancials(params ScenarioParameters, capexTotal float64) FinancialResult {
	revenue := MonthlyRevenue(params.OrdersPerDay, params.PricePerCombo, float64(params.OperatingDaysPerWeek))
	foodCost := mathutil.ApplyPercentage(revenue, params.FoodCostPercent)
	totalOpex := params.BaseMonthlyOpex + foodCost
	profit := revenue - totalOpex

	breakeven := Unreachable()
	if profit > 0 {
		breakeven = ReachableIn(capexTotal / profit)
	}

	return FinancialResult{
		MonthlyRevenue: revenue,
		FoodCost:       foodCost,
		TotalOpex:      totalOpex,
		MonthlyProfit:  profit,
		ROIPercent:     ComputeROI(revenue, totalOpex),
		Breakeven:      breakeven,
	}
}
