package plan

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/format"
)

// Recommend derives the conclusions of a report: the break-even statement
// followed by any advice triggered by demand, food cost or staffing.
func Recommend(r *Report) []string {
	var recs []string

	if months, ok := r.Financials.Breakeven.Months(); ok {
		recs = append(recs, fmt.Sprintf("Return on investment: CAPEX recovered in %s.", format.Months(months)))
	} else {
		recs = append(recs, "Return on investment: not reachable while the plan runs at a monthly loss.")
	}

	if r.Parameters.OrdersPerDay < constants.LowDemandThreshold {
		recs = append(recs, "Increase marketing to raise daily orders.")
	}
	if r.Parameters.FoodCostPercent > constants.HighFoodCostThreshold {
		recs = append(recs, "Optimize ingredient costs to reduce the food cost percentage.")
	}
	if r.Staffing.Budgeted && r.Staffing.MonthlyCost > r.Staffing.Budget {
		recs = append(recs, fmt.Sprintf("Review staffing: the crew costs %s per month against a %s budget for %s.",
			format.Currency(r.Staffing.MonthlyCost), format.Currency(r.Staffing.Budget), r.Staffing.BudgetItem))
	}

	return recs
}
