// Package forecast projects a plan's cumulative cash position month by month
// across the roadmap stages.
package forecast

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/datetime"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/roadmap"
	"go.uber.org/zap"
)

// Month is one projected month. Balance is the cumulative cash position after
// the month's profit, starting from the negative CAPEX outlay.
type Month struct {
	Date         string  `json:"date"`
	Stage        string  `json:"stage"`
	OrdersPerDay float64 `json:"ordersPerDay"`
	Profit       float64 `json:"profit"`
	Balance      float64 `json:"balance"`
}

// Forecast holds the projection of one plan.
type Forecast struct {
	Name   string              `json:"name"`
	Months []Month             `json:"months"`
	Notes  map[string][]string `json:"notes,omitempty"`
	// RecoveredOn is the first month whose balance is non-negative, or empty
	// when CAPEX is never recovered within the roadmap. A plan with no CAPEX
	// is recovered on its start date.
	RecoveredOn string `json:"recoveredOn,omitempty"`
}

// Balance returns the balance recorded for date.
func (f Forecast) Balance(date string) (float64, bool) {
	for _, m := range f.Months {
		if m.Date == date {
			return m.Balance, true
		}
	}
	return 0, false
}

// GetForecast walks the roadmap one month at a time. Each month uses base with
// the daily orders of the stage in effect; price, operating days, food cost
// and base OPEX stay fixed. The starting balance at startDate is -capexTotal.
func GetForecast(logger *zap.Logger, name string, base finance.ScenarioParameters, capexTotal float64, periods []roadmap.Period, startDate string) (Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := Forecast{
		Name:  name,
		Notes: make(map[string][]string),
	}
	balance := -capexTotal
	result.Months = append(result.Months, Month{Date: startDate, Balance: balance})
	result.Notes[startDate] = append(result.Notes[startDate], fmt.Sprintf("CAPEX outlay of %.2f", capexTotal))
	if balance >= 0 {
		result.RecoveredOn = startDate
	}

	total := 0
	if len(periods) > 0 {
		total = periods[len(periods)-1].EndMonth
	}

	for i := 0; i < total; i++ {
		period, ok := roadmap.StageAt(periods, i)
		if !ok {
			return result, fmt.Errorf("no stage covers month %d", i)
		}
		date, err := datetime.OffsetDate(startDate, constants.DateTimeLayout, i+1)
		if err != nil {
			return result, err
		}

		profit := finance.ComputeMonthlyFinancials(base.WithOrders(period.OrdersPerDay), capexTotal).MonthlyProfit
		previous := balance
		balance += profit

		if i == period.StartMonth {
			result.Notes[date] = append(result.Notes[date], fmt.Sprintf("%s stage begins at %.0f orders/day", period.Name, period.OrdersPerDay))
		}
		if previous < 0 && balance >= 0 && result.RecoveredOn == "" {
			result.RecoveredOn = date
			result.Notes[date] = append(result.Notes[date], "CAPEX recovered")
		}

		result.Months = append(result.Months, Month{
			Date:         date,
			Stage:        period.Name,
			OrdersPerDay: period.OrdersPerDay,
			Profit:       profit,
			Balance:      balance,
		})
	}

	logger.Debug("forecast complete",
		zap.String("op", "forecast.GetForecast"),
		zap.String("scenario", name),
		zap.Int("months", total),
		zap.Float64("final_balance", balance),
		zap.String("recovered_on", result.RecoveredOn),
	)

	return result, nil
}
