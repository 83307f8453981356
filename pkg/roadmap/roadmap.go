// Package roadmap lays business stages out on a month timeline.
package roadmap

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/pkg/datetime"
)

// Stage is one phase of the business plan.
type Stage struct {
	Name           string  `json:"name" yaml:"name"`
	DurationMonths int     `json:"durationMonths" yaml:"durationMonths"`
	OrdersPerDay   float64 `json:"ordersPerDay" yaml:"ordersPerDay"`
}

// Period is a stage placed on the timeline. StartMonth and EndMonth are
// offsets from the project start; EndMonth of one stage is StartMonth of the
// next.
type Period struct {
	Stage
	StartMonth int    `json:"startMonth"`
	EndMonth   int    `json:"endMonth"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// DefaultStages returns the four-stage plan: one pre-launch month, then
// launch, development and growth.
func DefaultStages() []Stage {
	return []Stage{
		{Name: "Pre-launch", DurationMonths: 1, OrdersPerDay: 0},
		{Name: "Launch", DurationMonths: 3, OrdersPerDay: 40},
		{Name: "Development", DurationMonths: 6, OrdersPerDay: 50},
		{Name: "Growth", DurationMonths: 27, OrdersPerDay: 60},
	}
}

// Timeline places stages back to back starting at startDate (YYYY-MM).
// Stages with a negative duration are rejected; zero-length stages are kept
// and occupy no months.
func Timeline(stages []Stage, startDate string) ([]Period, error) {
	if err := datetime.ValidateDate(startDate); err != nil {
		return nil, err
	}

	periods := make([]Period, 0, len(stages))
	month := 0
	for i, stage := range stages {
		if stage.DurationMonths < 0 {
			return nil, fmt.Errorf("stage %d (%s) has negative duration %d", i, stage.Name, stage.DurationMonths)
		}
		start, err := datetime.OffsetDate(startDate, datetime.DateTimeLayout, month)
		if err != nil {
			return nil, err
		}
		end, err := datetime.OffsetDate(startDate, datetime.DateTimeLayout, month+stage.DurationMonths)
		if err != nil {
			return nil, err
		}
		periods = append(periods, Period{
			Stage:      stage,
			StartMonth: month,
			EndMonth:   month + stage.DurationMonths,
			StartDate:  start,
			EndDate:    end,
		})
		month += stage.DurationMonths
	}
	return periods, nil
}

// TotalMonths is the combined duration of all stages.
func TotalMonths(stages []Stage) int {
	total := 0
	for _, stage := range stages {
		total += stage.DurationMonths
	}
	return total
}

// StageAt returns the period covering the given month offset. The final
// stage covers every month at or beyond its start.
func StageAt(periods []Period, month int) (Period, bool) {
	for i, p := range periods {
		if month >= p.StartMonth && (month < p.EndMonth || i == len(periods)-1) {
			return p, true
		}
	}
	return Period{}, false
}
