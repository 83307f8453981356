package finance

import "github.com/iwvelando/foodtruck-forecast/pkg/constants"

// StaffRole is one crew position paid by the hour.
type StaffRole struct {
	Role       string  `json:"role" yaml:"role"`
	HourlyCost float64 `json:"hourlyCost" yaml:"hourlyCost"`
}

// StaffingPlan describes the crew and its schedule.
type StaffingPlan struct {
	Roles       []StaffRole `json:"roles" yaml:"roles"`
	HoursPerDay float64     `json:"hoursPerDay" yaml:"hoursPerDay"`
	DaysPerWeek int         `json:"daysPerWeek" yaml:"daysPerWeek"`
}

// HourlyCost is the combined hourly cost of the crew.
func (s StaffingPlan) HourlyCost() float64 {
	total := 0.0
	for _, role := range s.Roles {
		total += role.HourlyCost
	}
	return total
}

// MonthlyCost is the crew cost over a 4-week month.
func (s StaffingPlan) MonthlyCost() float64 {
	return s.HourlyCost() * s.HoursPerDay * float64(s.DaysPerWeek) * constants.WeeksPerMonth
}

// DefaultStaffing returns the two-person crew, or the three-person crew when
// headcount is 3 or more, working 6 hours a day, 4 days a week.
func DefaultStaffing(headcount int) StaffingPlan {
	roles := []StaffRole{
		{Role: "Manager", HourlyCost: 25},
		{Role: "Cook", HourlyCost: 18},
	}
	if headcount >= 3 {
		roles = append(roles, StaffRole{Role: "Assistant", HourlyCost: 15})
	}
	return StaffingPlan{Roles: roles, HoursPerDay: 6, DaysPerWeek: 4}
}
