// Package output renders plan reports as terminal tables or CSV.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/foodtruck-forecast/internal/plan"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/format"
	"github.com/iwvelando/foodtruck-forecast/pkg/montecarlo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// PrettyFormat writes the full report as human-readable tables.
func PrettyFormat(w io.Writer, report *plan.Report) {
	title := report.Project.Name
	if title == "" {
		title = "Food Truck Plan"
	}
	fmt.Fprintln(w, RenderTitle(title))
	fmt.Fprintf(w, "  %s\n\n", mutedStyle.Render(fmt.Sprintf("start %s | scenario %s | run %s",
		report.Project.StartDate, report.Scenario, report.RunID)))

	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "  %s\n", warning(warn))
	}
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, RenderTable(costTable("CAPEX", report.Capex, report.CapexTotal)))
	fmt.Fprintln(w, RenderTable(costTable("Monthly OPEX", report.Opex, report.OpexTotal)))
	fmt.Fprintln(w, RenderTable(financialsTable(report)))
	PrettyScenarios(w, report.Scenarios)
	fmt.Fprintln(w, RenderTable(staffingTable(report.Staffing)))
	fmt.Fprintln(w, RenderTable(timelineTable(report)))
	if len(report.Menu.Items) > 0 || report.Menu.PricePosition.Available {
		fmt.Fprintln(w, RenderTable(menuTable(report.Menu)))
	}
	PrettyForecast(w, report)
	if report.Simulation != nil {
		PrettySimulation(w, report.Simulation)
	}

	fmt.Fprintf(w, "  %s\n", headerStyle.Render("Conclusions"))
	for _, rec := range report.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
}

// PrettyScenarios writes the scenario comparison table.
func PrettyScenarios(w io.Writer, outcomes []finance.ScenarioOutcome) {
	t := Table{
		Title:   "Scenario Comparison",
		Headers: []string{"Scenario", "Orders/Day", "Revenue", "OPEX", "Profit", "ROI", "Break-even"},
	}
	for _, o := range outcomes {
		t.Rows = append(t.Rows, []string{
			string(o.Name),
			printer.Sprintf("%.0f", o.OrdersPerDay),
			format.Currency(o.Result.MonthlyRevenue),
			format.Currency(o.Result.TotalOpex),
			money(o.Result.MonthlyProfit, format.Currency(o.Result.MonthlyProfit)),
			format.Percent(o.Result.ROIPercent),
			o.Result.Breakeven.String(),
		})
	}
	fmt.Fprintln(w, RenderTable(t))
}

// PrettyForecast writes the monthly cash projection.
func PrettyForecast(w io.Writer, report *plan.Report) {
	t := Table{
		Title:   fmt.Sprintf("Cash Projection (%s)", report.Forecast.Name),
		Headers: []string{"Date", "Stage", "Orders/Day", "Profit", "Balance", "Notes"},
	}
	for _, m := range report.Forecast.Months {
		t.Rows = append(t.Rows, []string{
			m.Date,
			m.Stage,
			printer.Sprintf("%.0f", m.OrdersPerDay),
			format.Currency(m.Profit),
			money(m.Balance, format.Currency(m.Balance)),
			strings.Join(report.Forecast.Notes[m.Date], ", "),
		})
	}
	fmt.Fprintln(w, RenderTable(t))
}

// PrettySimulation writes the Monte Carlo summary and histogram.
func PrettySimulation(w io.Writer, sim *plan.Simulation) {
	s := sim.Summary
	t := Table{
		Title:   fmt.Sprintf("Monte Carlo (%s runs, seed %d)", printer.Sprintf("%d", s.Runs), s.Seed),
		Headers: []string{"Statistic", "Net Revenue"},
		Rows: [][]string{
			{"Expected", format.Currency(sim.Expected)},
			{"Mean", format.Currency(s.Mean)},
			{"Median", format.Currency(s.Median)},
			{"Std Dev", format.Currency(s.StdDev)},
			{"Min", format.Currency(s.Min)},
			{"Max", format.Currency(s.Max)},
			{"---"},
		},
	}
	for _, pv := range s.Percentiles {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("P%g", pv.Percentile), format.Currency(pv.Value)})
	}
	t.Rows = append(t.Rows, []string{"Profitable share", format.Percent(s.ProfitableShare * 100)})
	fmt.Fprintln(w, RenderTable(t))

	if len(sim.Histogram) == 0 {
		return
	}
	maxPct := 0.0
	for _, b := range sim.Histogram {
		if b.Percentage > maxPct {
			maxPct = b.Percentage
		}
	}
	h := Table{
		Title:   "Net Revenue Distribution",
		Headers: []string{"Range", "Count", "Share", ""},
	}
	for _, b := range sim.Histogram {
		h.Rows = append(h.Rows, []string{
			fmt.Sprintf("%s to %s", format.Currency(b.Lower), format.Currency(b.Upper)),
			printer.Sprintf("%d", b.Count),
			format.Percent(b.Percentage),
			RenderBar(b.Percentage, maxPct, 30),
		})
	}
	fmt.Fprintln(w, RenderTable(h))
}

func costTable(title string, items []finance.CostLineItem, total float64) Table {
	t := Table{Title: title, Headers: []string{"Item", "Amount"}}
	for _, item := range items {
		t.Rows = append(t.Rows, []string{item.Name, format.Currency(item.Amount)})
	}
	t.Rows = append(t.Rows, []string{"---"}, []string{"Total", format.Currency(total)})
	return t
}

func financialsTable(report *plan.Report) Table {
	f := report.Financials
	p := report.Parameters
	return Table{
		Title:   fmt.Sprintf("Financials (%s)", report.Scenario),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Orders per day", printer.Sprintf("%.0f", p.OrdersPerDay)},
			{"Price per combo", format.Currency(p.PricePerCombo)},
			{"Operating days per week", printer.Sprintf("%d", p.OperatingDaysPerWeek)},
			{"Food cost", format.Percent(p.FoodCostPercent)},
			{"---"},
			{"Monthly revenue", format.Currency(f.MonthlyRevenue)},
			{"Food cost", format.Currency(f.FoodCost)},
			{"Total OPEX", format.Currency(f.TotalOpex)},
			{"Monthly profit", money(f.MonthlyProfit, format.Currency(f.MonthlyProfit))},
			{"ROI", format.Percent(f.ROIPercent)},
			{"Break-even", f.Breakeven.String()},
		},
	}
}

func staffingTable(s plan.Staffing) Table {
	t := Table{Title: "Staffing", Headers: []string{"Role", "Hourly Cost"}}
	for _, role := range s.Plan.Roles {
		t.Rows = append(t.Rows, []string{role.Role, format.Currency(role.HourlyCost)})
	}
	t.Rows = append(t.Rows,
		[]string{"---"},
		[]string{printer.Sprintf("Monthly (%.0fh x %d days)", s.Plan.HoursPerDay, s.Plan.DaysPerWeek), format.Currency(s.MonthlyCost)},
	)
	if s.Budgeted {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("OPEX budget (%s)", s.BudgetItem), format.Currency(s.Budget)})
	}
	return t
}

func timelineTable(report *plan.Report) Table {
	t := Table{Title: "Roadmap", Headers: []string{"Stage", "Months", "Start", "End", "Orders/Day"}}
	for _, p := range report.Timeline {
		t.Rows = append(t.Rows, []string{
			p.Name,
			fmt.Sprintf("%d-%d", p.StartMonth, p.EndMonth),
			p.StartDate,
			p.EndDate,
			printer.Sprintf("%.0f", p.OrdersPerDay),
		})
	}
	return t
}

func menuTable(m plan.Menu) Table {
	t := Table{Title: "Menu", Headers: []string{"Dish", "Cost", "Price", "Margin", "Food Cost"}}
	for _, item := range m.Items {
		t.Rows = append(t.Rows, []string{
			item.Dish,
			format.Currency(item.Cost),
			format.Currency(item.SuggestedPrice),
			format.Currency(item.Margin),
			format.Percent(item.FoodCostPercent),
		})
	}
	if pos := m.PricePosition; pos.Available {
		t.Rows = append(t.Rows,
			[]string{"---"},
			[]string{"Competitor average", "", format.Currency(pos.Average), "", ""},
			[]string{"Competitor range", "", fmt.Sprintf("%s-%s", format.Currency(pos.Min), format.Currency(pos.Max)), "", ""},
			[]string{"Combo vs average", "", format.Percent(pos.DeltaPercent), "", ""},
		)
	}
	return t
}

// CsvFormat writes the monthly cash projection in comma-separated value
// format.
func CsvFormat(w io.Writer, report *plan.Report) error {
	rows := [][]string{{"date", "stage", "orders per day", "profit", "balance", "notes"}}
	for _, m := range report.Forecast.Months {
		rows = append(rows, []string{
			m.Date,
			m.Stage,
			fmt.Sprintf("%.2f", m.OrdersPerDay),
			fmt.Sprintf("%.2f", m.Profit),
			fmt.Sprintf("%.2f", m.Balance),
			strings.Join(report.Forecast.Notes[m.Date], ","),
		})
	}
	return writeCsv(w, rows)
}

// ScenariosCsv writes the scenario comparison in comma-separated value format.
func ScenariosCsv(w io.Writer, outcomes []finance.ScenarioOutcome) error {
	rows := [][]string{{"scenario", "orders per day", "revenue", "food cost", "opex", "profit", "roi percent", "breakeven months"}}
	for _, o := range outcomes {
		breakeven := ""
		if months, ok := o.Result.Breakeven.Months(); ok {
			breakeven = fmt.Sprintf("%.2f", months)
		}
		rows = append(rows, []string{
			string(o.Name),
			fmt.Sprintf("%.2f", o.OrdersPerDay),
			fmt.Sprintf("%.2f", o.Result.MonthlyRevenue),
			fmt.Sprintf("%.2f", o.Result.FoodCost),
			fmt.Sprintf("%.2f", o.Result.TotalOpex),
			fmt.Sprintf("%.2f", o.Result.MonthlyProfit),
			fmt.Sprintf("%.2f", o.Result.ROIPercent),
			breakeven,
		})
	}
	return writeCsv(w, rows)
}

// SamplesCsv writes every simulated sample in draw order.
func SamplesCsv(w io.Writer, result montecarlo.Result) error {
	rows := [][]string{{"trial", "revenue", "net revenue"}}
	for i, s := range result.Samples {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", s.Revenue),
			fmt.Sprintf("%.2f", s.NetRevenue),
		})
	}
	return writeCsv(w, rows)
}

// CsvString renders rows as a CSV document.
func CsvString(rows [][]string) (string, error) {
	var b strings.Builder
	if err := writeCsv(&b, rows); err != nil {
		return "", err
	}
	return b.String(), nil
}
