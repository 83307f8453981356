package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/foodtruck-forecast/internal/config"
	"github.com/iwvelando/foodtruck-forecast/internal/plan"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/montecarlo"
	"github.com/iwvelando/foodtruck-forecast/pkg/testutil"
	"go.uber.org/zap"
)

func fixtureReport(t *testing.T) *plan.Report {
	t.Helper()
	conf, err := config.LoadConfiguration(testutil.FixturePath(t, "test_config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	report, err := plan.Evaluate(zap.NewNop(), *conf, plan.Options{Samples: 200})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	return report
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, fixtureReport(t))
	output := buf.String()

	expected := []string{
		"Miami Food Truck",
		"scenario Normal",
		"CAPEX",
		"$62,450.00",
		"Monthly OPEX",
		"$13,125.00",
		"Financials (Normal)",
		"$11,200.00",
		"-$5,285.00",
		"-32.06%",
		"unreachable",
		"Scenario Comparison",
		"Staffing",
		"$4,128.00",
		"Roadmap",
		"Growth",
		"2028-07",
		"Menu",
		"Cuban Sandwich",
		"Competitor average",
		"Cash Projection (Normal)",
		"CAPEX outlay of 62450.00",
		"Monte Carlo (200 runs, seed 42)",
		"P90",
		"Net Revenue Distribution",
		"Conclusions",
		"not reachable",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat() missing %q", want)
		}
	}
}

func TestPrettyFormatSkipsSimulation(t *testing.T) {
	report := fixtureReport(t)
	report.Simulation = nil

	var buf bytes.Buffer
	PrettyFormat(&buf, report)
	if strings.Contains(buf.String(), "Monte Carlo") {
		t.Errorf("PrettyFormat() rendered a simulation section without a simulation")
	}
}

func TestPrettyScenariosOrder(t *testing.T) {
	var buf bytes.Buffer
	base := finance.ScenarioParameters{PricePerCombo: 17.5, OperatingDaysPerWeek: 4, FoodCostPercent: 30, BaseMonthlyOpex: 13125}
	PrettyScenarios(&buf, finance.CompareScenarios(finance.DefaultDemandTable(), base, 62450))
	output := buf.String()

	low := strings.Index(output, "Low")
	normal := strings.Index(output, "Normal")
	high := strings.Index(output, "High")
	if low < 0 || normal < 0 || high < 0 || !(low < normal && normal < high) {
		t.Errorf("PrettyScenarios() rows out of order: Low %d Normal %d High %d", low, normal, high)
	}
	if !strings.Contains(output, "$16,800.00") {
		t.Errorf("PrettyScenarios() missing High revenue")
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, fixtureReport(t)); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if lines[0] != "date,stage,orders per day,profit,balance,notes" {
		t.Errorf("CsvFormat() header = %q", lines[0])
	}
	if len(lines) != 39 {
		t.Errorf("CsvFormat() returned %d lines, expected 39", len(lines))
	}
	if lines[1] != "2025-06,,0.00,0.00,-62450.00,CAPEX outlay of 62450.00" {
		t.Errorf("CsvFormat() first row = %q", lines[1])
	}
	// 2025-07 is the pre-launch month: no orders, so the loss is the base OPEX.
	if !strings.HasPrefix(lines[2], "2025-07,Pre-launch,0.00,-13125.00,-75575.00,") {
		t.Errorf("CsvFormat() second row = %q", lines[2])
	}
}

func TestScenariosCsv(t *testing.T) {
	outcomes := []finance.ScenarioOutcome{
		{Name: finance.ScenarioLow, OrdersPerDay: 20, Result: finance.FinancialResult{MonthlyRevenue: 5600, FoodCost: 1680, TotalOpex: 14805, MonthlyProfit: -9205, ROIPercent: -62.17, Breakeven: finance.Unreachable()}},
		{Name: "Catering, weekend", OrdersPerDay: 100, Result: finance.FinancialResult{MonthlyRevenue: 28000, MonthlyProfit: 1000, Breakeven: finance.ReachableIn(62.45)}},
	}

	var buf bytes.Buffer
	if err := ScenariosCsv(&buf, outcomes); err != nil {
		t.Fatalf("ScenariosCsv() error = %v", err)
	}
	expected := "scenario,orders per day,revenue,food cost,opex,profit,roi percent,breakeven months\n" +
		"Low,20.00,5600.00,1680.00,14805.00,-9205.00,-62.17,\n" +
		"\"Catering, weekend\",100.00,28000.00,0.00,0.00,1000.00,0.00,62.45\n"
	if buf.String() != expected {
		t.Errorf("ScenariosCsv() = %q, expected %q", buf.String(), expected)
	}
}

func TestSamplesCsv(t *testing.T) {
	result := montecarlo.Result{Samples: []montecarlo.Sample{{Revenue: 11200, NetRevenue: -5285}, {Revenue: 12000.5, NetRevenue: 1.004}}}
	var buf bytes.Buffer
	if err := SamplesCsv(&buf, result); err != nil {
		t.Fatalf("SamplesCsv() error = %v", err)
	}
	expected := "trial,revenue,net revenue\n1,11200.00,-5285.00\n2,12000.50,1.00\n"
	if buf.String() != expected {
		t.Errorf("SamplesCsv() = %q, expected %q", buf.String(), expected)
	}
}

func TestCsvString(t *testing.T) {
	got, err := CsvString([][]string{{"a", "b"}, {"1", "x,y"}})
	if err != nil {
		t.Fatalf("CsvString() error = %v", err)
	}
	if got != "a,b\n1,\"x,y\"\n" {
		t.Errorf("CsvString() = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		contains []string
		empty    bool
	}{
		{"Empty table", Table{}, nil, true},
		{
			name:     "Headers and rows",
			table:    Table{Title: "Totals", Headers: []string{"Item", "Amount"}, Rows: [][]string{{"Truck", "$53,000.00"}, {"---"}, {"Total", "$53,000.00"}}},
			contains: []string{"Totals", "Item", "Truck", "$53,000.00", "╭", "╯", "├"},
		},
		{
			name:     "Rows without headers",
			table:    Table{Rows: [][]string{{"only", "row"}}},
			contains: []string{"only", "row"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderTable(tt.table)
			if tt.empty {
				if out != "" {
					t.Errorf("RenderTable() = %q, expected empty", out)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderTable() missing %q in\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderBar(t *testing.T) {
	if RenderBar(0, 10, 20) != "" || RenderBar(5, 0, 20) != "" {
		t.Errorf("RenderBar() expected empty bars for zero value or max")
	}
	if bar := RenderBar(5, 10, 20); !strings.Contains(bar, strings.Repeat("█", 10)) {
		t.Errorf("RenderBar(5, 10, 20) = %q, expected 10 blocks", bar)
	}
}
