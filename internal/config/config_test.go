package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
)

const testConfigPath = "../../test/test_config.yaml"

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test fixture",
			configPath: testConfigPath,
			wantError:  false,
		},
		{
			name:       "Example config",
			configPath: filepath.Join("..", "..", constants.ExampleConfigFile),
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFixture(t *testing.T) {
	conf, err := LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Project.Name != "Miami Food Truck" {
		t.Errorf("Project.Name = %q, expected %q", conf.Project.Name, "Miami Food Truck")
	}
	if got := conf.CapexTotal(); got != 62450 {
		t.Errorf("CapexTotal() = %v, expected 62450", got)
	}
	if got := conf.OpexTotal(); got != 13125 {
		t.Errorf("OpexTotal() = %v, expected 13125", got)
	}

	params, err := conf.ScenarioParameters()
	if err != nil {
		t.Fatalf("ScenarioParameters() error = %v", err)
	}
	expected := finance.ScenarioParameters{
		OrdersPerDay:         40,
		PricePerCombo:        17.5,
		OperatingDaysPerWeek: 4,
		FoodCostPercent:      30,
		BaseMonthlyOpex:      13125,
	}
	if params != expected {
		t.Errorf("ScenarioParameters() = %+v, expected %+v", params, expected)
	}

	if conf.Simulation.Seed == nil || *conf.Simulation.Seed != 42 {
		t.Errorf("Simulation.Seed = %v, expected 42", conf.Simulation.Seed)
	}
	if conf.Simulation.Buckets != 10 {
		t.Errorf("Simulation.Buckets = %d, expected 10", conf.Simulation.Buckets)
	}

	// Menu and competitors come from the CSV files next to the fixture.
	if len(conf.Menu) != 4 {
		t.Errorf("len(Menu) = %d, expected 4", len(conf.Menu))
	} else if conf.Menu[0].Dish != "Cuban Sandwich" || conf.Menu[0].SuggestedPrice != 14 {
		t.Errorf("Menu[0] = %+v, expected Cuban Sandwich at 14", conf.Menu[0])
	}
	if len(conf.Competitors) != 3 {
		t.Errorf("len(Competitors) = %d, expected 3", len(conf.Competitors))
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
	}
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	input := `
capex:
  - name: Truck
    amount: 1000
opex:
  - name: Rent
    amount: 400
operations:
  pricePerCombo: 10
  daysPerWeek: 5
  foodCostPercent: 25
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.SelectedScenario() != finance.ScenarioNormal {
		t.Errorf("SelectedScenario() = %q, expected %q", conf.SelectedScenario(), finance.ScenarioNormal)
	}
	if table := conf.DemandTable(); len(table) != 3 || table[finance.ScenarioHigh] != 60 {
		t.Errorf("DemandTable() = %v, expected default Low/Normal/High", table)
	}
	if len(conf.Stages) != 4 {
		t.Errorf("len(Stages) = %d, expected the 4 default stages", len(conf.Stages))
	}
	if conf.Project.StartDate != "2025-06" {
		t.Errorf("Project.StartDate = %q, expected 2025-06", conf.Project.StartDate)
	}
	if conf.Simulation.Samples != 1000 || len(conf.Simulation.Percentiles) != 3 || conf.Simulation.Buckets != 20 {
		t.Errorf("Simulation = %+v, expected defaults", conf.Simulation)
	}
	if conf.Simulation.Seed != nil {
		t.Errorf("Simulation.Seed = %v, expected nil", *conf.Simulation.Seed)
	}

	params, err := conf.ScenarioParameters()
	if err != nil {
		t.Fatalf("ScenarioParameters() error = %v", err)
	}
	if params.OrdersPerDay != 40 || params.BaseMonthlyOpex != 400 || params.OperatingDaysPerWeek != 5 {
		t.Errorf("ScenarioParameters() = %+v", params)
	}
}

func TestLoadConfigurationFromReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Malformed YAML", "capex: [\n  - name"},
		{"Reference data from an upload", "data:\n  menu: /etc/passwd\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigurationFromReader(strings.NewReader(tt.input)); err == nil {
				t.Errorf("LoadConfigurationFromReader() expected error")
			}
		})
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	t.Setenv("FOODTRUCK_OPERATIONS_PRICEPERCOMBO", "19")
	t.Setenv("FOODTRUCK_OPERATIONS_SCENARIO", "Fuerte")

	conf, err := LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Operations.PricePerCombo != 19 {
		t.Errorf("PricePerCombo = %v, expected 19 from the environment", conf.Operations.PricePerCombo)
	}
	params, err := conf.ScenarioParameters()
	if err != nil {
		t.Fatalf("ScenarioParameters() error = %v", err)
	}
	if params.OrdersPerDay != 60 {
		t.Errorf("OrdersPerDay = %v, expected 60 for the Fuerte alias", params.OrdersPerDay)
	}
}

func TestLoadConfigurationFromReaderIgnoresEnv(t *testing.T) {
	t.Setenv("FOODTRUCK_OPERATIONS_PRICEPERCOMBO", "19")

	conf, err := LoadConfigurationFromReader(strings.NewReader("operations:\n  pricePerCombo: 17.5\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if conf.Operations.PricePerCombo != 17.5 {
		t.Errorf("PricePerCombo = %v, expected 17.5 from the document", conf.Operations.PricePerCombo)
	}
}

func TestScenarioParametersMissingScenario(t *testing.T) {
	conf := &Configuration{
		Operations: Operations{Scenario: "Festival", PricePerCombo: 17.5, DaysPerWeek: 4},
		Scenarios:  []Scenario{{Name: "Normal", OrdersPerDay: 40}},
	}
	if _, err := conf.ScenarioParameters(); err == nil {
		t.Errorf("ScenarioParameters() expected error for undefined scenario")
	}

	warnings := conf.ValidateConfiguration()
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "Selected scenario 'Festival' is not defined") {
			found = true
		}
	}
	if !found {
		t.Errorf("ValidateConfiguration() = %v, expected a missing scenario warning", warnings)
	}
}

func TestStaffingPlan(t *testing.T) {
	tests := []struct {
		name        string
		staffing    Staffing
		monthlyCost float64
		roles       int
	}{
		{"Two-person default", Staffing{Headcount: 2}, 43 * 6 * 4 * 4, 2},
		{"Three-person default", Staffing{Headcount: 3}, 58 * 6 * 4 * 4, 3},
		{"Longer shifts", Staffing{Headcount: 2, HoursPerDay: 8, DaysPerWeek: 5}, 43 * 8 * 5 * 4, 2},
		{
			name:        "Explicit roles",
			staffing:    Staffing{Headcount: 3, Roles: []finance.StaffRole{{Role: "Owner", HourlyCost: 30}}},
			monthlyCost: 30 * 6 * 4 * 4,
			roles:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Staffing: tt.staffing}
			conf.ApplyDefaults()
			plan := conf.StaffingPlan()
			if len(plan.Roles) != tt.roles {
				t.Errorf("StaffingPlan() roles = %d, expected %d", len(plan.Roles), tt.roles)
			}
			if plan.MonthlyCost() != tt.monthlyCost {
				t.Errorf("StaffingPlan().MonthlyCost() = %v, expected %v", plan.MonthlyCost(), tt.monthlyCost)
			}
		})
	}
}

func TestStaffBudget(t *testing.T) {
	conf := &Configuration{Opex: []finance.CostLineItem{{Name: "Rent", Amount: 4000}, {Name: " staff ", Amount: 5625}}}
	conf.ApplyDefaults()

	budget, ok := conf.StaffBudget()
	if !ok || budget != 5625 {
		t.Errorf("StaffBudget() = %v, %v, expected 5625, true", budget, ok)
	}

	conf.Staffing.OpexItem = "Crew"
	if _, ok := conf.StaffBudget(); ok {
		t.Errorf("StaffBudget() expected no match for a missing OPEX line")
	}
}

func TestLoadReferenceDataErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "menu.csv"), []byte("dish,cost,price\nTostones,abc,6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name string
		data DataFiles
	}{
		{"Missing file", DataFiles{Competitors: "missing.csv"}},
		{"Malformed row", DataFiles{Menu: "menu.csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Data: tt.data}
			if err := conf.LoadReferenceData(dir); err == nil {
				t.Errorf("LoadReferenceData() expected error")
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "FOODTRUCK_TEST_ENV_FILE_VALUE"
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envPath, []byte(key+"=loaded\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := LoadEnvFile(envPath); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(key); got != "loaded" {
		t.Errorf("os.Getenv(%s) = %q, expected %q", key, got, "loaded")
	}

	if err := LoadEnvFile(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("LoadEnvFile() with a missing file error = %v, expected nil", err)
	}
}
