// Package config defines the food-truck plan configuration and loads it from
// YAML, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/menu"
	"github.com/iwvelando/foodtruck-forecast/pkg/roadmap"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds every assumption of a food-truck plan.
type Configuration struct {
	Project     Project                `yaml:"project"`
	Capex       []finance.CostLineItem `yaml:"capex"`
	Opex        []finance.CostLineItem `yaml:"opex"`
	Operations  Operations             `yaml:"operations"`
	Scenarios   []Scenario             `yaml:"scenarios"`
	Simulation  Simulation             `yaml:"simulation"`
	Staffing    Staffing               `yaml:"staffing"`
	Stages      []roadmap.Stage        `yaml:"stages"`
	Menu        []menu.Item            `yaml:"menu,omitempty"`
	Competitors []menu.Competitor      `yaml:"competitors,omitempty"`
	Data        DataFiles              `yaml:"data,omitempty"`
	Logging     LoggingConfig          `yaml:"logging,omitempty"`
	Output      OutputConfig           `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Project names the venture and the month it starts.
type Project struct {
	Name      string `json:"name" yaml:"name"`
	StartDate string `json:"startDate" yaml:"startDate"`
}

// Operations holds the selected demand scenario and the operating assumptions
// shared by every scenario.
type Operations struct {
	Scenario        string  `yaml:"scenario"`
	PricePerCombo   float64 `yaml:"pricePerCombo"`
	DaysPerWeek     int     `yaml:"daysPerWeek"`
	FoodCostPercent float64 `yaml:"foodCostPercent"`
}

// Scenario maps a demand scenario name to its daily order volume.
type Scenario struct {
	Name         string  `yaml:"name"`
	OrdersPerDay float64 `yaml:"ordersPerDay"`
}

// Simulation configures the Monte Carlo run.
type Simulation struct {
	Samples     int       `yaml:"samples,omitempty"`
	Seed        *int64    `yaml:"seed,omitempty"`
	Workers     int       `yaml:"workers,omitempty"`
	Percentiles []float64 `yaml:"percentiles,omitempty"`
	Buckets     int       `yaml:"buckets,omitempty"`
}

// Staffing describes the crew. Roles take precedence over Headcount.
type Staffing struct {
	Headcount   int                 `yaml:"headcount,omitempty"`
	Roles       []finance.StaffRole `yaml:"roles,omitempty"`
	HoursPerDay float64             `yaml:"hoursPerDay,omitempty"`
	DaysPerWeek int                 `yaml:"daysPerWeek,omitempty"`
	// OpexItem names the OPEX line that budgets for the crew.
	OpexItem string `yaml:"opexItem,omitempty"`
}

// DataFiles points at CSV reference tables, relative to the configuration
// file. Their rows are appended to the inline lists.
type DataFiles struct {
	Menu        string `yaml:"menu,omitempty"`
	Competitors string `yaml:"competitors,omitempty"`
	Capex       string `yaml:"capex,omitempty"`
	Opex        string `yaml:"opex,omitempty"`
}

// IsEmpty reports whether no reference data file is configured.
func (d DataFiles) IsEmpty() bool {
	return d == DataFiles{}
}

// LoadEnvFile loads environment overrides from a dotenv file. With no path a
// .env in the working directory is loaded if present.
func LoadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
		return nil
	}
	// A missing .env is fine when overrides come from the environment directly.
	_ = godotenv.Load()
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Reference data files are resolved relative to it.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper(true)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := configuration.LoadReferenceData(filepath.Dir(configPath)); err != nil {
		return nil, err
	}

	return configuration, nil
}

// LoadConfigurationFromReader loads a YAML configuration from r. Reference
// data files are not read for configurations that do not come from disk, and
// FOODTRUCK_* environment overrides are not applied.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper(false)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}

	configuration, err := decode(v)
	if err != nil {
		return nil, err
	}

	if !configuration.Data.IsEmpty() {
		return nil, errors.New("reference data files are only supported for configurations loaded from disk")
	}

	return configuration, nil
}

func newViper(env bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	if env {
		v.SetEnvPrefix(constants.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset values with the plan defaults. Zero prices, costs
// and food cost percentages are meaningful and left alone.
func (c *Configuration) ApplyDefaults() {
	if c.Project.StartDate == "" {
		c.Project.StartDate = constants.DefaultStartDate
	}
	if c.Operations.Scenario == "" {
		c.Operations.Scenario = constants.DefaultScenario
	}
	if len(c.Scenarios) == 0 {
		for _, name := range finance.ScenarioOrder {
			c.Scenarios = append(c.Scenarios, Scenario{Name: string(name), OrdersPerDay: finance.DefaultDemandTable()[name]})
		}
	}
	if len(c.Stages) == 0 {
		c.Stages = roadmap.DefaultStages()
	}
	if c.Staffing.Headcount == 0 && len(c.Staffing.Roles) == 0 {
		c.Staffing.Headcount = constants.DefaultHeadcount
	}
	if c.Staffing.HoursPerDay == 0 {
		c.Staffing.HoursPerDay = constants.DefaultStaffHoursPerDay
	}
	if c.Staffing.DaysPerWeek == 0 {
		c.Staffing.DaysPerWeek = constants.DefaultStaffDaysPerWeek
	}
	if c.Staffing.OpexItem == "" {
		c.Staffing.OpexItem = constants.DefaultStaffOpexItem
	}
	if c.Simulation.Samples <= 0 {
		c.Simulation.Samples = constants.DefaultSampleCount
	}
	if len(c.Simulation.Percentiles) == 0 {
		c.Simulation.Percentiles = append([]float64(nil), constants.DefaultPercentiles...)
	}
	if c.Simulation.Buckets <= 0 {
		c.Simulation.Buckets = constants.DefaultHistogramBuckets
	}
}

// SelectedScenario is the normalized name of the scenario being evaluated.
func (c *Configuration) SelectedScenario() finance.ScenarioName {
	return finance.ParseScenarioName(c.Operations.Scenario)
}

// DemandTable maps every configured scenario to its daily orders. Later
// entries with the same normalized name replace earlier ones.
func (c *Configuration) DemandTable() finance.DemandTable {
	table := make(finance.DemandTable, len(c.Scenarios))
	for _, s := range c.Scenarios {
		table[finance.ParseScenarioName(s.Name)] = s.OrdersPerDay
	}
	return table
}

// CapexTotal sums the CAPEX line items.
func (c *Configuration) CapexTotal() float64 {
	return finance.SumCosts(c.Capex)
}

// OpexTotal sums the base monthly OPEX line items, before food cost.
func (c *Configuration) OpexTotal() float64 {
	return finance.SumCosts(c.Opex)
}

// ScenarioParameters builds the core inputs for the selected scenario. It
// fails when the selected scenario is not in the demand table.
func (c *Configuration) ScenarioParameters() (finance.ScenarioParameters, error) {
	orders, err := c.DemandTable().Demand(c.SelectedScenario())
	if err != nil {
		return finance.ScenarioParameters{}, err
	}
	return finance.ScenarioParameters{
		OrdersPerDay:         orders,
		PricePerCombo:        c.Operations.PricePerCombo,
		OperatingDaysPerWeek: c.Operations.DaysPerWeek,
		FoodCostPercent:      c.Operations.FoodCostPercent,
		BaseMonthlyOpex:      c.OpexTotal(),
	}, nil
}

// StaffingPlan returns the configured crew, or the default crew for the
// configured headcount when no roles are listed.
func (c *Configuration) StaffingPlan() finance.StaffingPlan {
	plan := finance.DefaultStaffing(c.Staffing.Headcount)
	if len(c.Staffing.Roles) > 0 {
		plan.Roles = c.Staffing.Roles
	}
	if c.Staffing.HoursPerDay > 0 {
		plan.HoursPerDay = c.Staffing.HoursPerDay
	}
	if c.Staffing.DaysPerWeek > 0 {
		plan.DaysPerWeek = c.Staffing.DaysPerWeek
	}
	return plan
}

// StaffBudget returns the OPEX amount budgeted for staff and whether the
// configured staff line exists.
func (c *Configuration) StaffBudget() (float64, bool) {
	for _, item := range c.Opex {
		if strings.EqualFold(strings.TrimSpace(item.Name), c.Staffing.OpexItem) {
			return item.Amount, true
		}
	}
	return 0, false
}
