// Package constants provides shared constants for the foodtruck-forecast application.
package constants

// DateTimeLayout is the format expected in config files for the project start
// date and is also the output format of roadmap dates.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// WeeksPerMonth is the fixed month approximation used by every monthly
	// figure. It is intentionally not calendar accurate.
	WeeksPerMonth = 4

	// DaysPerWeek bounds the operating days a plan can schedule.
	DaysPerWeek = 7

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Monte Carlo constants
const (
	// DefaultSampleCount is the number of trials drawn when none is configured.
	DefaultSampleCount = 1000

	// DefaultHistogramBuckets is the number of histogram buckets rendered for a
	// simulation distribution.
	DefaultHistogramBuckets = 20

	// OrdersSpread is the standard deviation of daily orders relative to the mean.
	OrdersSpread = 0.2

	// PriceSpread is the standard deviation of the combo price relative to the mean.
	PriceSpread = 0.1

	// OpexSpread is the standard deviation of base OPEX relative to the mean.
	OpexSpread = 0.15

	// DaysSpread is the standard deviation of operating days relative to the mean.
	DaysSpread = 0.1

	// FoodCostSpread is the standard deviation of the food cost percentage
	// relative to the mean.
	FoodCostSpread = 0.1
)

// DefaultPercentiles are the percentiles reported for a simulation run.
var DefaultPercentiles = []float64{10, 50, 90}

// Recommendation thresholds
const (
	// LowDemandThreshold is the orders per day below which more marketing is advised.
	LowDemandThreshold = 30.0

	// HighFoodCostThreshold is the food cost percentage above which ingredient
	// costs should be reviewed.
	HighFoodCostThreshold = 35.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix of environment variables overriding plan values.
	EnvPrefix = "FOODTRUCK"
)

// Plan defaults applied when a configuration leaves a value unset
const (
	// DefaultStartDate is the project start month used by the roadmap.
	DefaultStartDate = "2025-06"

	// DefaultScenario is the demand scenario evaluated when none is selected.
	DefaultScenario = "Normal"

	// DefaultHeadcount is the crew size used when no roles are configured.
	DefaultHeadcount = 2

	// DefaultStaffHoursPerDay is the crew's daily shift length.
	DefaultStaffHoursPerDay = 6

	// DefaultStaffDaysPerWeek is the number of days the crew works each week.
	DefaultStaffDaysPerWeek = 4

	// DefaultStaffOpexItem is the OPEX line compared against the staffing cost.
	DefaultStaffOpexItem = "Staff"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// MaxEditorSamples caps the sample count an editor request may ask for.
	MaxEditorSamples = 200000
)
