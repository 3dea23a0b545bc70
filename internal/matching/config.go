// Package matching implements the eligibility evaluation core: the
// specificity gate, the hard-predicate matcher with its category inference
// rules, monetary value extraction, deduplication and ranking.
package matching

// Config collects every policy constant of the evaluation core. The values
// encode policy, not architecture, and are meant to be overridden from
// configuration.
type Config struct {
	// MinValueThreshold drops matches whose extracted value is below it.
	// Unknown or variable amounts pass regardless (fail-open).
	MinValueThreshold int `mapstructure:"min-value-threshold"`

	// MaxCandidates caps the ranked result set.
	MaxCandidates int `mapstructure:"max-candidates"`

	// TopResults is the display cap applied by report consumers.
	TopResults int `mapstructure:"top-results"`

	// DailyWage approximates one day of pay when an amount is phrased in
	// days of salary.
	DailyWage int `mapstructure:"daily-wage"`

	// MonthlyWage approximates one month of pay for month-of-salary
	// phrasings.
	MonthlyWage int `mapstructure:"monthly-wage"`

	// AssumedTenureMonths is used when a month-of-salary phrase carries no
	// number at all.
	AssumedTenureMonths int `mapstructure:"assumed-tenure-months"`

	// DedupeJaccard is the token-set similarity above which two right names
	// are considered duplicates.
	DedupeJaccard float64 `mapstructure:"dedupe-jaccard"`

	// MinSpecificCriteria is the number of meaningful criteria the
	// specificity gate requires. Zero keeps the gate as a pass-through.
	MinSpecificCriteria int `mapstructure:"min-specific-criteria"`
}

// DefaultConfig returns the default policy values.
func DefaultConfig() Config {
	return Config{
		MinValueThreshold:   500,
		MaxCandidates:       5,
		TopResults:          3,
		DailyWage:           1000,
		MonthlyWage:         10000,
		AssumedTenureMonths: 5,
		DedupeJaccard:       0.8,
		MinSpecificCriteria: 0,
	}
}
