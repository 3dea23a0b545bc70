// Package validation re-scores matched rights independently of the matcher,
// producing an auditable 0-100 confidence figure per right plus a
// profile-level sanity check and an aggregate report.
package validation

// Rules collects every constant the validator applies: axis base scores,
// penalty weights, reference wage figures, expected amount ranges and the
// provenance policy. All of it is policy and overridable from configuration.
type Rules struct {
	// Each of the four audit axes starts from this base score; the four
	// together form the 100-point ceiling.
	BaseAxisScore int `mapstructure:"base-axis-score"`

	// Internal consistency penalties.
	PenaltyChildrenMismatch   int `mapstructure:"penalty-children-mismatch"`
	PenaltyDisabilityMismatch int `mapstructure:"penalty-disability-mismatch"`
	PenaltyAgeBound           int `mapstructure:"penalty-age-bound"`

	// Amount plausibility.
	PenaltyMissingAmount     int `mapstructure:"penalty-missing-amount"`
	PenaltyImplausibleAmount int `mapstructure:"penalty-implausible-amount"`
	PenaltyHugeAmount        int `mapstructure:"penalty-huge-amount"`
	PenaltyTinyAmount        int `mapstructure:"penalty-tiny-amount"`
	AmountCeiling            int `mapstructure:"amount-ceiling"`
	AmountFloor              int `mapstructure:"amount-floor"`

	// Criteria validity.
	PenaltyHighIncomeCeiling int `mapstructure:"penalty-high-income-ceiling"`
	PenaltyLowIncomeCeiling  int `mapstructure:"penalty-low-income-ceiling"`
	PenaltyBadPercentage     int `mapstructure:"penalty-bad-percentage"`
	PenaltyInvertedAges      int `mapstructure:"penalty-inverted-ages"`
	LowIncomeCeilingFloor    int `mapstructure:"low-income-ceiling-floor"`

	// Source reliability.
	BonusTrustedSource     int `mapstructure:"bonus-trusted-source"`
	PenaltyUntrustedSource int `mapstructure:"penalty-untrusted-source"`
	PenaltyMissingSource   int `mapstructure:"penalty-missing-source"`
	PenaltyStaleSource     int `mapstructure:"penalty-stale-source"`
	PenaltyAgingSource     int `mapstructure:"penalty-aging-source"`
	PenaltyBadDate         int `mapstructure:"penalty-bad-date"`
	PenaltyMissingDate     int `mapstructure:"penalty-missing-date"`
	StaleAfterDays         int `mapstructure:"stale-after-days"`
	AgingAfterDays         int `mapstructure:"aging-after-days"`

	// Reference wage figures used for criteria plausibility.
	MinimumWage int `mapstructure:"minimum-wage"`
	AverageWage int `mapstructure:"average-wage"`

	// Expected amount ranges for well-known categories. Headroom factors
	// widen the upper bound (several children, doubled disability grants).
	ChildAllowanceMin      int `mapstructure:"child-allowance-min"`
	ChildAllowanceMax      int `mapstructure:"child-allowance-max"`
	ChildHeadroom          int `mapstructure:"child-headroom"`
	DisabilityAllowanceMin int `mapstructure:"disability-allowance-min"`
	DisabilityAllowanceMax int `mapstructure:"disability-allowance-max"`
	DisabilityHeadroom     int `mapstructure:"disability-headroom"`

	// Recognized provenance domains.
	TrustedDomains []string `mapstructure:"trusted-domains"`

	// Confidence thresholds: below ValidThreshold a right is marked
	// invalid; below VerifyThreshold it gets a softer verification
	// recommendation.
	ValidThreshold  int `mapstructure:"valid-threshold"`
	VerifyThreshold int `mapstructure:"verify-threshold"`

	// Profile validation penalty per detected issue.
	ProfileIssuePenalty int `mapstructure:"profile-issue-penalty"`
}

// DefaultRules returns the default policy.
func DefaultRules() Rules {
	return Rules{
		BaseAxisScore: 25,

		PenaltyChildrenMismatch:   10,
		PenaltyDisabilityMismatch: 15,
		PenaltyAgeBound:           20,

		PenaltyMissingAmount:     5,
		PenaltyImplausibleAmount: 10,
		PenaltyHugeAmount:        15,
		PenaltyTinyAmount:        5,
		AmountCeiling:            100000,
		AmountFloor:              50,

		PenaltyHighIncomeCeiling: 10,
		PenaltyLowIncomeCeiling:  5,
		PenaltyBadPercentage:     15,
		PenaltyInvertedAges:      10,
		LowIncomeCeilingFloor:    1000,

		BonusTrustedSource:     10,
		PenaltyUntrustedSource: 10,
		PenaltyMissingSource:   5,
		PenaltyStaleSource:     15,
		PenaltyAgingSource:     5,
		PenaltyBadDate:         5,
		PenaltyMissingDate:     10,
		StaleAfterDays:         365,
		AgingAfterDays:         180,

		MinimumWage: 5300,
		AverageWage: 11500,

		ChildAllowanceMin:      150,
		ChildAllowanceMax:      300,
		ChildHeadroom:          5,
		DisabilityAllowanceMin: 1500,
		DisabilityAllowanceMax: 5000,
		DisabilityHeadroom:     2,

		TrustedDomains: []string{
			"btl.gov.il",
			"misim.gov.il",
			"moed.gov.il",
			"health.gov.il",
			"kolzchut.org.il",
		},

		ValidThreshold:  60,
		VerifyThreshold: 80,

		ProfileIssuePenalty: 10,
	}
}
