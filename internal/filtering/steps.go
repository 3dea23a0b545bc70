package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/logger"
	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/rights"
)

type specificityFilter struct {
	disabled bool
	reason   string
	gate     matching.Gate
}

// NewSpecificity creates the specificity gate step. With the default
// configuration the gate is a pass-through; a minimum-criteria policy can be
// enabled from config.
func NewSpecificity() Filter {
	return &specificityFilter{}
}

func (f *specificityFilter) Name() string { return "specificity" }

func (f *specificityFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *specificityFilter) IsEnabled() bool { return !f.disabled }

func (f *specificityFilter) Validate(cfg *matching.Config) error {
	if cfg == nil {
		return fmt.Errorf("matching config is required")
	}
	f.gate = matching.GateFromConfig(*cfg)
	return nil
}

func (f *specificityFilter) Apply(_ context.Context, deps Deps, m *rights.Matches) (*rights.Matches, Step, error) {
	initial := m.Len()

	kept := m.Keep(func(match *rights.Match) bool {
		specific := f.gate.IsSpecific(match.Right.Eligibility)
		if !specific && deps.Logger != nil {
			deps.Logger.Debug("right rejected by specificity gate",
				zap.String("right_id", match.Right.ID),
				zap.String("right_name", match.Right.Name),
			)
		}
		return specific
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

func (f *specificityFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}

type eligibilityFilter struct {
	matcher *matching.Matcher
}

// NewEligibility creates the hard-predicate eligibility step. A single
// failing check rejects a right; there is no partial credit.
func NewEligibility() Filter {
	return &eligibilityFilter{matcher: matching.NewMatcher()}
}

func (f *eligibilityFilter) Name() string { return "eligibility" }

func (f *eligibilityFilter) Disable(string) {}

func (f *eligibilityFilter) IsEnabled() bool { return true }

func (f *eligibilityFilter) Validate(*matching.Config) error { return nil }

func (f *eligibilityFilter) Apply(_ context.Context, deps Deps, m *rights.Matches) (*rights.Matches, Step, error) {
	initial := m.Len()

	kept := m.Keep(func(match *rights.Match) bool {
		ok, reason := f.matcher.Matches(deps.Profile, match.Right)
		if !ok && deps.Logger != nil {
			deps.Logger.Debug("right rejected by eligibility check",
				zap.String("right_id", match.Right.ID),
				zap.String("right_name", match.Right.Name),
				zap.String("failed_check", reason),
			)
		}
		return ok
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

type valueThresholdFilter struct {
	cfg matching.Config
}

// NewValueThreshold creates the step that extracts each right's monetary
// value and drops rights below the minimum threshold. Rights with unknown
// or unit-free variable amounts pass by default.
func NewValueThreshold() Filter {
	return &valueThresholdFilter{}
}

func (f *valueThresholdFilter) Name() string { return "value_threshold" }

func (f *valueThresholdFilter) Disable(string) {}

func (f *valueThresholdFilter) IsEnabled() bool { return true }

func (f *valueThresholdFilter) Validate(cfg *matching.Config) error {
	if cfg == nil {
		return fmt.Errorf("matching config is required")
	}
	f.cfg = *cfg
	return nil
}

func (f *valueThresholdFilter) Apply(_ context.Context, deps Deps, m *rights.Matches) (*rights.Matches, Step, error) {
	initial := m.Len()

	kept := m.Keep(func(match *rights.Match) bool {
		value := matching.ExtractValue(match.Right.AmountEstimation, f.cfg)
		match.Value = value.Amount
		match.ValueUnknown = value.Unknown

		if value.Unknown {
			return true
		}
		if value.Amount < f.cfg.MinValueThreshold {
			if deps.Logger != nil {
				deps.Logger.Debug("right rejected by value threshold",
					zap.String("right_id", match.Right.ID),
					zap.String("amount_text", logger.TruncateForLog(match.Right.AmountEstimation, 60)),
					zap.Int("extracted_value", value.Amount),
					zap.Int("threshold", f.cfg.MinValueThreshold),
				)
			}
			return false
		}
		return true
	})

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

func (f *valueThresholdFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			"min_value_threshold": strconv.Itoa(f.cfg.MinValueThreshold),
		},
	}
}

type dedupeFilter struct {
	threshold float64
}

// NewDedupe creates the near-duplicate collapse step.
func NewDedupe() Filter {
	return &dedupeFilter{}
}

func (f *dedupeFilter) Name() string { return "dedupe" }

func (f *dedupeFilter) Disable(string) {}

func (f *dedupeFilter) IsEnabled() bool { return true }

func (f *dedupeFilter) Validate(cfg *matching.Config) error {
	if cfg == nil {
		return fmt.Errorf("matching config is required")
	}
	f.threshold = cfg.DedupeJaccard
	return nil
}

func (f *dedupeFilter) Apply(_ context.Context, deps Deps, m *rights.Matches) (*rights.Matches, Step, error) {
	initial := m.Len()
	kept := matching.Dedupe(m, f.threshold)

	if deps.Logger != nil && kept.Len() < initial {
		deps.Logger.Debug("collapsed duplicate rights",
			zap.Int("removed", initial-kept.Len()),
		)
	}

	return kept, Step{Initial: initial, Dropped: initial - kept.Len(), Left: kept.Len()}, nil
}

type rankFilter struct {
	cfg matching.Config
}

// NewRank creates the final ranking step: stable sort by extracted value
// descending, truncated to the candidate cap.
func NewRank() Filter {
	return &rankFilter{}
}

func (f *rankFilter) Name() string { return "rank" }

func (f *rankFilter) Disable(string) {}

func (f *rankFilter) IsEnabled() bool { return true }

func (f *rankFilter) Validate(cfg *matching.Config) error {
	if cfg == nil {
		return fmt.Errorf("matching config is required")
	}
	f.cfg = *cfg
	return nil
}

func (f *rankFilter) Apply(_ context.Context, _ Deps, m *rights.Matches) (*rights.Matches, Step, error) {
	initial := m.Len()
	ranked := matching.Rank(m, f.cfg)
	return ranked, Step{Initial: initial, Dropped: initial - ranked.Len(), Left: ranked.Len()}, nil
}

func (f *rankFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			"max_candidates": strconv.Itoa(f.cfg.MaxCandidates),
		},
	}
}
