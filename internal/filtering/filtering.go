// Package filtering runs the evaluation pipeline: an ordered list of named
// steps over the candidate set, each reporting how many rights it dropped.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/rights"
)

// Filter represents a single filtering step applied to the candidate set.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *matching.Config) error
	Apply(ctx context.Context, deps Deps, m *rights.Matches) (*rights.Matches, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger  *zap.Logger
	Profile rights.Profile
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status
// information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while
// keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the surviving
// candidate set. A step error aborts the run; rejections inside a step are
// normal outcomes and only show up in the drop accounting.
func Run(ctx context.Context, cfg *matching.Config, deps Deps, steps []Filter, m *rights.Matches) (*rights.Matches, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		m = next
	}

	return m, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// DefaultSteps returns the full evaluation pipeline in its canonical order:
// specificity gate, eligibility matching, value extraction with the minimum
// threshold, deduplication, then ranking.
func DefaultSteps() []Filter {
	return []Filter{
		NewSpecificity(),
		NewEligibility(),
		NewValueThreshold(),
		NewDedupe(),
		NewRank(),
	}
}
