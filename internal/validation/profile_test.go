package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zchutly/rights-finder/internal/rights"
)

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	v := New(DefaultRules())

	tests := []struct {
		name       string
		profile    rights.Profile
		confidence int
		valid      bool
	}{
		{
			name: "clean profile",
			profile: rights.Profile{
				"age":                "35",
				"avg_monthly_income": "8000",
			},
			confidence: 100,
			valid:      true,
		},
		{
			name:       "implausible age",
			profile:    rights.Profile{"age": "150"},
			confidence: 90,
		},
		{
			name:       "unparsable age",
			profile:    rights.Profile{"age": "שלושים"},
			confidence: 90,
		},
		{
			name:       "suspicious income",
			profile:    rights.Profile{"avg_monthly_income": "200000"},
			confidence: 90,
		},
		{
			name:       "children without a count",
			profile:    rights.Profile{"has_children": "כן"},
			confidence: 90,
		},
		{
			name:       "disability without a percentage",
			profile:    rights.Profile{"recognized_disability": "כן"},
			confidence: 90,
		},
		{
			name: "issues accumulate",
			profile: rights.Profile{
				"age":                   "150",
				"avg_monthly_income":    "200000",
				"has_children":          "כן",
				"recognized_disability": "כן",
			},
			confidence: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := v.ValidateProfile(tt.profile)
			assert.Equal(t, tt.confidence, result.Confidence)
			assert.Equal(t, tt.valid, result.Valid)
		})
	}
}

func TestValidateProfileConfidenceFloor(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	rules.ProfileIssuePenalty = 40

	v := New(rules)
	result := v.ValidateProfile(rights.Profile{
		"age":                   "שלושים",
		"has_children":          "כן",
		"recognized_disability": "כן",
	})

	assert.Equal(t, 0, result.Confidence)
	assert.False(t, result.Valid)
}
