package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchutly/rights-finder/internal/rights"
)

func TestBuildReportFillsMatches(t *testing.T) {
	t.Parallel()

	v := newTestValidator("2026-02-01")

	good := wellFormedRight()
	bad := &rights.Right{
		ID:         "r-bad",
		Name:       "סיוע כלשהו",
		WebsiteURL: "https://some-blog.example.com",
		Eligibility: &rights.Criteria{
			HasChildren: boolPtr(true),
			IncomeMax:   intPtr(50000),
		},
	}

	matches := &rights.Matches{Items: []*rights.Match{
		{Right: good},
		{Right: bad},
	}}

	report := v.BuildReport(matches, rights.Profile{"age": "40", "has_children": "לא"})

	require.Equal(t, 2, report.RightsCount)
	assert.Equal(t, 1, report.ValidRightsCount)
	require.Len(t, report.Rights, 2)

	// The audit is written back onto the matches themselves.
	assert.Equal(t, 100, matches.Items[0].Confidence)
	assert.True(t, matches.Items[0].Valid)
	assert.Equal(t, 55, matches.Items[1].Confidence)
	assert.False(t, matches.Items[1].Valid)
	assert.NotEmpty(t, matches.Items[1].Issues)

	assert.InDelta(t, 77.5, report.AverageConfidence, 0.01)
	assert.NotEmpty(t, report.OverallAssessment)
	assert.NotEmpty(t, report.Recommendations)
}

func TestBuildReportEmptyMatches(t *testing.T) {
	t.Parallel()

	v := newTestValidator("2026-02-01")
	report := v.BuildReport(&rights.Matches{}, rights.Profile{})

	assert.Equal(t, 0, report.RightsCount)
	assert.Equal(t, 0.0, report.AverageConfidence)
	assert.NotEmpty(t, report.OverallAssessment)
}

func TestOverallAssessmentTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		avg        float64
		valid      int
		total      int
		wantPrefix string
	}{
		{"high confidence all valid", 90, 3, 3, "מהימנות גבוהה"},
		{"high average with an invalid right", 90, 2, 3, "מהימנות בינונית-גבוהה"},
		{"medium-high", 75, 3, 3, "מהימנות בינונית-גבוהה"},
		{"medium", 65, 3, 3, "מהימנות בינונית"},
		{"low", 40, 1, 3, "מהימנות נמוכה"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := overallAssessment(tt.avg, tt.valid, tt.total)
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), got)
		})
	}
}

func TestGeneralRecommendations(t *testing.T) {
	t.Parallel()

	// The legal disclaimer is always present.
	recs := generalRecommendations(95, ProfileResult{Valid: true})
	require.Len(t, recs, 2)

	recs = generalRecommendations(50, ProfileResult{Valid: false})
	assert.Len(t, recs, 4)
}
