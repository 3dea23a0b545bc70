package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchutly/rights-finder/internal/rights"
)

func TestGateFromConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.IsType(t, PassAllGate{}, GateFromConfig(cfg))

	cfg.MinSpecificCriteria = 2
	assert.IsType(t, MinCriteriaGate{}, GateFromConfig(cfg))
}

func TestMinCriteriaGate(t *testing.T) {
	t.Parallel()

	gate := MinCriteriaGate{Min: 2}

	// No criteria at all means universally eligible, which passes.
	assert.True(t, gate.IsSpecific(nil))

	weak := &rights.Criteria{HasChildren: boolPtr(true)}
	assert.False(t, gate.IsSpecific(weak))

	strong := &rights.Criteria{
		HasChildren:      boolPtr(true),
		EmploymentStatus: []string{rights.EmploymentUnemployed},
	}
	assert.True(t, gate.IsSpecific(strong))

	// Sentinel lists carry no discriminating power.
	sentinel := &rights.Criteria{
		HasChildren:      boolPtr(true),
		EmploymentStatus: []string{rights.SentinelAll},
	}
	assert.False(t, gate.IsSpecific(sentinel))
}

func TestRankSortsByValueDescending(t *testing.T) {
	t.Parallel()

	m := matchesFromNames("א", "ב", "ג")
	m.Items[0].Value = 1000
	m.Items[1].Value = 8000
	m.Items[2].Value = 4000

	ranked := Rank(m, DefaultConfig())

	require.Equal(t, 3, ranked.Len())
	assert.Equal(t, []string{"ב", "ג", "א"}, ranked.Names())
}

// Equal values keep catalog order, so ranking the same set twice yields the
// same order.
func TestRankStableForEqualValues(t *testing.T) {
	t.Parallel()

	m := matchesFromNames("ראשון", "שני", "שלישי")
	m.Items[0].Value = 3000
	m.Items[1].Value = 3000
	m.Items[2].Value = 1000

	ranked := Rank(m, DefaultConfig())
	assert.Equal(t, []string{"ראשון", "שני", "שלישי"}, ranked.Names())

	again := Rank(ranked, DefaultConfig())
	assert.Equal(t, ranked.Names(), again.Names())
}

func TestRankTruncatesToMaxCandidates(t *testing.T) {
	t.Parallel()

	m := matchesFromNames("א", "ב", "ג", "ד", "ה", "ו", "ז")
	for i, match := range m.Items {
		match.Value = (i + 1) * 100
	}

	ranked := Rank(m, DefaultConfig())
	require.Equal(t, 5, ranked.Len())
	assert.Equal(t, 700, ranked.Items[0].Value)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	m := matchesFromNames("א", "ב")
	m.Items[0].Value = 100
	m.Items[1].Value = 900

	_ = Rank(m, DefaultConfig())
	assert.Equal(t, []string{"א", "ב"}, m.Names())
}
