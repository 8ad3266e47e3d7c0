package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
)

func pool(ids ...string) []employee.Employee {
	employees := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		employees = append(employees, employee.Employee{
			ID:               id,
			EmploymentStatus: employee.EmploymentStatusActive,
		})
	}
	return employees
}

func TestEmployeesNeeded(t *testing.T) {
	tests := []struct {
		active          int
		workDaysPerWeek int
		want            int
	}{
		{5, 5, 4},  // ceil(25/7) = 4
		{5, 7, 5},  // capped at pool size
		{10, 5, 8}, // ceil(50/7) = 8
		{1, 3, 1},
		{3, 1, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, employeesNeeded(tt.active, tt.workDaysPerWeek),
			"active=%d workDaysPerWeek=%d", tt.active, tt.workDaysPerWeek)
	}
}

func TestSelectCandidatesPrefersFewestHours(t *testing.T) {
	candidates := pool("e1", "e2", "e3", "e4", "e5")
	hours := map[string]float64{"e1": 40, "e2": 40, "e3": 42, "e4": 10, "e5": 40}

	selected := selectCandidates(candidates, hours, nil, 1)
	require.Len(t, selected, 1)
	assert.Equal(t, "e4", selected[0].ID)
}

func TestSelectCandidatesReliabilityBreaksTies(t *testing.T) {
	candidates := pool("e1", "e2", "e3")
	hours := map[string]float64{"e1": 40, "e2": 40, "e3": 41}
	reliability := map[string]float64{"e1": 80, "e2": 95, "e3": 100}

	// All three fall within the two-hour tie band, so reliability decides.
	selected := selectCandidates(candidates, hours, reliability, 3)
	require.Len(t, selected, 3)
	assert.Equal(t, "e3", selected[0].ID)
	assert.Equal(t, "e2", selected[1].ID)
	assert.Equal(t, "e1", selected[2].ID)
}

func TestSelectCandidatesTiebandDoesNotCrossBigGaps(t *testing.T) {
	candidates := pool("e1", "e2")
	hours := map[string]float64{"e1": 10, "e2": 40}
	reliability := map[string]float64{"e1": 0, "e2": 100}

	// e2 is far more reliable but 30 hours ahead; hours win outside the band.
	selected := selectCandidates(candidates, hours, reliability, 2)
	require.Len(t, selected, 2)
	assert.Equal(t, "e1", selected[0].ID)
}

func TestSelectCandidatesNoHistoryCountsAsFullyReliable(t *testing.T) {
	candidates := pool("e1", "e2")
	hours := map[string]float64{"e1": 40, "e2": 40}
	reliability := map[string]float64{"e1": 50} // e2 has never been scheduled

	selected := selectCandidates(candidates, hours, reliability, 1)
	require.Len(t, selected, 1)
	assert.Equal(t, "e2", selected[0].ID)
}

func TestSelectCandidatesCapsAtPoolSize(t *testing.T) {
	selected := selectCandidates(pool("e1", "e2"), nil, nil, 5)
	assert.Len(t, selected, 2)
}

func TestSelectRoundRobinRotatesAcrossCalls(t *testing.T) {
	candidates := pool("e1", "e2", "e3")
	st := newRunState(nil)

	first := selectRoundRobin(candidates, st, 2)
	require.Len(t, first, 2)
	assert.Equal(t, "e1", first[0].ID)
	assert.Equal(t, "e2", first[1].ID)

	second := selectRoundRobin(candidates, st, 2)
	require.Len(t, second, 2)
	assert.Equal(t, "e3", second[0].ID)
	assert.Equal(t, "e1", second[1].ID)
}

func TestRunStateSeedIsCopied(t *testing.T) {
	seed := map[string]float64{"e1": 8}
	st := newRunState(seed)

	st.addHours("e1", 8)
	assert.Equal(t, 16.0, st.accumulatedHours["e1"])
	assert.Equal(t, 8.0, seed["e1"], "seeding must not mutate the caller's map")
}

func TestReliabilityScore(t *testing.T) {
	assert.Equal(t, 100.0, reliabilityScore(0, 0))
	assert.Equal(t, 100.0, reliabilityScore(10, 10))
	assert.Equal(t, 50.0, reliabilityScore(10, 5))
	assert.Equal(t, 0.0, reliabilityScore(10, 0))
}
