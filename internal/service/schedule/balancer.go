package schedule

import (
	"math"
	"sort"

	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
)

// hourTieband is the accumulated-hours difference within which two employees
// are considered equally loaded and ranked by reliability instead.
const hourTieband = 2.0

// runState carries the mutable state of one auto-scheduling run: the hours
// accumulated per employee as assignments are created, and the round-robin
// cursor used when balancing is off. It never outlives a run, so independent
// runs cannot bleed into each other.
type runState struct {
	accumulatedHours map[string]float64
	cursor           int
}

func newRunState(seed map[string]float64) *runState {
	hours := make(map[string]float64, len(seed))
	for id, h := range seed {
		hours[id] = h
	}
	return &runState{accumulatedHours: hours}
}

func (st *runState) addHours(employeeID string, hours float64) {
	st.accumulatedHours[employeeID] += hours
}

// employeesNeeded is the daily headcount target: the active pool scaled by how
// many of the week's days each employee is expected to work, capped at the
// pool size.
func employeesNeeded(activeCount, workDaysPerWeek int) int {
	needed := int(math.Ceil(float64(activeCount) * float64(workDaysPerWeek) / 7.0))
	if needed > activeCount {
		return activeCount
	}
	return needed
}

// selectCandidates orders the pool for one day under workload balancing:
// fewest accumulated hours first, with employees within hourTieband of each
// other treated as tied and ranked by reliability descending. The sort is
// stable, so equally ranked employees keep their pool order.
//
// This is a greedy fairness heuristic, not an optimizer: each day is decided
// in isolation using only the running hour totals.
func selectCandidates(pool []employee.Employee, accumulatedHours map[string]float64, reliability map[string]float64, n int) []employee.Employee {
	ordered := make([]employee.Employee, len(pool))
	copy(ordered, pool)

	sort.SliceStable(ordered, func(i, j int) bool {
		return accumulatedHours[ordered[i].ID] < accumulatedHours[ordered[j].ID]
	})

	// Employees absent from the snapshot have no scheduling history and count
	// as fully reliable.
	score := func(id string) float64 {
		if s, ok := reliability[id]; ok {
			return s
		}
		return 100.0
	}

	// Break ties by reliability inside each band of near-equal hour loads. A
	// band starts at the first employee whose hours exceed the band's floor by
	// more than the tieband.
	for lo := 0; lo < len(ordered); {
		floor := accumulatedHours[ordered[lo].ID]
		hi := lo + 1
		for hi < len(ordered) && accumulatedHours[ordered[hi].ID]-floor <= hourTieband {
			hi++
		}
		band := ordered[lo:hi]
		sort.SliceStable(band, func(i, j int) bool {
			return score(band[i].ID) > score(band[j].ID)
		})
		lo = hi
	}

	if n > len(ordered) {
		n = len(ordered)
	}
	return ordered[:n]
}

// selectRoundRobin draws n employees starting at the run's cursor, wrapping
// around the pool. The cursor advances across the whole run so consecutive
// days continue the rotation instead of restarting it.
func selectRoundRobin(pool []employee.Employee, st *runState, n int) []employee.Employee {
	if n > len(pool) {
		n = len(pool)
	}

	selected := make([]employee.Employee, 0, n)
	for k := 0; k < n; k++ {
		selected = append(selected, pool[(st.cursor+k)%len(pool)])
	}
	st.cursor = (st.cursor + n) % len(pool)

	return selected
}

// reliabilityScore is the percentage of scheduled days actually attended over
// the trailing window. Employees with no scheduling history score 100.
func reliabilityScore(scheduledDays, attendedDays int) float64 {
	if scheduledDays == 0 {
		return 100.0
	}
	return 100.0 * float64(attendedDays) / float64(scheduledDays)
}
