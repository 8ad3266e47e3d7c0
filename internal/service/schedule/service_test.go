package schedule

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
	"github.com/clinicore/staffops-backend-go/internal/domain/schedule"
	"github.com/clinicore/staffops-backend-go/internal/domain/worksite"
)

type fakeScheduleRepo struct {
	created    []schedule.ShiftAssignment
	hourTotals map[string]float64
	dayCounts  map[string]int
	failFor    map[string]bool
	seq        int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{failFor: make(map[string]bool)}
}

func (r *fakeScheduleRepo) Create(_ context.Context, assignment schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	if r.failFor[assignment.EmployeeID] {
		return schedule.ShiftAssignment{}, errors.New("insert failed")
	}
	r.seq++
	assignment.ID = "sa-" + strconv.Itoa(r.seq)
	r.created = append(r.created, assignment)
	return assignment, nil
}

func (r *fakeScheduleRepo) GetByID(_ context.Context, id string) (schedule.ShiftAssignment, error) {
	for _, a := range r.created {
		if a.ID == id {
			return a, nil
		}
	}
	return schedule.ShiftAssignment{}, schedule.ErrAssignmentNotFound
}

func (r *fakeScheduleRepo) ListByDate(_ context.Context, date time.Time) ([]schedule.ShiftAssignment, error) {
	var matched []schedule.ShiftAssignment
	for _, a := range r.created {
		if a.Date.Equal(date) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *fakeScheduleRepo) List(_ context.Context, _ schedule.AssignmentFilter) ([]schedule.ShiftAssignment, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *fakeScheduleRepo) UpdateStatus(_ context.Context, id string, status schedule.AssignmentStatus) error {
	for i := range r.created {
		if r.created[i].ID == id {
			r.created[i].Status = status
			return nil
		}
	}
	return schedule.ErrAssignmentNotFound
}

func (r *fakeScheduleRepo) ScheduledHourTotals(_ context.Context, _, _ time.Time) (map[string]float64, error) {
	return r.hourTotals, nil
}

func (r *fakeScheduleRepo) ScheduledDayCounts(_ context.Context, _, _ time.Time) (map[string]int, error) {
	return r.dayCounts, nil
}

func (r *fakeScheduleRepo) ListScheduledWithoutAttendance(_ context.Context, _ time.Time) ([]schedule.ShiftAssignment, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	var list []employee.Employee
	for _, emp := range r.employees {
		if !activeOnly || emp.IsActive() {
			list = append(list, emp)
		}
	}
	return list, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeWorkSiteRepo struct {
	sites []worksite.WorkSite
}

func (r *fakeWorkSiteRepo) List(_ context.Context) ([]worksite.WorkSite, error) {
	return r.sites, nil
}

func (r *fakeWorkSiteRepo) GetByID(_ context.Context, id string) (worksite.WorkSite, error) {
	for _, site := range r.sites {
		if site.ID == id {
			return site, nil
		}
	}
	return worksite.WorkSite{}, worksite.ErrWorkSiteNotFound
}

type fakeAttendanceCounter struct {
	counts map[string]int
}

func (r *fakeAttendanceCounter) AttendedDayCounts(_ context.Context, _, _ time.Time) (map[string]int, error) {
	return r.counts, nil
}

func activeEmployees(ids ...string) []employee.Employee {
	employees := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		employees = append(employees, employee.Employee{
			ID:               id,
			FullName:         "Employee " + id,
			EmploymentStatus: employee.EmploymentStatusActive,
		})
	}
	return employees
}

func newTestScheduleService(repo *fakeScheduleRepo, employees []employee.Employee, sites []worksite.WorkSite) schedule.ScheduleService {
	return NewScheduleService(
		repo,
		&fakeEmployeeRepo{employees: employees},
		&fakeWorkSiteRepo{sites: sites},
		&fakeAttendanceCounter{},
		SchedulerConfig{BaseStartHour: 8, CutoffHour: 20, ReliabilityWindowDays: 90},
	)
}

var testSites = []worksite.WorkSite{{ID: "ws-1", Name: "Main Clinic"}}

func TestAutoGenerateFailsFastWithoutEmployees(t *testing.T) {
	svc := newTestScheduleService(newFakeScheduleRepo(), nil, testSites)

	_, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-06",
		WorkDaysPerWeek:  5,
		ShiftLengthHours: 8,
	})
	assert.ErrorIs(t, err, schedule.ErrNoEligibleEmployees)
}

func TestAutoGenerateSkipsWeekends(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo, activeEmployees("e1"), testSites)

	// 2026-03-07 is a Saturday, 2026-03-08 a Sunday.
	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-07",
		EndDate:          "2026-03-08",
		WorkDaysPerWeek:  7,
		ShiftLengthHours: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.CreatedCount)
	assert.Equal(t, 2, resp.SkippedCount)
	assert.Empty(t, repo.created)

	for _, a := range repo.created {
		wd := a.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestAutoGenerateIncludesWeekendsWhenAsked(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo, activeEmployees("e1"), testSites)

	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-07",
		EndDate:          "2026-03-08",
		WorkDaysPerWeek:  7,
		ShiftLengthHours: 8,
		IncludeWeekends:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CreatedCount)
}

func TestAutoGenerateStaggersSlots(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo, activeEmployees("e1", "e2"), testSites)

	// 2026-03-02 is a Monday.
	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-02",
		WorkDaysPerWeek:  7,
		ShiftLengthHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.CreatedCount)

	assert.Equal(t, 8, repo.created[0].StartTime.Hour())
	assert.Equal(t, 16, repo.created[0].EndTime.Hour())
	assert.Equal(t, 10, repo.created[1].StartTime.Hour())
	assert.Equal(t, 18, repo.created[1].EndTime.Hour())
}

func TestAutoGenerateDropsSlotsPastCutoff(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo, activeEmployees("e1", "e2"), testSites)

	// 12-hour shifts: the first slot ends at 20:00, the second would end at
	// 22:00 and is dropped rather than retried earlier.
	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-02",
		WorkDaysPerWeek:  7,
		ShiftLengthHours: 12,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 1, resp.SkippedCount)
}

func TestAutoGenerateBalancesByAccumulatedHours(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.hourTotals = map[string]float64{"e1": 40, "e2": 40, "e3": 42, "e4": 10, "e5": 40}
	svc := newTestScheduleService(repo, activeEmployees("e1", "e2", "e3", "e4", "e5"), testSites)

	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-02",
		WorkDaysPerWeek:  1, // needed = ceil(5/7) = 1 per day
		ShiftLengthHours: 8,
		BalanceWorkload:  true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)

	assert.Equal(t, "e4", repo.created[0].EmployeeID)
}

func TestAutoGenerateNewEmployeeWinsReliabilityTie(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.hourTotals = map[string]float64{"e1": 16, "e2": 16}
	repo.dayCounts = map[string]int{"e1": 10} // e2 has no scheduling history

	svc := NewScheduleService(
		repo,
		&fakeEmployeeRepo{employees: activeEmployees("e1", "e2")},
		&fakeWorkSiteRepo{sites: testSites},
		&fakeAttendanceCounter{counts: map[string]int{"e1": 5}}, // e1 attended half
		SchedulerConfig{BaseStartHour: 8, CutoffHour: 20, ReliabilityWindowDays: 90},
	)

	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-02",
		WorkDaysPerWeek:  1, // needed = ceil(2/7) = 1
		ShiftLengthHours: 8,
		BalanceWorkload:  true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)

	// Equal hours put both in the tie band; the employee without history
	// defaults to full reliability and must rank above e1's 50%.
	assert.Equal(t, "e2", repo.created[0].EmployeeID)
}

func TestAutoGenerateAccumulatesHoursAcrossDays(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.hourTotals = map[string]float64{"e1": 0, "e2": 0}
	svc := newTestScheduleService(repo, activeEmployees("e1", "e2"), testSites)

	// One slot per day over four weekdays with balancing: assignments must
	// alternate instead of starving one employee.
	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-05",
		WorkDaysPerWeek:  3, // needed = ceil(6/7) = 1 per day
		ShiftLengthHours: 8,
		BalanceWorkload:  true,
	})
	require.NoError(t, err)
	require.Equal(t, 4, resp.CreatedCount)

	perEmployee := make(map[string]int)
	for _, a := range repo.created {
		perEmployee[a.EmployeeID]++
	}
	assert.Equal(t, 2, perEmployee["e1"])
	assert.Equal(t, 2, perEmployee["e2"])
}

func TestAutoGenerateContinuesPastFailedCreate(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.failFor["e1"] = true
	svc := newTestScheduleService(repo, activeEmployees("e1", "e2"), testSites)

	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-02",
		WorkDaysPerWeek:  7,
		ShiftLengthHours: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 1, resp.FailedCount)
}

func TestAutoGeneratePrefersPrimaryWorkSite(t *testing.T) {
	primary := "ws-2"
	employees := activeEmployees("e1")
	employees[0].PrimaryWorkSiteID = &primary

	repo := newFakeScheduleRepo()
	sites := []worksite.WorkSite{{ID: "ws-1", Name: "Main Clinic"}, {ID: "ws-2", Name: "Branch"}}
	svc := newTestScheduleService(repo, employees, sites)

	resp, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-02",
		WorkDaysPerWeek:  7,
		ShiftLengthHours: 8,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)

	assert.Equal(t, "ws-2", repo.created[0].WorkSiteID)
}

func TestAutoGenerateValidatesRequest(t *testing.T) {
	svc := newTestScheduleService(newFakeScheduleRepo(), activeEmployees("e1"), testSites)

	_, err := svc.AutoGenerate(context.Background(), schedule.AutoScheduleRequest{
		StartDate:        "2026-03-02",
		EndDate:          "2026-03-01",
		WorkDaysPerWeek:  5,
		ShiftLengthHours: 8,
	})
	assert.Error(t, err)
}

func TestDayConflictsReportsOverlaps(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := newTestScheduleService(repo, activeEmployees("e1"), testSites)

	day, _ := time.Parse("2006-01-02", "2026-03-02")
	_, err := repo.Create(context.Background(), assignment(t, "e1", "2026-03-02", "09:00:00", "13:00:00"))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), assignment(t, "e1", "2026-03-02", "12:00:00", "16:00:00"))
	require.NoError(t, err)

	conflicts, err := svc.DayConflicts(context.Background(), day.Format("2006-01-02"))
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "e1", conflicts[0].EmployeeID)
	assert.Equal(t, "2026-03-02", conflicts[0].Date)
}

func TestCreateAssignmentUnknownWorkSite(t *testing.T) {
	svc := newTestScheduleService(newFakeScheduleRepo(), activeEmployees("e1"), testSites)

	_, err := svc.CreateAssignment(context.Background(), schedule.CreateAssignmentRequest{
		EmployeeID: "e1",
		Date:       "2026-03-02",
		StartTime:  "08:00:00",
		EndTime:    "16:00:00",
		WorkSiteID: "ghost",
	})
	assert.ErrorIs(t, err, worksite.ErrWorkSiteNotFound)
}
