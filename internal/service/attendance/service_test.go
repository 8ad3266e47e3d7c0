package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/staffops-backend-go/internal/domain/attendance"
	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.seq++
	att.ID = "att-" + strconv.Itoa(r.seq)
	copied := att
	r.records[att.ID] = &copied
	return att, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	existing, ok := r.records[att.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	*existing = att
	return nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	existing, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *existing, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			copied := *att
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var all []attendance.Attendance
	for _, att := range r.records {
		all = append(all, *att)
	}
	return all, int64(len(all)), nil
}

func (r *fakeAttendanceRepo) ListCompletedInRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var completed []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Completed() && !att.Date.Before(start) && !att.Date.After(end) {
			completed = append(completed, *att)
		}
	}
	return completed, nil
}

func (r *fakeAttendanceRepo) AttendedDayCounts(_ context.Context, start, end time.Time) (map[string]int, error) {
	counts := make(map[string]int)
	for _, att := range r.records {
		if att.Status != attendance.StatusAbsent && !att.Date.Before(start) && !att.Date.After(end) {
			counts[att.EmployeeID]++
		}
	}
	return counts, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		repo.employees[emp.ID] = emp
	}
	return repo
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
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func testEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:               id,
		EmployeeCode:     "EMP-" + id,
		FullName:         "Employee " + id,
		HourlyRate:       decimal.NewFromInt(100),
		EmploymentStatus: employee.EmploymentStatusActive,
	}
}

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo) attendance.AttendanceService {
	return NewAttendanceService(attRepo, empRepo, ShiftPolicy{
		StartTime:          "08:00:00",
		GracePeriodMinutes: 15,
		StandardShiftHours: 8,
	})
}

func TestClockInOnTime(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("e1")))

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID:  "e1",
		Date:        "2026-03-02",
		ClockInTime: "08:10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)
	require.NotNil(t, resp.ClockInTime)
	assert.Equal(t, "08:10:00", *resp.ClockInTime)
	assert.Nil(t, resp.ClockOutTime)
}

func TestClockInLate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("e1")))

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID:  "e1",
		Date:        "2026-03-02",
		ClockInTime: "08:45:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "late", resp.Status)
	assert.Equal(t, 30, resp.LateMinutes)
}

func TestClockInTwiceRejected(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("e1")))

	req := attendance.ClockInRequest{EmployeeID: "e1", Date: "2026-03-02", ClockInTime: "08:00:00"}

	_, err := svc.ClockIn(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	assert.Len(t, attRepo.records, 1)
}

func TestClockInUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID:  "ghost",
		Date:        "2026-03-02",
		ClockInTime: "08:00:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockOutComputesHourBuckets(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("e1")))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID:  "e1",
		Date:        "2026-03-02",
		ClockInTime: "08:00:00",
	})
	require.NoError(t, err)

	resp, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{
		EmployeeID:   "e1",
		Date:         "2026-03-02",
		ClockOutTime: "18:00:00",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, "10.00", *resp.TotalHours)
	assert.Equal(t, "8.00", *resp.RegularHours)
	assert.Equal(t, "2.00", *resp.OvertimeHours)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee("e1")))

	_, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{
		EmployeeID:   "e1",
		Date:         "2026-03-02",
		ClockOutTime: "17:00:00",
	})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutTwiceRejected(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newTestService(attRepo, newFakeEmployeeRepo(testEmployee("e1")))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID:  "e1",
		Date:        "2026-03-02",
		ClockInTime: "08:00:00",
	})
	require.NoError(t, err)

	out := attendance.ClockOutRequest{EmployeeID: "e1", Date: "2026-03-02", ClockOutTime: "16:00:00"}

	_, err = svc.ClockOut(context.Background(), out)
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), out)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockInValidation(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(testEmployee("e1")))

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID:  "e1",
		Date:        "02-03-2026",
		ClockInTime: "08:00:00",
	})
	assert.Error(t, err)
}
