package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/staffops-backend-go/internal/domain/attendance"
	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// ShiftPolicy is the clinic-wide attendance policy applied to every clock-in.
type ShiftPolicy struct {
	StartTime          string // "15:04:05"
	GracePeriodMinutes int
	StandardShiftHours int
}

// GraceEnd returns the last on-time clock-in instant for the given date.
func (p ShiftPolicy) GraceEnd(date time.Time) time.Time {
	start, err := time.Parse(timeLayout, p.StartTime)
	if err != nil {
		start = time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)
	}
	scheduledStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		start.Hour(), start.Minute(), start.Second(), 0,
		date.Location(),
	)
	return scheduledStart.Add(time.Duration(p.GracePeriodMinutes) * time.Minute)
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         ShiftPolicy
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy ShiftPolicy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse(dateLayout, req.Date)
	clockIn := combine(date, req.ClockInTime)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status, lateMinutes := Classify(clockIn, s.policy.GraceEnd(date))

	record := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		ClockIn:     &clockIn,
		Status:      status,
		LateMinutes: lateMinutes,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse(dateLayout, req.Date)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil || record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	clockOut := combine(date, req.ClockOutTime)
	buckets := ComputeHours(*record.ClockIn, clockOut, s.policy.StandardShiftHours)

	record.ClockOut = &clockOut
	record.TotalHours = &buckets.Total
	record.RegularHours = &buckets.Regular
	record.OvertimeHours = &buckets.Overtime

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(*record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapAttendanceToResponse(record))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return mapAttendanceToResponse(record), nil
}

// combine anchors a "15:04:05" clock time on the given calendar date.
func combine(date time.Time, clock string) time.Time {
	t, _ := time.Parse(timeLayout, clock)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		date.Location(),
	)
}

func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(timeLayout)
	return &formatted
}

func mapAttendanceToResponse(record attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if record.EmployeeName != nil {
		employeeName = *record.EmployeeName
	}

	resp := attendance.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: employeeName,
		Date:         record.Date.Format(dateLayout),
		ClockInTime:  timePtrToClock(record.ClockIn),
		ClockOutTime: timePtrToClock(record.ClockOut),
		Status:       string(record.Status),
		LateMinutes:  record.LateMinutes,
	}

	if record.TotalHours != nil {
		v := record.TotalHours.StringFixed(2)
		resp.TotalHours = &v
	}
	if record.RegularHours != nil {
		v := record.RegularHours.StringFixed(2)
		resp.RegularHours = &v
	}
	if record.OvertimeHours != nil {
		v := record.OvertimeHours.StringFixed(2)
		resp.OvertimeHours = &v
	}

	return resp
}
