package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
	"github.com/clinicore/staffops-backend-go/internal/domain/schedule"
	"github.com/clinicore/staffops-backend-go/internal/domain/worksite"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// SchedulerConfig fixes the slot grid the balancer staggers shifts across.
type SchedulerConfig struct {
	BaseStartHour         int // first slot of the day
	CutoffHour            int // no shift may end past this hour
	ReliabilityWindowDays int
}

type ScheduleServiceImpl struct {
	scheduleRepo   schedule.ScheduleRepository
	employeeRepo   employee.EmployeeRepository
	worksiteRepo   worksite.WorkSiteRepository
	attendanceRepo AttendanceCounter
	cfg            SchedulerConfig
}

// AttendanceCounter is the slice of the attendance store the scheduler needs
// for reliability scores.
type AttendanceCounter interface {
	AttendedDayCounts(ctx context.Context, start, end time.Time) (map[string]int, error)
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	worksiteRepo worksite.WorkSiteRepository,
	attendanceRepo AttendanceCounter,
	cfg SchedulerConfig,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo:   scheduleRepo,
		employeeRepo:   employeeRepo,
		worksiteRepo:   worksiteRepo,
		attendanceRepo: attendanceRepo,
		cfg:            cfg,
	}
}

// CreateAssignment implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateAssignment(ctx context.Context, req schedule.CreateAssignmentRequest) (schedule.ShiftAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftAssignmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if _, err := s.worksiteRepo.GetByID(ctx, req.WorkSiteID); err != nil {
		return schedule.ShiftAssignmentResponse{}, fmt.Errorf("failed to get work site: %w", err)
	}

	date, _ := time.Parse(dateLayout, req.Date)

	assignment := schedule.ShiftAssignment{
		EmployeeID: req.EmployeeID,
		Date:       date,
		StartTime:  combine(date, req.StartTime),
		EndTime:    combine(date, req.EndTime),
		WorkSiteID: req.WorkSiteID,
		Status:     schedule.AssignmentStatusScheduled,
	}

	created, err := s.scheduleRepo.Create(ctx, assignment)
	if err != nil {
		return schedule.ShiftAssignmentResponse{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// ListAssignments implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListAssignments(ctx context.Context, filter schedule.AssignmentFilter) (schedule.ListAssignmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListAssignmentResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	assignments, total, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return schedule.ListAssignmentResponse{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]schedule.ShiftAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return schedule.ListAssignmentResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Assignments: responses,
	}, nil
}

// DayConflicts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DayConflicts(ctx context.Context, date string) ([]schedule.ConflictResponse, error) {
	day, ok := parseDate(date)
	if !ok {
		return nil, schedule.ErrInvalidDateRange
	}

	assignments, err := s.scheduleRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for date: %w", err)
	}

	pairs := FindConflicts(assignments)

	responses := make([]schedule.ConflictResponse, 0, len(pairs))
	for _, pair := range pairs {
		var employeeName string
		if pair.First.EmployeeName != nil {
			employeeName = *pair.First.EmployeeName
		}
		responses = append(responses, schedule.ConflictResponse{
			EmployeeID:   pair.First.EmployeeID,
			EmployeeName: employeeName,
			Date:         pair.First.Date.Format(dateLayout),
			First:        mapAssignmentToResponse(pair.First),
			Second:       mapAssignmentToResponse(pair.Second),
		})
	}

	return responses, nil
}

// AutoGenerate implements schedule.ScheduleService. It walks the date range in
// order, picks each day's staff per the balancing mode, staggers their start
// slots two hours apart and creates assignments best-effort: one failed
// creation is recorded and the run moves on.
func (s *ScheduleServiceImpl) AutoGenerate(ctx context.Context, req schedule.AutoScheduleRequest) (schedule.AutoScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AutoScheduleResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	pool, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return schedule.AutoScheduleResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(pool) == 0 {
		return schedule.AutoScheduleResponse{}, schedule.ErrNoEligibleEmployees
	}

	sites, err := s.worksiteRepo.List(ctx)
	if err != nil {
		return schedule.AutoScheduleResponse{}, fmt.Errorf("failed to list work sites: %w", err)
	}

	seed, err := s.scheduleRepo.ScheduledHourTotals(ctx, start, end)
	if err != nil {
		return schedule.AutoScheduleResponse{}, fmt.Errorf("failed to load scheduled hour totals: %w", err)
	}

	reliability, err := s.reliabilityScores(ctx, start, pool)
	if err != nil {
		return schedule.AutoScheduleResponse{}, fmt.Errorf("failed to load reliability scores: %w", err)
	}

	state := newRunState(seed)
	needed := employeesNeeded(len(pool), req.WorkDaysPerWeek)
	shiftHours := float64(req.ShiftLengthHours)

	var resp schedule.AutoScheduleResponse

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) && !req.IncludeWeekends {
			resp.Skipped = append(resp.Skipped, schedule.SkippedSlot{
				Date:   day.Format(dateLayout),
				Reason: "weekend excluded",
			})
			continue
		}

		var selection []employee.Employee
		if req.BalanceWorkload {
			selection = selectCandidates(pool, state.accumulatedHours, reliability, needed)
		} else {
			selection = selectRoundRobin(pool, state, needed)
		}

		for i, emp := range selection {
			startHour := s.cfg.BaseStartHour + i*2
			endHour := startHour + req.ShiftLengthHours

			// Slots past the cutoff are dropped outright, not retried
			// earlier. Days can end under-covered as a result.
			if endHour > s.cfg.CutoffHour {
				resp.Skipped = append(resp.Skipped, schedule.SkippedSlot{
					Date:       day.Format(dateLayout),
					EmployeeID: emp.ID,
					Reason:     fmt.Sprintf("slot ending at %02d:00 is past the %02d:00 cutoff", endHour, s.cfg.CutoffHour),
				})
				continue
			}

			siteID, ok := resolveWorkSite(emp, sites, i)
			if !ok {
				resp.Skipped = append(resp.Skipped, schedule.SkippedSlot{
					Date:       day.Format(dateLayout),
					EmployeeID: emp.ID,
					Reason:     "no work site available",
				})
				continue
			}

			assignment := schedule.ShiftAssignment{
				EmployeeID: emp.ID,
				Date:       day,
				StartTime:  time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location()),
				EndTime:    time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location()),
				WorkSiteID: siteID,
				Status:     schedule.AssignmentStatusScheduled,
			}

			created, err := s.scheduleRepo.Create(ctx, assignment)
			if err != nil {
				slog.Error("auto-schedule: failed to create assignment",
					"employee_id", emp.ID,
					"date", day.Format(dateLayout),
					"error", err)
				resp.Failed = append(resp.Failed, schedule.FailedSlot{
					Date:       day.Format(dateLayout),
					EmployeeID: emp.ID,
					Error:      err.Error(),
				})
				continue
			}

			state.addHours(emp.ID, shiftHours)
			resp.Created = append(resp.Created, mapAssignmentToResponse(created))
		}
	}

	resp.CreatedCount = len(resp.Created)
	resp.SkippedCount = len(resp.Skipped)
	resp.FailedCount = len(resp.Failed)

	slog.Info("auto-schedule run finished",
		"created", resp.CreatedCount,
		"skipped", resp.SkippedCount,
		"failed", resp.FailedCount)

	return resp, nil
}

// reliabilityScores builds the per-employee reliability snapshot over the
// trailing window ending the day before the run starts. Every pool employee
// gets a score: those without scheduling history score 100, so new hires rank
// ahead of employees with missed shifts when hours tie.
func (s *ScheduleServiceImpl) reliabilityScores(ctx context.Context, runStart time.Time, pool []employee.Employee) (map[string]float64, error) {
	windowEnd := runStart.AddDate(0, 0, -1)
	windowStart := windowEnd.AddDate(0, 0, -s.cfg.ReliabilityWindowDays)

	scheduled, err := s.scheduleRepo.ScheduledDayCounts(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	attended, err := s.attendanceRepo.AttendedDayCounts(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(pool))
	for _, emp := range pool {
		scores[emp.ID] = reliabilityScore(scheduled[emp.ID], attended[emp.ID])
	}
	return scores, nil
}

// resolveWorkSite prefers the employee's primary site, falling back to
// rotating through the site list by selection index.
func resolveWorkSite(emp employee.Employee, sites []worksite.WorkSite, index int) (string, bool) {
	if emp.PrimaryWorkSiteID != nil && *emp.PrimaryWorkSiteID != "" {
		return *emp.PrimaryWorkSiteID, true
	}
	if len(sites) == 0 {
		return "", false
	}
	return sites[index%len(sites)].ID, true
}

func isWeekend(day time.Time) bool {
	return day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	return t, err == nil
}

func combine(date time.Time, clock string) time.Time {
	t, _ := time.Parse(timeLayout, clock)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0,
		date.Location(),
	)
}

func mapAssignmentToResponse(a schedule.ShiftAssignment) schedule.ShiftAssignmentResponse {
	var employeeName, siteName string
	if a.EmployeeName != nil {
		employeeName = *a.EmployeeName
	}
	if a.WorkSiteName != nil {
		siteName = *a.WorkSiteName
	}

	return schedule.ShiftAssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Date:         a.Date.Format(dateLayout),
		StartTime:    a.StartTime.Format(timeLayout),
		EndTime:      a.EndTime.Format(timeLayout),
		WorkSiteID:   a.WorkSiteID,
		WorkSiteName: siteName,
		Status:       string(a.Status),
	}
}
