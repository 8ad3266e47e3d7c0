package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicore/staffops-backend-go/internal/domain/attendance"
	"github.com/clinicore/staffops-backend-go/internal/domain/schedule"
)

// Transactor runs a function inside one storage transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AttendanceJobs holds the background jobs derived from attendance data.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	tx             Transactor
	runHour        int
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	tx Transactor,
	runHour int,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		tx:             tx,
		runHour:        runHour,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees closes out past scheduled shifts nobody clocked in for:
// the assignment is marked missed and an absent attendance record is created
// for the day. Each (employee, day) is handled independently.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := time.Now()
	if !j.due(now) {
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return j.markAbsentBefore(ctx, today)
}

// due gates the hourly tick to the configured clinic-local hour.
func (j *AttendanceJobs) due(now time.Time) bool {
	return now.Hour() == j.runHour
}

func (j *AttendanceJobs) markAbsentBefore(ctx context.Context, today time.Time) error {
	unattended, err := j.scheduleRepo.ListScheduledWithoutAttendance(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list unattended assignments: %w", err)
	}

	if len(unattended) == 0 {
		return nil
	}

	// One absent record per (employee, date), even when the day had several
	// unattended assignments.
	var keys []string
	groups := make(map[string][]schedule.ShiftAssignment)
	for _, assignment := range unattended {
		key := assignment.EmployeeID + "|" + assignment.Date.Format("2006-01-02")
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], assignment)
	}

	markedCount := 0
	for _, key := range keys {
		assignments := groups[key]
		lead := assignments[0]

		// The absence record and its missed marks land together or not at all.
		err := j.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			record := attendance.Attendance{
				EmployeeID: lead.EmployeeID,
				Date:       lead.Date,
				Status:     attendance.StatusAbsent,
			}
			if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
				return fmt.Errorf("create absence record: %w", err)
			}
			for _, assignment := range assignments {
				if err := j.scheduleRepo.UpdateStatus(ctx, assignment.ID, schedule.AssignmentStatusMissed); err != nil {
					return fmt.Errorf("mark assignment %s missed: %w", assignment.ID, err)
				}
			}
			return nil
		})
		if err != nil {
			slog.Error("absence job: employee day failed",
				"employee_id", lead.EmployeeID,
				"date", lead.Date.Format("2006-01-02"),
				"error", err)
			continue
		}
		markedCount++
	}

	slog.Info("absence job finished", "marked", markedCount)
	return nil
}
