package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clinicore/staffops-backend-go/internal/domain/schedule"
	"github.com/clinicore/staffops-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Create implements schedule.ScheduleRepository.
func (s *scheduleRepository) Create(ctx context.Context, assignment schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	assignment.ID = uuid.NewString()

	query := `
		INSERT INTO shift_assignments (
			id, employee_id, date, start_time, end_time, work_site_id, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.ID,
		assignment.EmployeeID,
		assignment.Date,
		assignment.StartTime,
		assignment.EndTime,
		assignment.WorkSiteID,
		assignment.Status,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)

	if err != nil {
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return assignment, nil
}

// GetByID implements schedule.ScheduleRepository.
func (s *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.date, sa.start_time, sa.end_time,
			   sa.work_site_id, sa.status, sa.created_at, sa.updated_at,
			   e.full_name AS employee_name,
			   ws.name AS work_site_name
		FROM shift_assignments sa
		LEFT JOIN employees e ON e.id = sa.employee_id
		LEFT JOIN work_sites ws ON ws.id = sa.work_site_id
		WHERE sa.id = $1
	`

	var assignment schedule.ShiftAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&assignment.ID, &assignment.EmployeeID, &assignment.Date, &assignment.StartTime, &assignment.EndTime,
		&assignment.WorkSiteID, &assignment.Status, &assignment.CreatedAt, &assignment.UpdatedAt,
		&assignment.EmployeeName,
		&assignment.WorkSiteName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ShiftAssignment{}, schedule.ErrAssignmentNotFound
		}
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return assignment, nil
}

// ListByDate implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListByDate(ctx context.Context, date time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.date, sa.start_time, sa.end_time,
			   sa.work_site_id, sa.status, sa.created_at, sa.updated_at,
			   e.full_name AS employee_name,
			   ws.name AS work_site_name
		FROM shift_assignments sa
		LEFT JOIN employees e ON e.id = sa.employee_id
		LEFT JOIN work_sites ws ON ws.id = sa.work_site_id
		WHERE sa.date = $1
		ORDER BY sa.employee_id, sa.start_time
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments by date: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// List implements schedule.ScheduleRepository.
func (s *scheduleRepository) List(ctx context.Context, filter schedule.AssignmentFilter) ([]schedule.ShiftAssignment, int64, error) {
	q := GetQuerier(ctx, s.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND sa.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND sa.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND sa.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND sa.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM shift_assignments sa WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shift assignments: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT sa.id, sa.employee_id, sa.date, sa.start_time, sa.end_time,
			   sa.work_site_id, sa.status, sa.created_at, sa.updated_at,
			   e.full_name AS employee_name,
			   ws.name AS work_site_name
		FROM shift_assignments sa
		LEFT JOIN employees e ON e.id = sa.employee_id
		LEFT JOIN work_sites ws ON ws.id = sa.work_site_id
		WHERE %s
		ORDER BY sa.date DESC, sa.start_time
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	assignments, err := scanAssignments(rows)
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// UpdateStatus implements schedule.ScheduleRepository.
func (s *scheduleRepository) UpdateStatus(ctx context.Context, id string, status schedule.AssignmentStatus) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shift_assignments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}

	return nil
}

// ScheduledHourTotals implements schedule.ScheduleRepository.
func (s *scheduleRepository) ScheduledHourTotals(ctx context.Context, start, end time.Time) (map[string]float64, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT employee_id,
			   SUM(EXTRACT(EPOCH FROM (end_time - start_time)) / 3600.0)
		FROM shift_assignments
		WHERE date >= $1
		  AND date <= $2
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled hour totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var employeeID string
		var hours float64
		if err := rows.Scan(&employeeID, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled hour total: %w", err)
		}
		totals[employeeID] = hours
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled hour totals: %w", err)
	}

	return totals, nil
}

// ScheduledDayCounts implements schedule.ScheduleRepository.
func (s *scheduleRepository) ScheduledDayCounts(ctx context.Context, start, end time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT employee_id, COUNT(DISTINCT date)
		FROM shift_assignments
		WHERE date >= $1
		  AND date <= $2
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled day counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var employeeID string
		var days int
		if err := rows.Scan(&employeeID, &days); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled day count: %w", err)
		}
		counts[employeeID] = days
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled day counts: %w", err)
	}

	return counts, nil
}

// ListScheduledWithoutAttendance implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListScheduledWithoutAttendance(ctx context.Context, before time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.date, sa.start_time, sa.end_time,
			   sa.work_site_id, sa.status, sa.created_at, sa.updated_at,
			   e.full_name AS employee_name,
			   ws.name AS work_site_name
		FROM shift_assignments sa
		LEFT JOIN employees e ON e.id = sa.employee_id
		LEFT JOIN work_sites ws ON ws.id = sa.work_site_id
		WHERE sa.status = $1
		  AND sa.date < $2
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = sa.employee_id
			  AND a.date = sa.date
		  )
		ORDER BY sa.date, sa.employee_id
	`

	rows, err := q.Query(ctx, query, schedule.AssignmentStatusScheduled, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query unattended assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func scanAssignments(rows pgx.Rows) ([]schedule.ShiftAssignment, error) {
	var assignments []schedule.ShiftAssignment
	for rows.Next() {
		var a schedule.ShiftAssignment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.StartTime, &a.EndTime,
			&a.WorkSiteID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName,
			&a.WorkSiteName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift assignments: %w", err)
	}
	return assignments, nil
}
