package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clinicore/staffops-backend-go/internal/domain/payroll"
	"github.com/clinicore/staffops-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository.
func (p *payrollRepository) Create(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, p.db)

	entry.ID = uuid.NewString()

	query := `
		INSERT INTO payroll_entries (
			id, employee_id, period_start, period_end,
			regular_hours, overtime_hours, regular_pay, overtime_pay, gross_pay,
			withholding_tax, social_insurance, health_insurance, housing_fund,
			total_deductions, net_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.PeriodStart,
		entry.PeriodEnd,
		entry.RegularHours,
		entry.OvertimeHours,
		entry.RegularPay,
		entry.OvertimePay,
		entry.GrossPay,
		entry.WithholdingTax,
		entry.SocialInsurance,
		entry.HealthInsurance,
		entry.HousingFund,
		entry.TotalDeductions,
		entry.NetPay,
		entry.Status,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		// UNIQUE(employee_id, period_start, period_end)
		if isUniqueViolation(err) {
			return payroll.PayrollEntry{}, payroll.ErrEntryAlreadyExists
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return entry, nil
}

// GetByID implements payroll.PayrollRepository.
func (p *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT pe.id, pe.employee_id, pe.period_start, pe.period_end,
			   pe.regular_hours, pe.overtime_hours, pe.regular_pay, pe.overtime_pay, pe.gross_pay,
			   pe.withholding_tax, pe.social_insurance, pe.health_insurance, pe.housing_fund,
			   pe.total_deductions, pe.net_pay, pe.status, pe.created_at, pe.updated_at,
			   e.full_name AS employee_name
		FROM payroll_entries pe
		LEFT JOIN employees e ON e.id = pe.employee_id
		WHERE pe.id = $1
	`

	var entry payroll.PayrollEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.PeriodStart, &entry.PeriodEnd,
		&entry.RegularHours, &entry.OvertimeHours, &entry.RegularPay, &entry.OvertimePay, &entry.GrossPay,
		&entry.WithholdingTax, &entry.SocialInsurance, &entry.HealthInsurance, &entry.HousingFund,
		&entry.TotalDeductions, &entry.NetPay, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return entry, nil
}

// GetByEmployeeAndPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (*payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, period_start, period_end,
			   regular_hours, overtime_hours, regular_pay, overtime_pay, gross_pay,
			   withholding_tax, social_insurance, health_insurance, housing_fund,
			   total_deductions, net_pay, status, created_at, updated_at
		FROM payroll_entries
		WHERE employee_id = $1
		  AND period_start = $2
		  AND period_end = $3
		LIMIT 1
	`

	var entry payroll.PayrollEntry
	err := q.QueryRow(ctx, query, employeeID, periodStart, periodEnd).Scan(
		&entry.ID, &entry.EmployeeID, &entry.PeriodStart, &entry.PeriodEnd,
		&entry.RegularHours, &entry.OvertimeHours, &entry.RegularPay, &entry.OvertimePay, &entry.GrossPay,
		&entry.WithholdingTax, &entry.SocialInsurance, &entry.HealthInsurance, &entry.HousingFund,
		&entry.TotalDeductions, &entry.NetPay, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll entry by period: %w", err)
	}

	return &entry, nil
}

// List implements payroll.PayrollRepository.
func (p *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollEntry, int64, error) {
	q := GetQuerier(ctx, p.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND pe.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodStart != nil && *filter.PeriodStart != "" {
		baseWhere += fmt.Sprintf(" AND pe.period_start >= $%d", argIdx)
		args = append(args, *filter.PeriodStart)
		argIdx++
	}
	if filter.PeriodEnd != nil && *filter.PeriodEnd != "" {
		baseWhere += fmt.Sprintf(" AND pe.period_end <= $%d", argIdx)
		args = append(args, *filter.PeriodEnd)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND pe.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM payroll_entries pe WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT pe.id, pe.employee_id, pe.period_start, pe.period_end,
			   pe.regular_hours, pe.overtime_hours, pe.regular_pay, pe.overtime_pay, pe.gross_pay,
			   pe.withholding_tax, pe.social_insurance, pe.health_insurance, pe.housing_fund,
			   pe.total_deductions, pe.net_pay, pe.status, pe.created_at, pe.updated_at,
			   e.full_name AS employee_name
		FROM payroll_entries pe
		LEFT JOIN employees e ON e.id = pe.employee_id
		WHERE %s
		ORDER BY pe.period_start DESC, e.full_name
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
		return nil, 0, fmt.Errorf("failed to query payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		var entry payroll.PayrollEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.PeriodStart, &entry.PeriodEnd,
			&entry.RegularHours, &entry.OvertimeHours, &entry.RegularPay, &entry.OvertimePay, &entry.GrossPay,
			&entry.WithholdingTax, &entry.SocialInsurance, &entry.HealthInsurance, &entry.HousingFund,
			&entry.TotalDeductions, &entry.NetPay, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt,
			&entry.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}

	return entries, total, nil
}

// UpdateStatus implements payroll.PayrollRepository.
func (p *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.EntryStatus) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_entries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payroll entry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}
