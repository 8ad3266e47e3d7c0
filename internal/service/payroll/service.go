package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicore/staffops-backend-go/internal/domain/attendance"
	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
	"github.com/clinicore/staffops-backend-go/internal/domain/payroll"
)

const dateLayout = "2006-01-02"

// overtimeMultiplier is the statutory premium on overtime hours.
var overtimeMultiplier = decimal.NewFromFloat(1.5)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         DeductionPolicy
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy DeductionPolicy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
	}
}

// Generate implements payroll.PayrollService. Each employee is handled
// independently: one failure is recorded and the run moves on, and employees
// who already have an entry for the period are skipped, never duplicated.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	periodStart, _ := time.Parse(dateLayout, req.PeriodStart)
	periodEnd, _ := time.Parse(dateLayout, req.PeriodEnd)

	var resp payroll.GeneratePayrollResponse

	employees, failed, err := s.resolveEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	resp.Failed = failed

	for _, emp := range employees {
		entry, skip, err := s.generateForEmployee(ctx, emp, periodStart, periodEnd)
		if err != nil {
			slog.Error("payroll generation: employee failed",
				"employee_id", emp.ID,
				"period_start", req.PeriodStart,
				"period_end", req.PeriodEnd,
				"error", err)
			resp.Failed = append(resp.Failed, payroll.FailedEmployee{
				EmployeeID: emp.ID,
				Error:      err.Error(),
			})
			continue
		}
		if skip != "" {
			resp.Skipped = append(resp.Skipped, payroll.SkippedEmployee{
				EmployeeID: emp.ID,
				Reason:     skip,
			})
			continue
		}
		resp.Created = append(resp.Created, mapEntryToResponse(entry))
	}

	resp.CreatedCount = len(resp.Created)
	resp.SkippedCount = len(resp.Skipped)
	resp.FailedCount = len(resp.Failed)

	slog.Info("payroll generation run finished",
		"period_start", req.PeriodStart,
		"period_end", req.PeriodEnd,
		"created", resp.CreatedCount,
		"skipped", resp.SkippedCount,
		"failed", resp.FailedCount)

	return resp, nil
}

// resolveEmployees picks the generation targets: the explicitly requested IDs,
// or every active employee when none were given. Unknown IDs are reported as
// failures without aborting the run.
func (s *PayrollServiceImpl) resolveEmployees(ctx context.Context, ids []string) ([]employee.Employee, []payroll.FailedEmployee, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.List(ctx, true)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list active employees: %w", err)
		}
		return employees, nil, nil
	}

	var (
		employees []employee.Employee
		failed    []payroll.FailedEmployee
	)
	for _, id := range ids {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			failed = append(failed, payroll.FailedEmployee{EmployeeID: id, Error: err.Error()})
			continue
		}
		employees = append(employees, emp)
	}
	return employees, failed, nil
}

// generateForEmployee computes and persists one employee's entry. A non-empty
// skip reason means the employee was deliberately passed over.
func (s *PayrollServiceImpl) generateForEmployee(ctx context.Context, emp employee.Employee, periodStart, periodEnd time.Time) (payroll.PayrollEntry, string, error) {
	existing, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollEntry{}, "", fmt.Errorf("failed to check existing entry: %w", err)
	}
	if existing != nil {
		return payroll.PayrollEntry{}, "entry already exists for period", nil
	}

	records, err := s.attendanceRepo.ListCompletedInRange(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollEntry{}, "", fmt.Errorf("failed to list completed attendance: %w", err)
	}
	if len(records) == 0 {
		return payroll.PayrollEntry{}, "no completed attendance in period", nil
	}

	entry := s.computeEntry(emp, records)
	entry.PeriodStart = periodStart
	entry.PeriodEnd = periodEnd

	created, err := s.payrollRepo.Create(ctx, entry)
	if err != nil {
		// A concurrent run can win the insert between the existence check and
		// here; that is a skip, not a failure.
		if errors.Is(err, payroll.ErrEntryAlreadyExists) {
			return payroll.PayrollEntry{}, "entry already exists for period", nil
		}
		return payroll.PayrollEntry{}, "", fmt.Errorf("failed to create payroll entry: %w", err)
	}
	return created, "", nil
}

// computeEntry aggregates completed attendance into a pending entry. Every
// intermediate amount is rounded to 2 decimal places before the next step.
func (s *PayrollServiceImpl) computeEntry(emp employee.Employee, records []attendance.Attendance) payroll.PayrollEntry {
	var regularHours, overtimeHours decimal.Decimal
	for _, record := range records {
		if record.TotalHours == nil {
			continue
		}
		overtime := decimal.Zero
		if record.OvertimeHours != nil {
			overtime = *record.OvertimeHours
		}
		regularHours = regularHours.Add(record.TotalHours.Sub(overtime))
		overtimeHours = overtimeHours.Add(overtime)
	}
	regularHours = regularHours.Round(2)
	overtimeHours = overtimeHours.Round(2)

	regularPay := regularHours.Mul(emp.HourlyRate).Round(2)
	overtimePay := overtimeHours.Mul(emp.HourlyRate).Mul(overtimeMultiplier).Round(2)
	grossPay := regularPay.Add(overtimePay).Round(2)

	deductions := s.policy.Compute(grossPay)

	return payroll.PayrollEntry{
		EmployeeID:      emp.ID,
		RegularHours:    regularHours,
		OvertimeHours:   overtimeHours,
		RegularPay:      regularPay,
		OvertimePay:     overtimePay,
		GrossPay:        grossPay,
		WithholdingTax:  deductions.WithholdingTax,
		SocialInsurance: deductions.SocialInsurance,
		HealthInsurance: deductions.HealthInsurance,
		HousingFund:     deductions.HousingFund,
		TotalDeductions: deductions.Total,
		NetPay:          grossPay.Sub(deductions.Total),
		Status:          payroll.EntryStatusPending,
	}
}

// ListEntries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	entries, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll entries: %w", err)
	}

	responses := make([]payroll.PayrollEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Entries:    responses,
	}, nil
}

// GetEntry implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.PayrollEntryResponse, error) {
	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrEntryNotFound) {
			return payroll.PayrollEntryResponse{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntryResponse{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return mapEntryToResponse(entry), nil
}

// ProcessEntry implements payroll.PayrollService.
func (s *PayrollServiceImpl) ProcessEntry(ctx context.Context, id string) (payroll.PayrollEntryResponse, error) {
	return s.advanceStatus(ctx, id, payroll.EntryStatusProcessed)
}

// MarkEntryPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkEntryPaid(ctx context.Context, id string) (payroll.PayrollEntryResponse, error) {
	return s.advanceStatus(ctx, id, payroll.EntryStatusPaid)
}

func (s *PayrollServiceImpl) advanceStatus(ctx context.Context, id string, next payroll.EntryStatus) (payroll.PayrollEntryResponse, error) {
	entry, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrEntryNotFound) {
			return payroll.PayrollEntryResponse{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntryResponse{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	if !entry.CanTransitionTo(next) {
		return payroll.PayrollEntryResponse{}, payroll.ErrInvalidTransition
	}

	if err := s.payrollRepo.UpdateStatus(ctx, id, next); err != nil {
		return payroll.PayrollEntryResponse{}, fmt.Errorf("failed to update entry status: %w", err)
	}

	entry.Status = next
	return mapEntryToResponse(entry), nil
}

func mapEntryToResponse(entry payroll.PayrollEntry) payroll.PayrollEntryResponse {
	var employeeName string
	if entry.EmployeeName != nil {
		employeeName = *entry.EmployeeName
	}

	return payroll.PayrollEntryResponse{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: employeeName,
		PeriodStart:  entry.PeriodStart.Format(dateLayout),
		PeriodEnd:    entry.PeriodEnd.Format(dateLayout),

		RegularHours:  entry.RegularHours.StringFixed(2),
		OvertimeHours: entry.OvertimeHours.StringFixed(2),
		RegularPay:    entry.RegularPay.StringFixed(2),
		OvertimePay:   entry.OvertimePay.StringFixed(2),
		GrossPay:      entry.GrossPay.StringFixed(2),

		WithholdingTax:  entry.WithholdingTax.StringFixed(2),
		SocialInsurance: entry.SocialInsurance.StringFixed(2),
		HealthInsurance: entry.HealthInsurance.StringFixed(2),
		HousingFund:     entry.HousingFund.StringFixed(2),
		TotalDeductions: entry.TotalDeductions.StringFixed(2),
		NetPay:          entry.NetPay.StringFixed(2),

		Status: string(entry.Status),
	}
}
