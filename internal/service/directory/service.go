package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
	"github.com/clinicore/staffops-backend-go/internal/domain/worksite"
)

// Employee and work-site records are owned by the directory; this service
// only reads them for scheduling and payroll screens.

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                emp.ID,
		EmployeeCode:      emp.EmployeeCode,
		FullName:          emp.FullName,
		HourlyRate:        emp.HourlyRate.StringFixed(2),
		EmploymentStatus:  string(emp.EmploymentStatus),
		PrimaryWorkSiteID: emp.PrimaryWorkSiteID,
	}
}

type WorkSiteServiceImpl struct {
	worksiteRepo worksite.WorkSiteRepository
}

func NewWorkSiteService(worksiteRepo worksite.WorkSiteRepository) worksite.WorkSiteService {
	return &WorkSiteServiceImpl{worksiteRepo: worksiteRepo}
}

// ListWorkSites implements worksite.WorkSiteService.
func (s *WorkSiteServiceImpl) ListWorkSites(ctx context.Context) (worksite.ListWorkSiteResponse, error) {
	sites, err := s.worksiteRepo.List(ctx)
	if err != nil {
		return worksite.ListWorkSiteResponse{}, fmt.Errorf("failed to list work sites: %w", err)
	}

	responses := make([]worksite.WorkSiteResponse, 0, len(sites))
	for _, site := range sites {
		responses = append(responses, mapWorkSiteToResponse(site))
	}

	return worksite.ListWorkSiteResponse{
		TotalCount: len(responses),
		WorkSites:  responses,
	}, nil
}

// GetWorkSite implements worksite.WorkSiteService.
func (s *WorkSiteServiceImpl) GetWorkSite(ctx context.Context, id string) (worksite.WorkSiteResponse, error) {
	site, err := s.worksiteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, worksite.ErrWorkSiteNotFound) {
			return worksite.WorkSiteResponse{}, worksite.ErrWorkSiteNotFound
		}
		return worksite.WorkSiteResponse{}, fmt.Errorf("failed to get work site: %w", err)
	}

	return mapWorkSiteToResponse(site), nil
}

func mapWorkSiteToResponse(site worksite.WorkSite) worksite.WorkSiteResponse {
	return worksite.WorkSiteResponse{
		ID:      site.ID,
		Name:    site.Name,
		Address: site.Address,
	}
}
