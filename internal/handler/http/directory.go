package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
	"github.com/clinicore/staffops-backend-go/internal/domain/worksite"
	"github.com/clinicore/staffops-backend-go/internal/handler/http/response"
)

// DirectoryHandler serves the read-only employee and work-site lookups the
// scheduling and payroll screens depend on.
type DirectoryHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListWorkSites(w http.ResponseWriter, r *http.Request)
	GetWorkSite(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	employeeService employee.EmployeeService
	worksiteService worksite.WorkSiteService
}

func NewDirectoryHandler(employeeService employee.EmployeeService, worksiteService worksite.WorkSiteService) DirectoryHandler {
	return &directoryHandlerImpl{
		employeeService: employeeService,
		worksiteService: worksiteService,
	}
}

// ListEmployees implements DirectoryHandler.
func (h *directoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context(), queryBool(r, "active_only"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements DirectoryHandler.
func (h *directoryHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListWorkSites implements DirectoryHandler.
func (h *directoryHandlerImpl) ListWorkSites(w http.ResponseWriter, r *http.Request) {
	result, err := h.worksiteService.ListWorkSites(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkSite implements DirectoryHandler.
func (h *directoryHandlerImpl) GetWorkSite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.worksiteService.GetWorkSite(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
