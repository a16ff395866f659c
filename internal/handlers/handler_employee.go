package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/SscSPs/business_hub_app/internal/utils/metrics"
	"github.com/gin-gonic/gin"
)

type employeeHandler struct {
	employeeService  portssvc.EmployeeSvcFacade
	dashboardService portssvc.DashboardSvc
}

func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, dashboardService portssvc.DashboardSvc) {
	h := &employeeHandler{employeeService: employeeService, dashboardService: dashboardService}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/stats", h.getEmployeeStats)
		employees.GET("/departments", h.listDepartments)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.EmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Employee not found", "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.Int64("employee_id", employee.ID))
	c.JSON(http.StatusCreated, employee)
}

// listEmployees godoc
// @Summary List employees
// @Description Lists employees newest first with statistics over the listed employees.
// @Tags employees
// @Produce json
// @Param search query string false "Matches name, position, department and contact"
// @Param department query string false "Exact department"
// @Param status query string false "Employee status"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Employee not found", "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ListEmployeesResponse{
		Employees: employees,
		Stats:     metrics.SummarizeEmployees(employees),
	})
}

// getEmployeeStats godoc
// @Summary Employee statistics
// @Tags employees
// @Produce json
// @Param search query string false "Matches name, position, department and contact"
// @Param department query string false "Exact department"
// @Param status query string false "Employee status"
// @Success 200 {object} domain.EmployeeStats
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/stats [get]
func (h *employeeHandler) getEmployeeStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	stats, err := h.dashboardService.GetEmployeeStats(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Employee not found", "Failed to compute employee statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// listDepartments godoc
// @Summary Departments offered for new employees
// @Tags employees
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /employees/departments [get]
func (h *employeeHandler) listDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Departments)
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "employee")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err, "Employee not found", "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body dto.EmployeeRequest true "Employee details"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "employee")
	if !ok {
		return
	}
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, logger, err, "Employee not found", "Failed to update employee")
		return
	}

	logger.Info("Employee updated", slog.Int64("employee_id", id))
	c.JSON(http.StatusOK, employee)
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "employee")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondWithError(c, logger, err, "Employee not found", "Failed to delete employee")
		return
	}

	logger.Info("Employee deleted", slog.Int64("employee_id", id))
	c.Status(http.StatusNoContent)
}
