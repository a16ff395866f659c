package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	expenseService   portssvc.ExpenseSvcFacade
	dashboardService portssvc.DashboardSvc
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, dashboardService portssvc.DashboardSvc) {
	h := &expenseHandler{expenseService: expenseService, dashboardService: dashboardService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/summary", h.getExpenseSummary)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.ExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Expense not found", "Failed to create expense")
		return
	}

	logger.Info("Expense created", slog.Int64("expense_id", expense.ID))
	c.JSON(http.StatusCreated, expense)
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses by latest date. Unparseable bounds are ignored.
// @Tags expenses
// @Produce json
// @Param search query string false "Matches the expense detail"
// @Param from query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param to query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Param clientId query string false "Linked client ID"
// @Param min query string false "Minimum amount"
// @Param max query string false "Maximum amount"
// @Success 200 {array} domain.Expense
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Expense not found", "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// getExpenseSummary godoc
// @Summary Expense summary
// @Description This month, last month, total and average monthly expenses.
// @Tags expenses
// @Produce json
// @Success 200 {object} domain.ExpenseSummary
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/summary [get]
func (h *expenseHandler) getExpenseSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.dashboardService.GetExpenseSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Expense not found", "Failed to compute expense summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "expense")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err, "Expense not found", "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param expense body dto.ExpenseRequest true "Expense details"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "expense")
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, logger, err, "Expense not found", "Failed to update expense")
		return
	}

	logger.Info("Expense updated", slog.Int64("expense_id", id))
	c.JSON(http.StatusOK, expense)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path int true "Expense ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "expense")
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		respondWithError(c, logger, err, "Expense not found", "Failed to delete expense")
		return
	}

	logger.Info("Expense deleted", slog.Int64("expense_id", id))
	c.Status(http.StatusNoContent)
}
