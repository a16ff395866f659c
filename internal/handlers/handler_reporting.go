package handlers

import (
	"net/http"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/SscSPs/business_hub_app/internal/utils/metrics"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvc
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc) {
	h := &paymentHandler{paymentService: paymentService}
	rg.GET("/payments", h.listPayments)
}

// listPayments godoc
// @Summary List payments
// @Description Payments derived from clients, optionally filtered by derived status.
// @Tags payments
// @Produce json
// @Param status query string false "Payment status" Enums(Paid, Unpaid, Cancelled)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), domain.PaymentViewStatus(params.Status))
	if err != nil {
		respondWithError(c, logger, err, "Payment not found", "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:        payments,
		CollectedIncome: metrics.CollectedIncome(payments),
	})
}

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard
// @Description Metric cards and chart series, recomputed from the current records.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Dashboard not found", "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
