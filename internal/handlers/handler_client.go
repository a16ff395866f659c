package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService    portssvc.ClientSvcFacade
	dashboardService portssvc.DashboardSvc
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, dashboardService portssvc.DashboardSvc) {
	h := &clientHandler{clientService: clientService, dashboardService: dashboardService}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/stats", h.getClientStats)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
		clients.POST("/:id/mark-paid", h.markPaid)
	}
}

// createClient godoc
// @Summary Create a client
// @Description Adds a client. Missing statuses default to Current / Unpaid and a missing date to today.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.ClientRequest true "Client details"
// @Success 201 {object} domain.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to create client")
		return
	}

	logger.Info("Client created", slog.Int64("client_id", client.ID))
	c.JSON(http.StatusCreated, client)
}

// listClients godoc
// @Summary List clients
// @Description Lists clients newest first, filtered by search text and project status.
// @Tags clients
// @Produce json
// @Param search query string false "Matches name, company, service and contact"
// @Param status query string false "Project status" Enums(Current, Pending, Completed, Cancelled)
// @Success 200 {array} domain.Client
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// getClientStats godoc
// @Summary Client statistics
// @Tags clients
// @Produce json
// @Success 200 {object} domain.ClientStats
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/stats [get]
func (h *clientHandler) getClientStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.dashboardService.GetClientStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to compute client statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "client")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// updateClient godoc
// @Summary Update a client
// @Description Replaces every field. An empty added date keeps the stored one.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param client body dto.ClientRequest true "Client details"
// @Success 200 {object} domain.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "client")
	if !ok {
		return
	}
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, logger, err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to update client")
		return
	}

	logger.Info("Client updated", slog.Int64("client_id", id))
	c.JSON(http.StatusOK, client)
}

// deleteClient godoc
// @Summary Delete a client
// @Description Deletes the client. Its expenses stay and become general expenses.
// @Tags clients
// @Param id path int true "Client ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "client")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to delete client")
		return
	}

	logger.Info("Client deleted", slog.Int64("client_id", id))
	c.Status(http.StatusNoContent)
}

// markPaid godoc
// @Summary Mark a client's payment as paid
// @Description Sets the payment to Paid. A Pending project becomes Current.
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/mark-paid [post]
func (h *clientHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := idParam(c, "client")
	if !ok {
		return
	}

	client, err := h.clientService.MarkPaymentPaid(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, logger, err, "Client not found", "Failed to mark payment as paid")
		return
	}

	logger.Info("Payment marked as paid", slog.Int64("client_id", id))
	c.JSON(http.StatusOK, client)
}
