package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/business_hub_app/internal/backup"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportBytes caps the size of an uploaded import file.
const maxImportBytes = 10 << 20

type dataHandler struct {
	dataService portssvc.DataTransferSvc
}

func registerDataRoutes(rg *gin.RouterGroup, dataService portssvc.DataTransferSvc) {
	h := &dataHandler{dataService: dataService}

	data := rg.Group("/data")
	{
		data.GET("/export", h.exportData)
		data.POST("/import", h.importData)
	}
}

// exportData godoc
// @Summary Export all data
// @Description Downloads clients, expenses and employees as one JSON file.
// @Tags data
// @Produce json
// @Success 200 {object} domain.ExportDocument
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/export [get]
func (h *dataHandler) exportData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.dataService.Export(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Nothing to export", "Failed to export data")
		return
	}

	body, err := backup.Encode(*doc)
	if err != nil {
		respondWithError(c, logger, err, "Nothing to export", "Failed to export data")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename()))
	c.Data(http.StatusOK, "application/json", body)
}

// importData godoc
// @Summary Import data
// @Description Replaces every collection given as an array in the uploaded JSON document.
// @Description Other collections are left untouched. An invalid file changes nothing.
// @Tags data
// @Accept json
// @Produce json
// @Param document body domain.Snapshot true "Export document"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /data/import [post]
func (h *dataHandler) importData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Import file too large", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: importFailedMessage})
			return
		}
		logger.Warn("Failed to read import body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: importFailedMessage})
		return
	}

	result, err := h.dataService.Import(c.Request.Context(), payload)
	if err != nil {
		respondWithError(c, logger, err, "Nothing to import", "Failed to import data")
		return
	}

	logger.Info("Data imported")
	c.JSON(http.StatusOK, result)
}
