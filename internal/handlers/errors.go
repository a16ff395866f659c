package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// importFailedMessage is shown for every rejected import file.
const importFailedMessage = "Import failed. Invalid file."

// respondWithError maps a service error to a status code and writes it.
// notFound and failure are the messages for a missing record and an unexpected failure.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, notFound, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrImportParse):
		logger.Warn("Rejected import", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: importFailedMessage})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Record not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid username or password"})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failure})
	}
}

// bindInvalid writes a 400 for a request body or query that failed to bind.
func bindInvalid(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// idParam parses the :id path parameter. It writes a 400 and returns false when it is not a positive integer.
func idParam(c *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}
