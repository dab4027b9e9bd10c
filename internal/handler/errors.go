package handler

import (
	"errors"
	"net/http"

	"chequeflow/internal/apperrors"
	"chequeflow/internal/logger"
	"chequeflow/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps application errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		validation *apperrors.ValidationError
		locked     *apperrors.LockedError
	)

	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorWithDetails(http.StatusUnprocessableEntity, validation.Message,
			gin.H{"field": validation.Field}))
	case errors.As(err, &locked):
		details := gin.H{}
		if locked.ChequeID != uuid.Nil {
			details["cheque_id"] = locked.ChequeID
		}
		if locked.DocumentID != uuid.Nil {
			details["document_id"] = locked.DocumentID
		}
		c.JSON(http.StatusLocked, response.ErrorWithDetails(http.StatusLocked, err.Error(), details))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	case errors.Is(err, apperrors.ErrPersistence):
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("persistence failure")
		c.JSON(http.StatusServiceUnavailable, response.Error(http.StatusServiceUnavailable,
			"The change could not be saved. Please try again."))
	default:
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, msg))
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUIDQuery returns nil when the query parameter is absent.
func parseOptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "Invalid "+name)
		return nil, false
	}
	return &id, true
}
