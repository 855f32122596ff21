package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/logger"
)

// HandleAPIError maps an application error onto a status code and error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorResponse(err error) (int, *dto.ErrorDetail) {
	var customErr *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidParameter, "Invalid request parameter")
		if errors.As(err, &customErr) {
			if customErr.Message != "" {
				detail.Message = customErr.Message
			}
			if field, ok := customErr.Details["field"].(string); ok {
				detail.WithField(field)
			}
		}
		return http.StatusBadRequest, detail
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if errors.As(err, &customErr) && customErr.Details != nil {
			detail.WithDetails(customErr.Details)
		}
		return http.StatusBadRequest, detail
	case errors.Is(err, apperrors.ErrDuplicateIdentifier):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Identifier already exists")
	case errors.Is(err, apperrors.ErrConnectionFailed):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Database unavailable").
			WithSeverity(dto.ErrorSeverityCritical)
	case errors.Is(err, apperrors.ErrQueryFailed):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database query failed")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
