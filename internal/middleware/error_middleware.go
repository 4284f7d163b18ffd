package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to an HTTP status and the standard
// error envelope. Controllers call it for every failure path.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	message := err.Error()
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	// Validation
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidDateTime),
		errors.Is(err, apperrors.ErrInvalidRequestDecision),
		errors.Is(err, apperrors.ErrInvalidVerificationStat),
		errors.Is(err, apperrors.ErrEmptyContent):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidEmail, message).WithField("email")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, message).WithField("password")

	// Duplicates
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrRequestAlreadyPending),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)

	// Missing resources
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentProfileNotFound),
		errors.Is(err, apperrors.ErrMentorProfileNotFound),
		errors.Is(err, apperrors.ErrMentorNotFound),
		errors.Is(err, apperrors.ErrRequestNotFound),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrMessageNotFound),
		errors.Is(err, apperrors.ErrTrackerNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message)
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)

	// Authorization
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrRoleMismatch):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)

	// Invalid state
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceInvalidState, message)
	case errors.Is(err, apperrors.ErrMentorNotVerified),
		errors.Is(err, apperrors.ErrCannotDeleteAdmin):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalidState, message)
	}

	return http.StatusInternalServerError,
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred").
			WithSeverity(dto.ErrorSeverityCritical)
}

// HandleValidationError reports a request-binding failure as a 400 with the
// validation error code.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
}
