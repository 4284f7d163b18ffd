package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	pkgauth "github.com/careerconnect/backend/internal/pkg/auth"
)

// contextUserKey is where the resolved principal lives in the Gin context.
const contextUserKey = "currentUser"

// JWTAuth validates the bearer token and resolves it into a principal.
// Requests without a valid token never reach the handler.
func JWTAuth(jwtService *pkgauth.JWTService, authz *appauth.AuthorizationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := pkgauth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, translateTokenError(err))
			return
		}

		principal, err := authz.ResolvePrincipal(c.Request.Context(), claims.UserID)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(contextUserKey, principal)
		c.Next()
	}
}

// RoleRequired gates a route group to a single role. Must run after JWTAuth.
func RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}
		if principal.Role != role {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal stored by JWTAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*models.User)
	return principal, ok
}

func translateTokenError(err error) error {
	switch {
	case errors.Is(err, pkgauth.ErrExpiredToken):
		return apperrors.ErrTokenExpired
	case errors.Is(err, pkgauth.ErrInvalidFormat), errors.Is(err, pkgauth.ErrInvalidToken):
		return apperrors.ErrTokenInvalid
	default:
		return apperrors.ErrTokenInvalid
	}
}
