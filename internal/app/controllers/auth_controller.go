// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/services"
	"github.com/careerconnect/backend/internal/middleware"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// AuthController handles registration and authentication endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger.With().Str("controller", "auth").Logger(),
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a student or mentor account with its role profile and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or role"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Str("role", string(req.Role)).Msg("User registered")
	ctx.JSON(http.StatusCreated, resp)
}

// Login handles user authentication
// @Summary Log in
// @Description Verifies credentials and returns an access token with the user profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
// @Summary Current user
// @Description Returns the authenticated user with its role profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.authService.GetCurrentUser(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RequestPasswordReset initiates a password reset
// @Summary Request password reset
// @Description Sends a reset email when the account exists. The response is identical either way.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Account email"
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/password-reset [post]
func (c *AuthController) RequestPasswordReset(ctx *gin.Context) {
	var req dto.PasswordResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.authService.RequestPasswordReset(ctx.Request.Context(), req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "If the email is registered, reset instructions have been sent",
	})
}
