package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/services"
	"github.com/careerconnect/backend/internal/middleware"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/logger"
)

// CommunicationController handles message and session endpoints
type CommunicationController struct {
	communicationService *services.CommunicationService
	logger               zerolog.Logger
}

// NewCommunicationController creates a new CommunicationController
func NewCommunicationController(communicationService *services.CommunicationService) *CommunicationController {
	return &CommunicationController{
		communicationService: communicationService,
		logger:               logger.With().Str("controller", "communication").Logger(),
	}
}

// SendMessage delivers a message to a mentor
// @Summary Send message
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message data"
// @Success 201 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /communications/messages [post]
func (c *CommunicationController) SendMessage(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.communicationService.SendMessage(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListMessages returns the caller's message history
// @Summary List messages
// @Description Students see messages they sent, mentors see messages they received
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MessageResponse
// @Router /communications/messages [get]
func (c *CommunicationController) ListMessages(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.communicationService.ListMessages(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MarkMessageRead flags a received message as read
// @Summary Mark message read
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Message addressed to another mentor"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /communications/messages/{id}/read [put]
func (c *CommunicationController) MarkMessageRead(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	messageID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("message id must be a number"))
		return
	}

	resp, err := c.communicationService.MarkMessageRead(ctx.Request.Context(), principal, messageID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateSession requests a mentoring session
// @Summary Request session
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSessionRequest true "Session data"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Unparsable dateTime"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /communications/sessions [post]
func (c *CommunicationController) CreateSession(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.communicationService.CreateSession(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListSessions returns the caller's sessions
// @Summary List sessions
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SessionResponse
// @Router /communications/sessions [get]
func (c *CommunicationController) ListSessions(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.communicationService.ListSessions(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSession applies a role-dependent session update
// @Summary Update session
// @Description The assigned mentor moves the session through its lifecycle; the assigned student may only cancel
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body dto.UpdateSessionRequest true "Changes"
// @Success 200 {object} dto.SessionResponse
// @Failure 403 {object} dto.ErrorResponse "Not a participant"
// @Failure 409 {object} dto.ErrorResponse "Status change not allowed"
// @Router /communications/sessions/{id} [put]
func (c *CommunicationController) UpdateSession(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	sessionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("session id must be a number"))
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.communicationService.UpdateSession(ctx.Request.Context(), principal, sessionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
