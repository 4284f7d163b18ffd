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

// MentorController handles mentor profile, discovery, resource and
// mentorship-request endpoints
type MentorController struct {
	mentorService     *services.MentorService
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService *services.MentorService, mentorshipService *services.MentorshipService) *MentorController {
	return &MentorController{
		mentorService:     mentorService,
		mentorshipService: mentorshipService,
		logger:            logger.With().Str("controller", "mentor").Logger(),
	}
}

// GetProfile returns the mentor's own profile
// @Summary Get mentor profile
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Router /mentors/profile [get]
func (c *MentorController) GetProfile(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.mentorService.GetProfile(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile updates the mentor's own profile
// @Summary Update mentor profile
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMentorProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Router /mentors/profile [put]
func (c *MentorController) UpdateProfile(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.UpdateMentorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.mentorService.UpdateProfile(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Search lists verified mentors matching the filters
// @Summary Search mentors
// @Description Lists verified mentors, optionally filtered by industry and expertise substrings
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Param industry query string false "Industry filter"
// @Param expertise query string false "Expertise filter"
// @Success 200 {array} dto.MentorResponse
// @Router /mentors/search [get]
func (c *MentorController) Search(ctx *gin.Context) {
	resp, err := c.mentorService.Search(ctx.Request.Context(),
		ctx.Query("industry"), ctx.Query("expertise"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMentor returns a mentor by ID
// @Summary Get mentor
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.MentorResponse
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /mentors/{id} [get]
func (c *MentorController) GetMentor(ctx *gin.Context) {
	mentorID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("mentor id must be a number"))
		return
	}

	resp, err := c.mentorService.GetMentor(ctx.Request.Context(), mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateResource records a shared resource
// @Summary Share a resource
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResourceRequest true "Resource data"
// @Success 201 {object} dto.ResourceResponse
// @Router /mentors/resources [post]
func (c *MentorController) CreateResource(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.mentorService.CreateResource(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListResources returns the mentor's shared resources
// @Summary List shared resources
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResourceResponse
// @Router /mentors/resources [get]
func (c *MentorController) ListResources(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.mentorService.ListResources(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RequestMentorship submits a mentorship request to a verified mentor
// @Summary Request mentorship
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Request data"
// @Success 201 {object} dto.MentorshipRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Mentor not verified"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Pending request already exists"
// @Router /mentors/request [post]
func (c *MentorController) RequestMentorship(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.mentorshipService.RequestMentorship(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListRequests returns the mentor's incoming mentorship requests
// @Summary List incoming mentorship requests
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MentorshipRequestResponse
// @Router /mentors/requests [get]
func (c *MentorController) ListRequests(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.mentorshipService.ListIncomingRequests(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RespondToRequest records the mentor's decision on a request
// @Summary Decide a mentorship request
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.MentorshipDecisionRequest true "Decision"
// @Success 200 {object} dto.MentorshipRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 403 {object} dto.ErrorResponse "Request addressed to another mentor"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /mentors/requests/{id} [put]
func (c *MentorController) RespondToRequest(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("request id must be a number"))
		return
	}

	var req dto.MentorshipDecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.mentorshipService.RespondToRequest(ctx.Request.Context(), principal, requestID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
