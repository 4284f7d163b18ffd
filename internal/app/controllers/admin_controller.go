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

// AdminController handles moderation and oversight endpoints
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger.With().Str("controller", "admin").Logger(),
	}
}

// ListUsers returns all users, optionally filtered by role
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter (student, mentor, admin)"
// @Success 200 {array} dto.UserResponse
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.adminService.ListUsers(ctx.Request.Context(), principal, ctx.Query("role"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteUser removes a non-admin user and all dependent data
// @Summary Delete user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Admin accounts cannot be deleted"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("user id must be a number"))
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), principal, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User deleted"})
}

// VerifyMentor records a verification decision
// @Summary Verify mentor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mentorId path int true "Mentor ID"
// @Param request body dto.VerifyMentorRequest true "Decision"
// @Success 200 {object} dto.MentorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /admin/mentors/verify/{mentorId} [put]
func (c *AdminController) VerifyMentor(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	mentorID, err := strconv.ParseInt(ctx.Param("mentorId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("mentorId must be a number"))
		return
	}

	var req dto.VerifyMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.adminService.VerifyMentor(ctx.Request.Context(), principal, mentorID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListPendingMentors returns mentors awaiting verification
// @Summary List pending mentors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MentorResponse
// @Router /admin/mentors/pending [get]
func (c *AdminController) ListPendingMentors(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.adminService.ListPendingMentors(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetDashboardStats returns fresh platform aggregates
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Router /admin/dashboard/stats [get]
func (c *AdminController) GetDashboardStats(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.adminService.GetDashboardStats(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSessionReport returns the recent-session activity report
// @Summary Session activity report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionReportResponse
// @Router /admin/reports/sessions [get]
func (c *AdminController) GetSessionReport(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.adminService.GetSessionReport(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile updates the admin's own contact details
// @Summary Update admin profile
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAdminProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /admin/profile [put]
func (c *AdminController) UpdateProfile(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.UpdateAdminProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.adminService.UpdateProfile(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
