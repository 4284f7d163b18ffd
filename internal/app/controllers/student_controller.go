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

// StudentController handles student profile, assessment and progress endpoints
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger.With().Str("controller", "student").Logger(),
	}
}

// GetProfile returns the student's own profile
// @Summary Get student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.studentService.GetProfile(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateProfile updates the student's own profile
// @Summary Update student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Router /students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.studentService.UpdateProfile(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAssessment records a completed career assessment
// @Summary Submit career assessment
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssessmentRequest true "Assessment data"
// @Success 201 {object} dto.AssessmentResponse
// @Router /students/assessments [post]
func (c *StudentController) SubmitAssessment(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.studentService.SubmitAssessment(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAssessments returns the student's assessments
// @Summary List career assessments
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AssessmentResponse
// @Router /students/assessments [get]
func (c *StudentController) ListAssessments(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.studentService.ListAssessments(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateTracker starts a new progress tracker
// @Summary Create progress tracker
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTrackerRequest true "Tracker data"
// @Success 201 {object} dto.TrackerResponse
// @Router /students/progress [post]
func (c *StudentController) CreateTracker(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.studentService.CreateTracker(ctx.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListTrackers returns the student's progress trackers
// @Summary List progress trackers
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TrackerResponse
// @Router /students/progress [get]
func (c *StudentController) ListTrackers(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	resp, err := c.studentService.ListTrackers(ctx.Request.Context(), principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateTracker updates one of the student's own trackers
// @Summary Update progress tracker
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trackerId path int true "Tracker ID"
// @Param request body dto.UpdateTrackerRequest true "Tracker fields"
// @Success 200 {object} dto.TrackerResponse
// @Failure 403 {object} dto.ErrorResponse "Tracker owned by another student"
// @Failure 404 {object} dto.ErrorResponse "Tracker not found"
// @Router /students/progress/{trackerId} [put]
func (c *StudentController) UpdateTracker(ctx *gin.Context) {
	principal, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	trackerID, err := strconv.ParseInt(ctx.Param("trackerId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("trackerId must be a number"))
		return
	}

	var req dto.UpdateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.studentService.UpdateTracker(ctx.Request.Context(), principal, trackerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
