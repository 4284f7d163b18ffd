package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appauth "github.com/careerconnect/backend/internal/app/auth"
	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/app/repositories"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
	"github.com/careerconnect/backend/internal/pkg/helpers"
	"github.com/careerconnect/backend/internal/pkg/logger"
	"github.com/careerconnect/backend/internal/pkg/metrics"
)

// CommunicationService handles direct messages and mentoring sessions.
type CommunicationService struct {
	userRepo    repositories.IUserRepository
	messageRepo repositories.IMessageRepository
	sessionRepo repositories.ISessionRepository
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewCommunicationService creates a new CommunicationService
func NewCommunicationService(
	userRepo repositories.IUserRepository,
	messageRepo repositories.IMessageRepository,
	sessionRepo repositories.ISessionRepository,
	authz *appauth.AuthorizationService,
) *CommunicationService {
	return &CommunicationService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		sessionRepo: sessionRepo,
		authz:       authz,
		logger:      logger.With().Str("component", "communication_service").Logger(),
	}
}

// SendMessage delivers a message from the principal to a mentor. Repeated
// identical messages are allowed.
func (s *CommunicationService) SendMessage(ctx context.Context, principal *models.User, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrEmptyContent, "message content cannot be empty")
	}

	mentor, err := s.userRepo.GetMentorByID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		MessageID:  uuid.NewString(),
		SenderID:   profile.ID,
		ReceiverID: mentor.ID,
		Content:    req.Content,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	metrics.MessagesSentTotal.Inc()

	message.SenderName = principal.Name
	if mentor.User != nil {
		message.ReceiverName = mentor.User.Name
	}
	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// ListMessages returns the principal's message history: sent messages for
// students, received messages for mentors. Newest first.
func (s *CommunicationService) ListMessages(ctx context.Context, principal *models.User) ([]dto.MessageResponse, error) {
	var (
		messages []*models.Message
		err      error
	)

	switch principal.Role {
	case models.RoleStudent:
		var profile *models.Student
		profile, err = s.authz.RequireStudentProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
		messages, err = s.messageRepo.ListMessagesBySender(ctx, profile.ID)
	case models.RoleMentor:
		var profile *models.Mentor
		profile, err = s.authz.RequireMentorProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
		messages, err = s.messageRepo.ListMessagesByReceiver(ctx, profile.ID)
	default:
		return nil, apperrors.ErrPermissionDenied
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, dto.NewMessageResponse(message))
	}
	return responses, nil
}

// MarkMessageRead flags a received message as read. Only the receiving
// mentor may do this; re-reading is a no-op.
func (s *CommunicationService) MarkMessageRead(ctx context.Context, principal *models.User, messageID int64) (*dto.MessageResponse, error) {
	profile, err := s.authz.RequireMentorProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	message, err := s.messageRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.ReceiverID != profile.ID {
		return nil, apperrors.NewForbiddenError("message is addressed to another mentor")
	}

	if !message.Read {
		if err := s.messageRepo.MarkMessageRead(ctx, messageID); err != nil {
			return nil, err
		}
		message.Read = true
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// CreateSession requests a mentoring session with a mentor. New sessions
// start pending until the mentor confirms.
func (s *CommunicationService) CreateSession(ctx context.Context, principal *models.User, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	profile, err := s.authz.RequireStudentProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	dateTime, err := helpers.ParseDateTime(req.DateTime)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidDateTime, "dateTime must be an RFC 3339 timestamp")
	}

	mentor, err := s.userRepo.GetMentorByID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		StudentID: profile.ID,
		MentorID:  mentor.ID,
		DateTime:  dateTime,
		Status:    models.SessionPending,
		Notes:     req.Notes,
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	session.StudentName = principal.Name
	if mentor.User != nil {
		session.MentorName = mentor.User.Name
	}
	resp := dto.NewSessionResponse(session)
	return &resp, nil
}

// ListSessions returns the principal's sessions, most recent first.
func (s *CommunicationService) ListSessions(ctx context.Context, principal *models.User) ([]dto.SessionResponse, error) {
	var (
		sessions []*models.Session
		err      error
	)

	switch principal.Role {
	case models.RoleStudent:
		var profile *models.Student
		profile, err = s.authz.RequireStudentProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
		sessions, err = s.sessionRepo.ListSessionsByStudent(ctx, profile.ID)
	case models.RoleMentor:
		var profile *models.Mentor
		profile, err = s.authz.RequireMentorProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
		sessions, err = s.sessionRepo.ListSessionsByMentor(ctx, profile.ID)
	default:
		return nil, apperrors.ErrPermissionDenied
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, dto.NewSessionResponse(session))
	}
	return responses, nil
}

// UpdateSession applies a role-asymmetric session update. The assigned
// mentor may move the session through the lifecycle, reschedule it and set
// notes; the assigned student may only cancel. Everyone else is forbidden.
func (s *CommunicationService) UpdateSession(ctx context.Context, principal *models.User, sessionID int64, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch principal.Role {
	case models.RoleMentor:
		profile, err := s.authz.RequireMentorProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
		if session.MentorID != profile.ID {
			return nil, apperrors.NewForbiddenError("session is assigned to another mentor")
		}
		return s.applyMentorUpdate(ctx, session, req)

	case models.RoleStudent:
		profile, err := s.authz.RequireStudentProfile(ctx, principal)
		if err != nil {
			return nil, err
		}
		if session.StudentID != profile.ID {
			return nil, apperrors.NewForbiddenError("session belongs to another student")
		}
		return s.applyStudentUpdate(ctx, session, req)

	default:
		return nil, apperrors.ErrPermissionDenied
	}
}

func (s *CommunicationService) applyMentorUpdate(ctx context.Context, session *models.Session, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	var newStatus *models.SessionStatus
	if req.Status != nil {
		status := models.SessionStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("unknown session status: " + *req.Status)
		}
		if !session.Status.CanTransitionTo(status) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidTransition,
				"cannot move session from "+string(session.Status)+" to "+string(status))
		}
		newStatus = &status
	}

	var newDateTime *time.Time
	if req.DateTime != nil {
		parsed, err := helpers.ParseDateTime(*req.DateTime)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidDateTime, "dateTime must be an RFC 3339 timestamp")
		}
		newDateTime = &parsed
	}

	if err := s.sessionRepo.UpdateSession(ctx, session.ID, newStatus, newDateTime, req.Notes); err != nil {
		return nil, err
	}
	if newStatus != nil {
		metrics.SessionTransitionsTotal.WithLabelValues(string(*newStatus)).Inc()
	}

	updated, err := s.sessionRepo.GetSessionByID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewSessionResponse(updated)
	return &resp, nil
}

func (s *CommunicationService) applyStudentUpdate(ctx context.Context, session *models.Session, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	if req.DateTime != nil || req.Notes != nil {
		return nil, apperrors.NewForbiddenError("students may only cancel a session")
	}
	if req.Status == nil {
		resp := dto.NewSessionResponse(session)
		return &resp, nil
	}

	status := models.SessionStatus(*req.Status)
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("unknown session status: " + *req.Status)
	}
	if status != models.SessionCancelled {
		return nil, apperrors.NewForbiddenError("students may only cancel a session")
	}
	if !session.Status.CanTransitionTo(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTransition,
			"cannot move session from "+string(session.Status)+" to "+string(status))
	}

	if err := s.sessionRepo.UpdateSession(ctx, session.ID, &status, nil, nil); err != nil {
		return nil, err
	}
	metrics.SessionTransitionsTotal.WithLabelValues(string(status)).Inc()

	updated, err := s.sessionRepo.GetSessionByID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewSessionResponse(updated)
	return &resp, nil
}
