package services

import (
	"context"
	"errors"
	"testing"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

// platformFixture wires every service over one shared set of stub
// repositories, the way bootstrap wires them over the database pool. The
// linked stubs reproduce the schema's delete cascades and the session
// join, so cross-service flows behave like they do against the database.
type platformFixture struct {
	users       *stubUserRepo
	mentorships *stubMentorshipRepo
	sessions    *stubSessionRepo
	messages    *stubMessageRepo
	assessments *stubAssessmentRepo
	trackers    *stubProgressRepo
	resources   *stubResourceRepo

	auth          *AuthService
	student       *StudentService
	mentor        *MentorService
	mentorship    *MentorshipService
	communication *CommunicationService
	admin         *AdminService
}

func newPlatformFixture(t *testing.T) *platformFixture {
	t.Helper()
	f := &platformFixture{
		users:       newStubUserRepo(),
		mentorships: newStubMentorshipRepo(),
		sessions:    newStubSessionRepo(),
		messages:    newStubMessageRepo(),
		assessments: newStubAssessmentRepo(),
		trackers:    newStubProgressRepo(),
		resources:   newStubResourceRepo(),
	}
	f.users.assessments = f.assessments
	f.users.trackers = f.trackers
	f.users.mentorshipReqs = f.mentorships
	f.users.messages = f.messages
	f.users.sessions = f.sessions
	f.users.resources = f.resources
	f.sessions.users = f.users

	authz := newAuthz(f.users)
	f.auth = NewAuthService(f.users, newTestJWTService(), &stubMailer{})
	f.student = NewStudentService(f.users, f.assessments, f.trackers, authz)
	f.mentor = NewMentorService(f.users, f.resources, authz)
	f.mentorship = NewMentorshipService(f.users, f.mentorships, authz)
	f.communication = NewCommunicationService(f.users, f.messages, f.sessions, authz)
	f.admin = NewAdminService(f.users, &stubStatsRepo{}, f.sessions, authz)
	return f
}

func (f *platformFixture) register(t *testing.T, name, email string, role models.RoleType) *models.User {
	t.Helper()
	if _, err := f.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     role,
	}); err != nil {
		t.Fatalf("registering %s failed: %v", email, err)
	}
	user, err := f.users.GetUserByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("looking up %s failed: %v", email, err)
	}
	return user
}

func (f *platformFixture) verifiedMentorProfile(t *testing.T, admin, mentorUser *models.User) *models.Mentor {
	t.Helper()
	ctx := context.Background()
	profile, err := f.users.GetMentorByUserID(ctx, mentorUser.ID)
	if err != nil {
		t.Fatalf("mentor profile lookup failed: %v", err)
	}
	if _, err := f.admin.VerifyMentor(ctx, admin, profile.ID, string(models.VerificationVerified)); err != nil {
		t.Fatalf("VerifyMentor returned error: %v", err)
	}
	return profile
}

func TestPlatform_MentorshipLifecycle(t *testing.T) {
	f := newPlatformFixture(t)
	ctx := context.Background()

	alice := f.register(t, "Alice", "alice@example.com", models.RoleStudent)
	bob := f.register(t, "Bob", "bob@example.com", models.RoleMentor)
	admin := seedUser(t, f.users, "Root", "root@example.com", models.RoleAdmin)
	mentorProfile := f.verifiedMentorProfile(t, admin, bob)

	request, err := f.mentorship.RequestMentorship(ctx, alice, &dto.CreateMentorshipRequest{
		MentorID: mentorProfile.ID,
		Message:  strPtr("Looking for guidance on backend roles"),
	})
	if err != nil {
		t.Fatalf("RequestMentorship returned error: %v", err)
	}

	decided, err := f.mentorship.RespondToRequest(ctx, bob, request.ID, string(models.RequestApproved))
	if err != nil {
		t.Fatalf("RespondToRequest returned error: %v", err)
	}
	if decided.Status != string(models.RequestApproved) {
		t.Fatalf("expected approved request, got %q", decided.Status)
	}

	session, err := f.communication.CreateSession(ctx, alice, &dto.CreateSessionRequest{
		MentorID: mentorProfile.ID,
		DateTime: "2026-09-10T15:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if session.Status != string(models.SessionPending) {
		t.Fatalf("new sessions must start pending, got %q", session.Status)
	}

	if _, err := f.communication.UpdateSession(ctx, bob, session.ID, &dto.UpdateSessionRequest{
		Status: strPtr(string(models.SessionScheduled)),
	}); err != nil {
		t.Fatalf("scheduling session returned error: %v", err)
	}
	completed, err := f.communication.UpdateSession(ctx, bob, session.ID, &dto.UpdateSessionRequest{
		Status: strPtr(string(models.SessionCompleted)),
	})
	if err != nil {
		t.Fatalf("completing session returned error: %v", err)
	}
	if completed.Status != string(models.SessionCompleted) {
		t.Fatalf("expected completed session, got %q", completed.Status)
	}

	report, err := f.admin.GetSessionReport(ctx, admin)
	if err != nil {
		t.Fatalf("GetSessionReport returned error: %v", err)
	}
	if report.Count != 1 {
		t.Fatalf("expected 1 session in the report, got %d", report.Count)
	}
	row := report.Sessions[0]
	if row.Status != string(models.SessionCompleted) {
		t.Fatalf("expected completed row, got %q", row.Status)
	}
	if row.StudentName != "Alice" || row.MentorName != "Bob" {
		t.Fatalf("expected Alice/Bob participants, got %q/%q", row.StudentName, row.MentorName)
	}
}

func TestAdminService_DeleteUser_CascadesStudentRecords(t *testing.T) {
	f := newPlatformFixture(t)
	ctx := context.Background()

	alice := f.register(t, "Alice", "alice@example.com", models.RoleStudent)
	bob := f.register(t, "Bob", "bob@example.com", models.RoleMentor)
	admin := seedUser(t, f.users, "Root", "root@example.com", models.RoleAdmin)
	mentorProfile := f.verifiedMentorProfile(t, admin, bob)

	if _, err := f.student.SubmitAssessment(ctx, alice, &dto.AssessmentRequest{
		Questionnaire: `{"q1":"a"}`,
		Results:       `{"fit":"backend"}`,
	}); err != nil {
		t.Fatalf("SubmitAssessment returned error: %v", err)
	}
	if _, err := f.student.CreateTracker(ctx, alice, &dto.CreateTrackerRequest{
		Goals:      `["land internship"]`,
		Milestones: `[]`,
	}); err != nil {
		t.Fatalf("CreateTracker returned error: %v", err)
	}
	if _, err := f.mentorship.RequestMentorship(ctx, alice, &dto.CreateMentorshipRequest{
		MentorID: mentorProfile.ID,
	}); err != nil {
		t.Fatalf("RequestMentorship returned error: %v", err)
	}
	if _, err := f.communication.SendMessage(ctx, alice, &dto.SendMessageRequest{
		MentorID: mentorProfile.ID,
		Content:  "Hi Bob",
	}); err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if _, err := f.communication.CreateSession(ctx, alice, &dto.CreateSessionRequest{
		MentorID: mentorProfile.ID,
		DateTime: "2026-09-10T15:00:00Z",
	}); err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	if err := f.admin.DeleteUser(ctx, admin, alice.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}

	if _, err := f.users.GetUserByID(ctx, alice.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for deleted user, got %v", err)
	}
	if len(f.assessments.assessments) != 0 {
		t.Fatalf("expected assessments to be removed, %d left", len(f.assessments.assessments))
	}
	if len(f.trackers.trackers) != 0 {
		t.Fatalf("expected trackers to be removed, %d left", len(f.trackers.trackers))
	}
	if len(f.mentorships.requests) != 0 {
		t.Fatalf("expected mentorship requests to be removed, %d left", len(f.mentorships.requests))
	}
	if len(f.messages.messages) != 0 {
		t.Fatalf("expected messages to be removed, %d left", len(f.messages.messages))
	}
	if len(f.sessions.sessions) != 0 {
		t.Fatalf("expected sessions to be removed, %d left", len(f.sessions.sessions))
	}

	if _, err := f.users.GetUserByID(ctx, bob.ID); err != nil {
		t.Fatalf("mentor account must survive the student's deletion: %v", err)
	}
	if _, err := f.users.GetMentorByUserID(ctx, bob.ID); err != nil {
		t.Fatalf("mentor profile must survive the student's deletion: %v", err)
	}
}
