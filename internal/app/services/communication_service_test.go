package services

import (
	"context"
	"errors"
	"testing"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

func newCommunicationFixture(t *testing.T) (*stubUserRepo, *stubSessionRepo, *CommunicationService) {
	t.Helper()
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	svc := NewCommunicationService(users, newStubMessageRepo(), sessions, newAuthz(users))
	return users, sessions, svc
}

func TestCommunicationService_SendMessage(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	resp, err := svc.SendMessage(context.Background(), student, &dto.SendMessageRequest{
		MentorID: mentor.ID,
		Content:  "Hello!",
	})
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if resp.Read {
		t.Fatalf("new message must start unread")
	}
	if resp.SenderName != "Alice" || resp.ReceiverName != "Bob" {
		t.Fatalf("unexpected names %q -> %q", resp.SenderName, resp.ReceiverName)
	}
}

func TestCommunicationService_SendMessage_EmptyContent(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	_, err := svc.SendMessage(context.Background(), student, &dto.SendMessageRequest{
		MentorID: mentor.ID,
		Content:  "   ",
	})
	if !errors.Is(err, apperrors.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestCommunicationService_MarkMessageRead(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	mentorUser, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)
	otherUser, _ := seedMentor(t, users, "Mallory", "mallory@example.com", models.VerificationVerified)

	sent, err := svc.SendMessage(context.Background(), student, &dto.SendMessageRequest{
		MentorID: mentor.ID,
		Content:  "Hello!",
	})
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if _, err := svc.MarkMessageRead(context.Background(), otherUser, sent.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-receiver, got %v", err)
	}

	read, err := svc.MarkMessageRead(context.Background(), mentorUser, sent.ID)
	if err != nil {
		t.Fatalf("MarkMessageRead returned error: %v", err)
	}
	if !read.Read {
		t.Fatalf("expected message to be read")
	}

	// Re-reading is a no-op, not an error.
	again, err := svc.MarkMessageRead(context.Background(), mentorUser, sent.ID)
	if err != nil {
		t.Fatalf("second MarkMessageRead returned error: %v", err)
	}
	if !again.Read {
		t.Fatalf("expected message to stay read")
	}
}

func TestCommunicationService_CreateSession(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	resp, err := svc.CreateSession(context.Background(), student, &dto.CreateSessionRequest{
		MentorID: mentor.ID,
		DateTime: "2026-09-10T15:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if resp.Status != string(models.SessionPending) {
		t.Fatalf("new session must start pending, got %q", resp.Status)
	}

	_, err = svc.CreateSession(context.Background(), student, &dto.CreateSessionRequest{
		MentorID: mentor.ID,
		DateTime: "next tuesday",
	})
	if !errors.Is(err, apperrors.ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}

func TestCommunicationService_UpdateSession_MentorLifecycle(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	mentorUser, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	created, err := svc.CreateSession(context.Background(), student, &dto.CreateSessionRequest{
		MentorID: mentor.ID,
		DateTime: "2026-09-10T15:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	// pending -> completed skips scheduling and is rejected.
	if _, err := svc.UpdateSession(context.Background(), mentorUser, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("completed"),
	}); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := svc.UpdateSession(context.Background(), mentorUser, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("someday"),
	}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}

	scheduled, err := svc.UpdateSession(context.Background(), mentorUser, created.ID, &dto.UpdateSessionRequest{
		Status:   strPtr("scheduled"),
		DateTime: strPtr("2026-09-11T10:00:00Z"),
		Notes:    strPtr("bring questions"),
	})
	if err != nil {
		t.Fatalf("scheduling failed: %v", err)
	}
	if scheduled.Status != string(models.SessionScheduled) {
		t.Fatalf("expected scheduled, got %q", scheduled.Status)
	}
	if scheduled.Notes != "bring questions" {
		t.Fatalf("expected notes to be set, got %q", scheduled.Notes)
	}

	completed, err := svc.UpdateSession(context.Background(), mentorUser, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("completed"),
	})
	if err != nil {
		t.Fatalf("completing failed: %v", err)
	}
	if completed.Status != string(models.SessionCompleted) {
		t.Fatalf("expected completed, got %q", completed.Status)
	}

	// Completed is terminal.
	if _, err := svc.UpdateSession(context.Background(), mentorUser, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("cancelled"),
	}); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from completed, got %v", err)
	}
}

func TestCommunicationService_UpdateSession_StudentMayOnlyCancel(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	created, err := svc.CreateSession(context.Background(), student, &dto.CreateSessionRequest{
		MentorID: mentor.ID,
		DateTime: "2026-09-10T15:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	if _, err := svc.UpdateSession(context.Background(), student, created.ID, &dto.UpdateSessionRequest{
		DateTime: strPtr("2026-09-12T15:00:00Z"),
	}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for student reschedule, got %v", err)
	}

	if _, err := svc.UpdateSession(context.Background(), student, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("completed"),
	}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for student completion, got %v", err)
	}

	cancelled, err := svc.UpdateSession(context.Background(), student, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("cancelled"),
	})
	if err != nil {
		t.Fatalf("student cancel failed: %v", err)
	}
	if cancelled.Status != string(models.SessionCancelled) {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}
}

func TestCommunicationService_UpdateSession_OtherParticipants(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)
	otherStudent, _ := seedStudent(t, users, "Carol", "carol@example.com")
	otherMentorUser, _ := seedMentor(t, users, "Mallory", "mallory@example.com", models.VerificationVerified)

	created, err := svc.CreateSession(context.Background(), student, &dto.CreateSessionRequest{
		MentorID: mentor.ID,
		DateTime: "2026-09-10T15:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	if _, err := svc.UpdateSession(context.Background(), otherStudent, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("cancelled"),
	}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for other student, got %v", err)
	}

	if _, err := svc.UpdateSession(context.Background(), otherMentorUser, created.ID, &dto.UpdateSessionRequest{
		Status: strPtr("scheduled"),
	}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for other mentor, got %v", err)
	}
}

func TestCommunicationService_ListSessions(t *testing.T) {
	users, _, svc := newCommunicationFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	mentorUser, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	if _, err := svc.CreateSession(context.Background(), student, &dto.CreateSessionRequest{
		MentorID: mentor.ID,
		DateTime: "2026-09-10T15:00:00Z",
	}); err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}

	studentView, err := svc.ListSessions(context.Background(), student)
	if err != nil {
		t.Fatalf("student ListSessions returned error: %v", err)
	}
	mentorView, err := svc.ListSessions(context.Background(), mentorUser)
	if err != nil {
		t.Fatalf("mentor ListSessions returned error: %v", err)
	}
	if len(studentView) != 1 || len(mentorView) != 1 {
		t.Fatalf("expected both parties to see the session, got %d/%d", len(studentView), len(mentorView))
	}
}
