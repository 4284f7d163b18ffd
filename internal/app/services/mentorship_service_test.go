package services

import (
	"context"
	"errors"
	"testing"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

func newMentorshipFixture(t *testing.T) (*stubUserRepo, *stubMentorshipRepo, *MentorshipService) {
	t.Helper()
	users := newStubUserRepo()
	requests := newStubMentorshipRepo()
	svc := NewMentorshipService(users, requests, newAuthz(users))
	return users, requests, svc
}

func TestMentorshipService_RequestMentorship(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	resp, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{
		MentorID: mentor.ID,
		Message:  strPtr("please mentor me"),
	})
	if err != nil {
		t.Fatalf("RequestMentorship returned error: %v", err)
	}
	if resp.Status != string(models.RequestPending) {
		t.Fatalf("expected pending status, got %q", resp.Status)
	}
	if resp.MentorID != mentor.ID {
		t.Fatalf("unexpected mentor id %d", resp.MentorID)
	}
}

func TestMentorshipService_RequestMentorship_UnverifiedMentor(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationPending)

	_, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: mentor.ID})
	if !errors.Is(err, apperrors.ErrMentorNotVerified) {
		t.Fatalf("expected ErrMentorNotVerified, got %v", err)
	}
}

func TestMentorshipService_RequestMentorship_UnknownMentor(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")

	_, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: 999})
	if !errors.Is(err, apperrors.ErrMentorNotFound) {
		t.Fatalf("expected ErrMentorNotFound, got %v", err)
	}
}

func TestMentorshipService_RequestMentorship_DuplicatePending(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	req := &dto.CreateMentorshipRequest{MentorID: mentor.ID}
	if _, err := svc.RequestMentorship(context.Background(), student, req); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if _, err := svc.RequestMentorship(context.Background(), student, req); !errors.Is(err, apperrors.ErrRequestAlreadyPending) {
		t.Fatalf("expected ErrRequestAlreadyPending, got %v", err)
	}
}

func TestMentorshipService_RespondToRequest(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	mentorUser, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	created, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: mentor.ID})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	resp, err := svc.RespondToRequest(context.Background(), mentorUser, created.ID, "approved")
	if err != nil {
		t.Fatalf("RespondToRequest returned error: %v", err)
	}
	if resp.Status != string(models.RequestApproved) {
		t.Fatalf("expected approved status, got %q", resp.Status)
	}

	// A decided pair may submit again.
	if _, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: mentor.ID}); err != nil {
		t.Fatalf("new request after decision failed: %v", err)
	}
}

func TestMentorshipService_RespondToRequest_InvalidDecision(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	mentorUser, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	created, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: mentor.ID})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if _, err := svc.RespondToRequest(context.Background(), mentorUser, created.ID, "maybe"); !errors.Is(err, apperrors.ErrInvalidRequestDecision) {
		t.Fatalf("expected ErrInvalidRequestDecision, got %v", err)
	}
}

func TestMentorshipService_RespondToRequest_OtherMentor(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	_, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)
	otherUser, _ := seedMentor(t, users, "Mallory", "mallory@example.com", models.VerificationVerified)

	created, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: mentor.ID})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if _, err := svc.RespondToRequest(context.Background(), otherUser, created.ID, "approved"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestMentorshipService_ListIncomingRequests(t *testing.T) {
	users, _, svc := newMentorshipFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")
	mentorUser, mentor := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	if _, err := svc.RequestMentorship(context.Background(), student, &dto.CreateMentorshipRequest{MentorID: mentor.ID}); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	requests, err := svc.ListIncomingRequests(context.Background(), mentorUser)
	if err != nil {
		t.Fatalf("ListIncomingRequests returned error: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}

	// Students cannot read a mentor's inbox.
	if _, err := svc.ListIncomingRequests(context.Background(), student); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for student, got %v", err)
	}
}
