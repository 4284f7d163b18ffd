package services

import (
	"context"
	"errors"
	"testing"

	"github.com/careerconnect/backend/internal/app/models"
	"github.com/careerconnect/backend/internal/app/models/dto"
	"github.com/careerconnect/backend/internal/pkg/apperrors"
)

func newStudentFixture(t *testing.T) (*stubUserRepo, *StudentService) {
	t.Helper()
	users := newStubUserRepo()
	svc := NewStudentService(users, newStubAssessmentRepo(), newStubProgressRepo(), newAuthz(users))
	return users, svc
}

func TestStudentService_GetProfile_RoleGate(t *testing.T) {
	users, svc := newStudentFixture(t)
	mentorUser, _ := seedMentor(t, users, "Bob", "bob@example.com", models.VerificationVerified)

	if _, err := svc.GetProfile(context.Background(), mentorUser); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for mentor, got %v", err)
	}
}

func TestStudentService_UpdateProfile(t *testing.T) {
	users, svc := newStudentFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")

	resp, err := svc.UpdateProfile(context.Background(), student, &dto.UpdateStudentProfileRequest{
		Name:            strPtr("Alice Cooper"),
		CareerInterests: strPtr("data engineering"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if resp.Name != "Alice Cooper" {
		t.Fatalf("expected updated name, got %q", resp.Name)
	}
	if resp.StudentProfile == nil || resp.StudentProfile.CareerInterests != "data engineering" {
		t.Fatalf("expected updated career interests, got %+v", resp.StudentProfile)
	}
}

func TestStudentService_UpdateProfile_CreatesMissingProfile(t *testing.T) {
	users, svc := newStudentFixture(t)

	// An account whose profile row never got written.
	user := &models.User{ID: 42, UserID: "orphan", Name: "Orphan", Email: "orphan@example.com", Role: models.RoleStudent}
	users.users[user.ID] = cloneUser(user)

	resp, err := svc.UpdateProfile(context.Background(), user, &dto.UpdateStudentProfileRequest{
		Goals: strPtr("ship something"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if resp.StudentProfile == nil || resp.StudentProfile.Goals != "ship something" {
		t.Fatalf("expected profile to be created with goals, got %+v", resp.StudentProfile)
	}
}

func TestStudentService_UpdateProfile_ContactOnlyCreatesProfile(t *testing.T) {
	users, svc := newStudentFixture(t)

	// Profile row missing and the patch touches no profile fields.
	user := &models.User{ID: 43, UserID: "contact-only", Name: "Nora", Email: "nora@example.com", Role: models.RoleStudent}
	users.users[user.ID] = cloneUser(user)

	resp, err := svc.UpdateProfile(context.Background(), user, &dto.UpdateStudentProfileRequest{
		Name: strPtr("Nora N."),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if resp.Name != "Nora N." {
		t.Fatalf("expected updated name, got %q", resp.Name)
	}
	if resp.StudentProfile == nil {
		t.Fatalf("expected an empty profile to be created")
	}
}

func TestStudentService_Assessments(t *testing.T) {
	users, svc := newStudentFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")

	created, err := svc.SubmitAssessment(context.Background(), student, &dto.AssessmentRequest{
		Questionnaire: `{"q1":"a"}`,
		Results:       `{"score":80}`,
	})
	if err != nil {
		t.Fatalf("SubmitAssessment returned error: %v", err)
	}
	if created.AssessmentID == "" {
		t.Fatalf("expected assessment id to be assigned")
	}

	assessments, err := svc.ListAssessments(context.Background(), student)
	if err != nil {
		t.Fatalf("ListAssessments returned error: %v", err)
	}
	if len(assessments) != 1 {
		t.Fatalf("expected 1 assessment, got %d", len(assessments))
	}
}

func TestStudentService_Trackers(t *testing.T) {
	users, svc := newStudentFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")

	created, err := svc.CreateTracker(context.Background(), student, &dto.CreateTrackerRequest{
		Goals:      `["land internship"]`,
		Milestones: `[]`,
	})
	if err != nil {
		t.Fatalf("CreateTracker returned error: %v", err)
	}

	updated, err := svc.UpdateTracker(context.Background(), student, created.ID, &dto.UpdateTrackerRequest{
		Milestones: strPtr(`["resume done"]`),
	})
	if err != nil {
		t.Fatalf("UpdateTracker returned error: %v", err)
	}
	if updated.Milestones != `["resume done"]` {
		t.Fatalf("expected milestones update, got %q", updated.Milestones)
	}
	if updated.Goals != `["land internship"]` {
		t.Fatalf("absent fields must stay unchanged, got %q", updated.Goals)
	}

	trackers, err := svc.ListTrackers(context.Background(), student)
	if err != nil {
		t.Fatalf("ListTrackers returned error: %v", err)
	}
	if len(trackers) != 1 {
		t.Fatalf("expected 1 tracker, got %d", len(trackers))
	}
}

func TestStudentService_UpdateTracker_PreservesMentorFeedback(t *testing.T) {
	users := newStubUserRepo()
	progress := newStubProgressRepo()
	svc := NewStudentService(users, newStubAssessmentRepo(), progress, newAuthz(users))
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")

	created, err := svc.CreateTracker(context.Background(), student, &dto.CreateTrackerRequest{
		Goals:      `["land internship"]`,
		Milestones: `[]`,
	})
	if err != nil {
		t.Fatalf("CreateTracker returned error: %v", err)
	}
	progress.trackers[created.ID].MentorFeedback = strPtr("keep iterating on the resume")

	updated, err := svc.UpdateTracker(context.Background(), student, created.ID, &dto.UpdateTrackerRequest{
		Goals: strPtr(`["land internship","ship side project"]`),
	})
	if err != nil {
		t.Fatalf("UpdateTracker returned error: %v", err)
	}
	if updated.MentorFeedback != "keep iterating on the resume" {
		t.Fatalf("mentor feedback must survive a student update, got %q", updated.MentorFeedback)
	}
}

func TestStudentService_UpdateTracker_OtherStudent(t *testing.T) {
	users, svc := newStudentFixture(t)
	owner, _ := seedStudent(t, users, "Alice", "alice@example.com")
	intruder, _ := seedStudent(t, users, "Carol", "carol@example.com")

	created, err := svc.CreateTracker(context.Background(), owner, &dto.CreateTrackerRequest{
		Goals:      `[]`,
		Milestones: `[]`,
	})
	if err != nil {
		t.Fatalf("CreateTracker returned error: %v", err)
	}

	_, err = svc.UpdateTracker(context.Background(), intruder, created.ID, &dto.UpdateTrackerRequest{
		Goals: strPtr(`["hijack"]`),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestStudentService_UpdateTracker_NotFound(t *testing.T) {
	users, svc := newStudentFixture(t)
	student, _ := seedStudent(t, users, "Alice", "alice@example.com")

	_, err := svc.UpdateTracker(context.Background(), student, 404, &dto.UpdateTrackerRequest{})
	if !errors.Is(err, apperrors.ErrTrackerNotFound) {
		t.Fatalf("expected ErrTrackerNotFound, got %v", err)
	}
}
