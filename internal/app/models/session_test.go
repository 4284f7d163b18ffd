package models

import "testing"

func TestSessionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    SessionStatus
		to      SessionStatus
		allowed bool
	}{
		{SessionPending, SessionScheduled, true},
		{SessionPending, SessionCancelled, true},
		{SessionPending, SessionCompleted, false},
		{SessionScheduled, SessionCompleted, true},
		{SessionScheduled, SessionCancelled, true},
		{SessionScheduled, SessionPending, false},
		{SessionCompleted, SessionCancelled, false},
		{SessionCompleted, SessionScheduled, false},
		{SessionCancelled, SessionScheduled, false},
		{SessionCancelled, SessionPending, false},
		{SessionPending, SessionPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestSessionStatus_IsValid(t *testing.T) {
	for _, status := range []SessionStatus{SessionPending, SessionScheduled, SessionCompleted, SessionCancelled} {
		if !status.IsValid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if SessionStatus("someday").IsValid() {
		t.Errorf("unknown status should be invalid")
	}
}
