package appraisal

import (
	"errors"
	"testing"

	"fdw-appraisal/app/models"
)

func TestAdvanceHappyPath(t *testing.T) {
	tests := []struct {
		name    string
		current models.Status
		target  models.Status
		ctx     TransitionContext
	}{
		{
			"self submission opens verification",
			models.StatusPending, models.StatusVerificationPending,
			TransitionContext{SelfMarksSubmitted: true},
		},
		{
			"hod verification opens authority stage",
			models.StatusVerificationPending, models.StatusAuthorityVerification,
			TransitionContext{HODVerified: true},
		},
		{
			"scheduling opens dean portfolio stage",
			models.StatusAuthorityVerification, models.StatusPortfolioMarkDeanPending,
			TransitionContext{PortfolioRequested: true},
		},
		{
			"scheduling opens director portfolio stage",
			models.StatusAuthorityVerification, models.StatusPortfolioMarkDirPending,
			TransitionContext{PortfolioRequested: true},
		},
		{
			"dean marks close portfolio stage",
			models.StatusPortfolioMarkDeanPending, models.StatusDone,
			TransitionContext{AuthorityMarksRecorded: true},
		},
		{
			"frozen externals open interaction stage",
			models.StatusAuthorityVerification, models.StatusInteractionPending,
			TransitionContext{ExternalsFrozen: true},
		},
		{
			"submitted evaluation closes interaction stage",
			models.StatusInteractionPending, models.StatusDone,
			TransitionContext{InteractionSubmitted: true},
		},
		{
			"director batch sends done record",
			models.StatusDone, models.StatusSentToDirector,
			TransitionContext{InDirectorBatch: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Advance(tt.current, tt.target, tt.ctx)
			if err != nil {
				t.Fatalf("Advance(%s, %s): %v", tt.current, tt.target, err)
			}
			if got != tt.target {
				t.Fatalf("Advance = %s, want %s", got, tt.target)
			}
		})
	}
}

func TestAdvanceRejectsUnmetPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		current models.Status
		target  models.Status
	}{
		{"verification without self marks", models.StatusPending, models.StatusVerificationPending},
		{"authority stage without hod verification", models.StatusVerificationPending, models.StatusAuthorityVerification},
		{"done without dean marks", models.StatusPortfolioMarkDeanPending, models.StatusDone},
		{"done without submitted interaction", models.StatusInteractionPending, models.StatusDone},
		{"send to director outside batch", models.StatusDone, models.StatusSentToDirector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Advance(tt.current, tt.target, TransitionContext{})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if got != tt.current {
				t.Fatalf("status moved to %s on failed transition", got)
			}
		})
	}
}

func TestAdvanceRejectsSkippedStages(t *testing.T) {
	ctx := TransitionContext{
		SelfMarksSubmitted:     true,
		HODVerified:            true,
		PortfolioRequested:     true,
		AuthorityMarksRecorded: true,
		InteractionSubmitted:   true,
		InDirectorBatch:        true,
	}

	// Even with every precondition satisfied, edges absent from the
	// table stay illegal.
	if _, err := Advance(models.StatusPending, models.StatusDone, ctx); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending -> done: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := Advance(models.StatusVerificationPending, models.StatusSentToDirector, ctx); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("verification_pending -> sent_to_director: expected ErrInvalidTransition, got %v", err)
	}
}

func TestStatusNeverRevertsFromDone(t *testing.T) {
	ctx := TransitionContext{
		SelfMarksSubmitted: true,
		HODVerified:        true,
		PortfolioRequested: true,
	}

	earlier := []models.Status{
		models.StatusPending,
		models.StatusVerificationPending,
		models.StatusAuthorityVerification,
		models.StatusPortfolioMarkDeanPending,
		models.StatusInteractionPending,
	}
	for _, target := range earlier {
		got, err := Advance(models.StatusDone, target, ctx)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("done -> %s: expected ErrInvalidTransition, got %v", target, err)
		}
		if got != models.StatusDone {
			t.Fatalf("done reverted to %s", got)
		}
	}
}

func TestAdvanceIdempotentOnRepeat(t *testing.T) {
	// Re-requesting the state already reached must be a no-op on every
	// status, including terminal ones, with no error on the second call.
	for _, status := range models.AllStatuses {
		got, err := Advance(status, status, TransitionContext{})
		if err != nil {
			t.Fatalf("repeat %s: %v", status, err)
		}
		if got != status {
			t.Fatalf("repeat %s moved to %s", status, got)
		}
	}
}

func TestIsForward(t *testing.T) {
	if !IsForward(models.StatusPending, models.StatusDone) {
		t.Fatal("pending -> done should be forward")
	}
	if !IsForward(models.StatusDone, models.StatusDone) {
		t.Fatal("same status should count as forward")
	}
	if IsForward(models.StatusDone, models.StatusPending) {
		t.Fatal("done -> pending must not be forward")
	}
	if IsForward(models.Status("bogus"), models.StatusDone) {
		t.Fatal("unknown status must not be forward")
	}
}
