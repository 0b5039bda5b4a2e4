package appraisal

import (
	"errors"
	"testing"
	"time"

	"fdw-appraisal/app/models"
)

func submitted(e models.InteractionEvaluation) models.InteractionEvaluation {
	at := time.Date(2026, 4, 12, 10, 0, 0, 0, time.UTC)
	e.SubmittedAt = &at
	return e
}

func TestClampCriteriaBoundsEachCriterion(t *testing.T) {
	eval := models.InteractionEvaluation{
		Knowledge:           35,
		Skills:              -4,
		Attributes:          11,
		OutcomesInitiatives: 20,
		SelfBranching:       10.5,
		TeamPerformance:     100,
	}
	ClampCriteria(&eval)

	if eval.Knowledge != 20 || eval.Skills != 0 || eval.Attributes != 10 ||
		eval.OutcomesInitiatives != 20 || eval.SelfBranching != 10 || eval.TeamPerformance != 20 {
		t.Fatalf("criteria not clamped: %+v", eval)
	}
	if eval.TotalScore != 80 {
		t.Fatalf("total = %v, want 80", eval.TotalScore)
	}
	if eval.TotalScore > 100 {
		t.Fatalf("total %v exceeds rubric maximum", eval.TotalScore)
	}
}

func TestTotalScoreFullMarks(t *testing.T) {
	eval := models.InteractionEvaluation{
		Knowledge:           20,
		Skills:              20,
		Attributes:          10,
		OutcomesInitiatives: 20,
		SelfBranching:       10,
		TeamPerformance:     20,
	}
	ClampCriteria(&eval)
	if eval.TotalScore != 100 {
		t.Fatalf("total = %v, want 100", eval.TotalScore)
	}
}

// Scenario: one evaluator awards a perfect 100, a second awards 50; the
// faculty's interaction average is 75.
func TestInteractionAverageOverSubmitted(t *testing.T) {
	evals := []models.InteractionEvaluation{
		submitted(models.InteractionEvaluation{TotalScore: 100}),
		submitted(models.InteractionEvaluation{TotalScore: 50}),
	}
	avg, err := InteractionAverage(evals)
	if err != nil {
		t.Fatalf("InteractionAverage: %v", err)
	}
	if avg != 75 {
		t.Fatalf("average = %v, want 75", avg)
	}
}

func TestInteractionAverageIgnoresUnsubmittedDrafts(t *testing.T) {
	evals := []models.InteractionEvaluation{
		submitted(models.InteractionEvaluation{TotalScore: 80}),
		{TotalScore: 10}, // draft, no submitted_at
	}
	avg, err := InteractionAverage(evals)
	if err != nil {
		t.Fatalf("InteractionAverage: %v", err)
	}
	if avg != 80 {
		t.Fatalf("average = %v, want 80 with draft excluded", avg)
	}
}

func TestInteractionAverageNoSubmissionsIsDistinctState(t *testing.T) {
	evals := []models.InteractionEvaluation{
		{TotalScore: 90}, // draft only
	}
	_, err := InteractionAverage(evals)
	if !errors.Is(err, ErrNotYetEvaluated) {
		t.Fatalf("expected ErrNotYetEvaluated, got %v", err)
	}

	_, err = InteractionAverage(nil)
	if !errors.Is(err, ErrNotYetEvaluated) {
		t.Fatalf("expected ErrNotYetEvaluated for empty slice, got %v", err)
	}
}

func TestInteractionAverageStaysInRubricRange(t *testing.T) {
	var evals []models.InteractionEvaluation
	for i := 0; i < 5; i++ {
		eval := models.InteractionEvaluation{
			Knowledge:           20,
			Skills:              20,
			Attributes:          10,
			OutcomesInitiatives: 20,
			SelfBranching:       10,
			TeamPerformance:     20,
		}
		ClampCriteria(&eval)
		evals = append(evals, submitted(eval))
	}
	avg, err := InteractionAverage(evals)
	if err != nil {
		t.Fatalf("InteractionAverage: %v", err)
	}
	if avg < 0 || avg > 100 {
		t.Fatalf("average %v outside [0,100]", avg)
	}
}

func TestScaledInteraction(t *testing.T) {
	if got := ScaledInteraction(75); got != 112.5 {
		t.Fatalf("ScaledInteraction(75) = %v, want 112.5", got)
	}
	if got := ScaledInteraction(0); got != 0 {
		t.Fatalf("ScaledInteraction(0) = %v, want 0", got)
	}
}
