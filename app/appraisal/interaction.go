package appraisal

import (
	"math"

	"fdw-appraisal/app/models"
)

// Criterion maxima for the six-point interaction rubric. Criteria are
// clamped at input time, so the rubric total is inherently at most 100
// and never re-clamped at sum time.
const (
	MaxKnowledge           = 20
	MaxSkills              = 20
	MaxAttributes          = 10
	MaxOutcomesInitiatives = 20
	MaxSelfBranching       = 10
	MaxTeamPerformance     = 20
)

// InteractionScaleFactor converts the interaction average into its
// contribution to the final score.
const InteractionScaleFactor = 1.5

func clampCriterion(value, max float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	return math.Min(value, max)
}

// ClampCriteria clamps each rubric criterion of the evaluation to its own
// maximum and recomputes the derived total.
func ClampCriteria(e *models.InteractionEvaluation) {
	e.Knowledge = clampCriterion(e.Knowledge, MaxKnowledge)
	e.Skills = clampCriterion(e.Skills, MaxSkills)
	e.Attributes = clampCriterion(e.Attributes, MaxAttributes)
	e.OutcomesInitiatives = clampCriterion(e.OutcomesInitiatives, MaxOutcomesInitiatives)
	e.SelfBranching = clampCriterion(e.SelfBranching, MaxSelfBranching)
	e.TeamPerformance = clampCriterion(e.TeamPerformance, MaxTeamPerformance)
	e.TotalScore = TotalScore(*e)
}

// TotalScore sums the six pre-clamped criteria.
func TotalScore(e models.InteractionEvaluation) float64 {
	return e.Knowledge + e.Skills + e.Attributes +
		e.OutcomesInitiatives + e.SelfBranching + e.TeamPerformance
}

// InteractionAverage returns the mean rubric total over submitted
// evaluations only. Zero submitted evaluations is a distinct state, not a
// score of 0: callers gating on status must treat ErrNotYetEvaluated as
// "not yet evaluated".
func InteractionAverage(evals []models.InteractionEvaluation) (float64, error) {
	var sum float64
	var n int
	for _, e := range evals {
		if e.SubmittedAt == nil {
			continue
		}
		sum += e.TotalScore
		n++
	}
	if n == 0 {
		return 0, ErrNotYetEvaluated
	}
	return sum / float64(n), nil
}

// ScaledInteraction converts the interaction average into the final-score
// contribution. Not capped here; the 1000-point ceiling is applied only
// in FinalMarks.
func ScaledInteraction(average float64) float64 {
	return average * InteractionScaleFactor
}
