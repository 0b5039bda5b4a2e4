package appraisal

import (
	"math"

	"fdw-appraisal/app/models"
)

// SectionWeight is the weight of the verified section total in the final
// score; the remainder comes from the scaled interaction average.
const SectionWeight = 0.85

// FinalMarks combines the verified grand total with the scaled
// interaction contribution under the 1000-point ceiling.
func FinalMarks(verifiedGrandTotal, scaledInteraction float64) float64 {
	return math.Min(GrandTotalCeiling, verifiedGrandTotal*SectionWeight+scaledInteraction)
}

// BatchResult is the partial-failure outcome of a director-bound batch.
// Both lists are always reported; a batch never collapses to a single
// boolean.
type BatchResult struct {
	SuccessfulIDs   []string `json:"successful_ids"`
	UnsuccessfulIDs []string `json:"unsuccessful_ids"`
}

// PartitionDirectorBatch decides, per faculty, whether the done ->
// sent_to_director transition is legal at batch time. Faculty are
// processed independently so one ineligible record never blocks the
// rest. statusOf returns the current status and whether the faculty
// exists; unknown ids are unsuccessful.
func PartitionDirectorBatch(facultyIDs []string, statusOf func(string) (models.Status, bool)) BatchResult {
	result := BatchResult{
		SuccessfulIDs:   []string{},
		UnsuccessfulIDs: []string{},
	}
	for _, id := range facultyIDs {
		status, ok := statusOf(id)
		if !ok {
			result.UnsuccessfulIDs = append(result.UnsuccessfulIDs, id)
			continue
		}
		ctx := TransitionContext{InDirectorBatch: true}
		if _, err := Advance(status, models.StatusSentToDirector, ctx); err != nil {
			result.UnsuccessfulIDs = append(result.UnsuccessfulIDs, id)
			continue
		}
		result.SuccessfulIDs = append(result.SuccessfulIDs, id)
	}
	return result
}
