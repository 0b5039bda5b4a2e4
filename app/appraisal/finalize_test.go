package appraisal

import (
	"reflect"
	"testing"

	"fdw-appraisal/app/models"
)

func TestFinalMarks(t *testing.T) {
	tests := []struct {
		name     string
		verified float64
		scaled   float64
		want     float64
	}{
		{"typical record", 800, 112.5, 792.5},
		{"zero interaction contribution", 600, 0, 510},
		{"ceiling applied", 1000, 150, 1000},
		{"just under ceiling", 1000, 140, 990},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalMarks(tt.verified, tt.scaled)
			if got != tt.want {
				t.Fatalf("FinalMarks(%v, %v) = %v, want %v", tt.verified, tt.scaled, got, tt.want)
			}
		})
	}
}

// Scenario: a batch of three faculty where one is not yet done comes back
// with two successful ids and one unsuccessful id, never a whole-batch
// failure.
func TestPartitionDirectorBatchPartialFailure(t *testing.T) {
	statuses := map[string]models.Status{
		"fac-1": models.StatusDone,
		"fac-2": models.StatusDone,
		"fac-3": models.StatusInteractionPending,
	}
	statusOf := func(id string) (models.Status, bool) {
		s, ok := statuses[id]
		return s, ok
	}

	result := PartitionDirectorBatch([]string{"fac-1", "fac-2", "fac-3"}, statusOf)

	if !reflect.DeepEqual(result.SuccessfulIDs, []string{"fac-1", "fac-2"}) {
		t.Fatalf("successful_ids = %v, want [fac-1 fac-2]", result.SuccessfulIDs)
	}
	if !reflect.DeepEqual(result.UnsuccessfulIDs, []string{"fac-3"}) {
		t.Fatalf("unsuccessful_ids = %v, want [fac-3]", result.UnsuccessfulIDs)
	}
}

func TestPartitionDirectorBatchUnknownFaculty(t *testing.T) {
	statusOf := func(id string) (models.Status, bool) {
		return "", false
	}
	result := PartitionDirectorBatch([]string{"ghost"}, statusOf)
	if len(result.SuccessfulIDs) != 0 {
		t.Fatalf("unknown faculty reported successful: %v", result.SuccessfulIDs)
	}
	if !reflect.DeepEqual(result.UnsuccessfulIDs, []string{"ghost"}) {
		t.Fatalf("unsuccessful_ids = %v, want [ghost]", result.UnsuccessfulIDs)
	}
}

func TestPartitionDirectorBatchAlreadySentIsIdempotent(t *testing.T) {
	statusOf := func(id string) (models.Status, bool) {
		return models.StatusSentToDirector, true
	}
	// Re-sending an already-sent record tolerates at-least-once delivery
	// of the batch action.
	result := PartitionDirectorBatch([]string{"fac-1"}, statusOf)
	if !reflect.DeepEqual(result.SuccessfulIDs, []string{"fac-1"}) {
		t.Fatalf("successful_ids = %v, want [fac-1]", result.SuccessfulIDs)
	}
}

func TestPartitionDirectorBatchEmpty(t *testing.T) {
	result := PartitionDirectorBatch(nil, func(string) (models.Status, bool) { return "", false })
	if result.SuccessfulIDs == nil || result.UnsuccessfulIDs == nil {
		t.Fatal("batch result lists must be present even when empty")
	}
}
