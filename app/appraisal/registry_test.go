package appraisal

import (
	"errors"
	"reflect"
	"testing"
)

func TestAssignmentSetReplace(t *testing.T) {
	set := NewAssignmentSet("fac-1", []string{"rev-1", "rev-2"}, false)

	if err := set.Replace([]string{"rev-3"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := set.ReviewerIDs(); !reflect.DeepEqual(got, []string{"rev-3"}) {
		t.Fatalf("reviewers = %v, want full replacement [rev-3]", got)
	}
}

func TestAssignmentSetRemove(t *testing.T) {
	set := NewAssignmentSet("fac-1", []string{"rev-1", "rev-2"}, false)

	if err := set.Remove("rev-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := set.ReviewerIDs(); !reflect.DeepEqual(got, []string{"rev-2"}) {
		t.Fatalf("reviewers = %v, want [rev-2]", got)
	}

	// Removing an unassigned reviewer is a no-op, not an error.
	if err := set.Remove("rev-9"); err != nil {
		t.Fatalf("Remove of unassigned reviewer: %v", err)
	}
}

func TestFrozenAssignmentsAreImmutable(t *testing.T) {
	set := NewAssignmentSet("fac-1", []string{"rev-1", "rev-2"}, false)
	set.Freeze()

	if err := set.Replace([]string{"rev-3"}); !errors.Is(err, ErrFrozen) {
		t.Fatalf("Replace after freeze: got %v, want ErrFrozen", err)
	}
	if err := set.Remove("rev-1"); !errors.Is(err, ErrFrozen) {
		t.Fatalf("Remove after freeze: got %v, want ErrFrozen", err)
	}
	if got := set.ReviewerIDs(); !reflect.DeepEqual(got, []string{"rev-1", "rev-2"}) {
		t.Fatalf("reviewers mutated after freeze: %v", got)
	}
}

func TestFreezeIsIdempotent(t *testing.T) {
	set := NewAssignmentSet("fac-1", []string{"rev-1"}, false)

	set.Freeze()
	if !set.Frozen {
		t.Fatal("set not frozen after Freeze")
	}

	// A second freeze only reasserts the same state.
	set.Freeze()
	if !set.Frozen {
		t.Fatal("second Freeze changed the frozen state")
	}
	if got := set.ReviewerIDs(); !reflect.DeepEqual(got, []string{"rev-1"}) {
		t.Fatalf("reviewers changed on repeated freeze: %v", got)
	}
}
