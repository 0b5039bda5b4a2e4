package appraisal

import "sort"

// AssignmentSet is one faculty member's set of assigned external
// reviewers plus the freeze flag. The persistence layer loads the set
// under a row lock, applies one mutation, and writes it back, so the
// freeze check and the edit are a single atomic step per faculty.
type AssignmentSet struct {
	FacultyID string
	Reviewers map[string]bool
	Frozen    bool
}

// NewAssignmentSet builds an assignment set from the stored reviewer ids.
func NewAssignmentSet(facultyID string, reviewerIDs []string, frozen bool) *AssignmentSet {
	set := &AssignmentSet{
		FacultyID: facultyID,
		Reviewers: make(map[string]bool, len(reviewerIDs)),
		Frozen:    frozen,
	}
	for _, id := range reviewerIDs {
		set.Reviewers[id] = true
	}
	return set
}

// Replace swaps the full assigned set in one call. Fails with ErrFrozen
// and leaves the set unchanged once the faculty's externals are final.
func (s *AssignmentSet) Replace(reviewerIDs []string) error {
	if s.Frozen {
		return ErrFrozen
	}
	next := make(map[string]bool, len(reviewerIDs))
	for _, id := range reviewerIDs {
		next[id] = true
	}
	s.Reviewers = next
	return nil
}

// Remove unassigns a single reviewer. Fails with ErrFrozen once frozen;
// removing a reviewer who was never assigned is a no-op.
func (s *AssignmentSet) Remove(reviewerID string) error {
	if s.Frozen {
		return ErrFrozen
	}
	delete(s.Reviewers, reviewerID)
	return nil
}

// Freeze makes the assignment set immutable for the rest of the cycle.
// One-way; freezing an already-frozen set only reasserts the same state.
func (s *AssignmentSet) Freeze() {
	s.Frozen = true
}

// ReviewerIDs returns the assigned reviewer ids in stable order.
func (s *AssignmentSet) ReviewerIDs() []string {
	ids := make([]string, 0, len(s.Reviewers))
	for id := range s.Reviewers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
