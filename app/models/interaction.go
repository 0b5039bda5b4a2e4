package models

import "time"

// InteractionEvaluation is one evaluator's six-criterion scoring of one
// faculty member. Mutable until SubmittedAt is set, immutable after.
type InteractionEvaluation struct {
	ID                  string        `json:"id"`
	FacultyID           string        `json:"faculty_id"`
	EvaluatorID         string        `json:"evaluator_id"`
	EvaluatorRole       EvaluatorRole `json:"evaluator_role"`
	ExternalReviewerID  *string       `json:"external_reviewer_id,omitempty"`
	Knowledge           float64       `json:"knowledge"`
	Skills              float64       `json:"skills"`
	Attributes          float64       `json:"attributes"`
	OutcomesInitiatives float64       `json:"outcomesInitiatives"`
	SelfBranching       float64       `json:"selfBranching"`
	TeamPerformance     float64       `json:"teamPerformance"`
	Comments            string        `json:"comments,omitempty"`
	TotalScore          float64       `json:"total_marks"`
	SubmittedAt         *time.Time    `json:"submitted_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// EvaluationDraft is the server-side saved draft of an interaction form,
// keyed by (evaluator, faculty) so drafts survive across devices.
type EvaluationDraft struct {
	EvaluatorID string    `json:"evaluator_id"`
	FacultyID   string    `json:"faculty_id"`
	Payload     string    `json:"payload"`
	UpdatedAt   time.Time `json:"updated_at"`
}
