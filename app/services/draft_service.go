package services

import (
	"database/sql"
	"fmt"

	"fdw-appraisal/app/models"
)

// SaveEvaluationDraft stores the evaluator's in-progress interaction form
// server-side, keyed (evaluator, faculty), so the draft survives across
// devices and sessions.
func SaveEvaluationDraft(db *sql.DB, evaluatorID, facultyID, payload string) (*models.EvaluationDraft, error) {
	draft := &models.EvaluationDraft{
		EvaluatorID: evaluatorID,
		FacultyID:   facultyID,
		Payload:     payload,
	}

	query := `
		INSERT INTO evaluation_drafts (evaluator_id, faculty_id, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (evaluator_id, faculty_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = now()
		RETURNING updated_at`

	err := db.QueryRow(query, evaluatorID, facultyID, payload).Scan(&draft.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// GetEvaluationDraft fetches the saved draft, nil if none exists.
func GetEvaluationDraft(db *sql.DB, evaluatorID, facultyID string) (*models.EvaluationDraft, error) {
	draft := &models.EvaluationDraft{
		EvaluatorID: evaluatorID,
		FacultyID:   facultyID,
	}

	query := `SELECT payload, updated_at FROM evaluation_drafts
			  WHERE evaluator_id = $1 AND faculty_id = $2`

	err := db.QueryRow(query, evaluatorID, facultyID).Scan(&draft.Payload, &draft.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft: %w", err)
	}
	return draft, nil
}

// DiscardEvaluationDraft removes the draft once its evaluation is
// submitted. Missing drafts are fine; submission may never have drafted.
func DiscardEvaluationDraft(db *sql.DB, evaluatorID, facultyID string) error {
	_, err := db.Exec(`DELETE FROM evaluation_drafts WHERE evaluator_id = $1 AND faculty_id = $2`,
		evaluatorID, facultyID)
	if err != nil {
		return fmt.Errorf("failed to discard draft: %w", err)
	}
	return nil
}
