package database

import (
	"database/sql"
	"fmt"

	"fdw-appraisal/app/models"
)

const evaluationColumns = `id, faculty_id, evaluator_id, evaluator_role,
	external_reviewer_id, knowledge, skills, attributes, outcomes_initiatives,
	self_branching, team_performance, COALESCE(comments, ''), total_score,
	submitted_at, created_at, updated_at`

func scanEvaluation(row interface{ Scan(...interface{}) error }) (*models.InteractionEvaluation, error) {
	e := &models.InteractionEvaluation{}
	var reviewerID sql.NullString
	var submittedAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.FacultyID, &e.EvaluatorID, &e.EvaluatorRole,
		&reviewerID, &e.Knowledge, &e.Skills, &e.Attributes,
		&e.OutcomesInitiatives, &e.SelfBranching, &e.TeamPerformance,
		&e.Comments, &e.TotalScore, &submittedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reviewerID.Valid {
		e.ExternalReviewerID = &reviewerID.String
	}
	if submittedAt.Valid {
		e.SubmittedAt = &submittedAt.Time
	}
	return e, nil
}

// GetEvaluationsByFaculty fetches every interaction evaluation for a
// faculty member, drafts included.
func GetEvaluationsByFaculty(db *sql.DB, facultyID string) ([]models.InteractionEvaluation, error) {
	query := `SELECT ` + evaluationColumns + `
			  FROM interaction_evaluations
			  WHERE faculty_id = $1
			  ORDER BY created_at`

	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch evaluations: %w", err)
	}
	defer rows.Close()

	var evals []models.InteractionEvaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evals = append(evals, *e)
	}
	return evals, rows.Err()
}

// GetEvaluation fetches one (evaluator, faculty) evaluation, nil if absent.
func GetEvaluation(db *sql.DB, evaluatorID, facultyID string) (*models.InteractionEvaluation, error) {
	query := `SELECT ` + evaluationColumns + `
			  FROM interaction_evaluations
			  WHERE evaluator_id = $1 AND faculty_id = $2`

	e, err := scanEvaluation(db.QueryRow(query, evaluatorID, facultyID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch evaluation: %w", err)
	}
	return e, nil
}

// SubmitEvaluation writes the evaluation and stamps submitted_at. The
// guard on submitted_at keeps a submitted evaluation immutable: re-sends
// of the same submission are absorbed without overwriting the original
// scores or timestamp.
func SubmitEvaluation(db *sql.DB, e *models.InteractionEvaluation) error {
	var reviewerID interface{}
	if e.ExternalReviewerID != nil {
		reviewerID = *e.ExternalReviewerID
	}

	query := `
		INSERT INTO interaction_evaluations
			(faculty_id, evaluator_id, evaluator_role, external_reviewer_id,
			 knowledge, skills, attributes, outcomes_initiatives,
			 self_branching, team_performance, comments, total_score, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (faculty_id, evaluator_id) DO UPDATE SET
			knowledge = EXCLUDED.knowledge,
			skills = EXCLUDED.skills,
			attributes = EXCLUDED.attributes,
			outcomes_initiatives = EXCLUDED.outcomes_initiatives,
			self_branching = EXCLUDED.self_branching,
			team_performance = EXCLUDED.team_performance,
			comments = EXCLUDED.comments,
			total_score = EXCLUDED.total_score,
			submitted_at = now(),
			updated_at = now()
		WHERE interaction_evaluations.submitted_at IS NULL
		RETURNING id, submitted_at`

	err := db.QueryRow(query,
		e.FacultyID, e.EvaluatorID, e.EvaluatorRole, reviewerID,
		e.Knowledge, e.Skills, e.Attributes, e.OutcomesInitiatives,
		e.SelfBranching, e.TeamPerformance, e.Comments, e.TotalScore,
	).Scan(&e.ID, &e.SubmittedAt)

	if err == sql.ErrNoRows {
		// Already submitted; fetch the immutable original.
		existing, ferr := GetEvaluation(db, e.EvaluatorID, e.FacultyID)
		if ferr != nil {
			return ferr
		}
		if existing != nil {
			*e = *existing
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to submit evaluation: %w", err)
	}
	return nil
}
