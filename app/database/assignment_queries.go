package database

import (
	"database/sql"
	"fmt"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/models"
)

// loadAssignmentSet reads the faculty's assignment set inside the given
// transaction, locking the faculty row so the freeze check and the edit
// are one atomic step.
func loadAssignmentSet(tx *sql.Tx, facultyID string) (*appraisal.AssignmentSet, error) {
	var frozen bool
	err := tx.QueryRow(`SELECT is_externals_final FROM faculty_records WHERE id = $1 FOR UPDATE`,
		facultyID).Scan(&frozen)
	if err == sql.ErrNoRows {
		return nil, appraisal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock faculty: %w", err)
	}

	rows, err := tx.Query(`SELECT external_reviewer_id FROM faculty_external_assignments
		WHERE faculty_id = $1`, facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer rows.Close()

	var reviewerIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		reviewerIDs = append(reviewerIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return appraisal.NewAssignmentSet(facultyID, reviewerIDs, frozen), nil
}

func saveAssignmentSet(tx *sql.Tx, set *appraisal.AssignmentSet) error {
	if _, err := tx.Exec(`DELETE FROM faculty_external_assignments WHERE faculty_id = $1`,
		set.FacultyID); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}
	for _, reviewerID := range set.ReviewerIDs() {
		_, err := tx.Exec(`
			INSERT INTO faculty_external_assignments (faculty_id, external_reviewer_id)
			VALUES ($1, $2)`, set.FacultyID, reviewerID)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}
	return nil
}

// ReplaceAssignments atomically swaps the faculty's full reviewer set.
// Returns ErrFrozen once the faculty's externals are final.
func ReplaceAssignments(db *sql.DB, facultyID string, reviewerIDs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	set, err := loadAssignmentSet(tx, facultyID)
	if err != nil {
		return err
	}
	if err := set.Replace(reviewerIDs); err != nil {
		return err
	}
	if err := saveAssignmentSet(tx, set); err != nil {
		return err
	}
	return tx.Commit()
}

// UnassignReviewer removes one reviewer from the faculty's set.
func UnassignReviewer(db *sql.DB, facultyID, reviewerID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	set, err := loadAssignmentSet(tx, facultyID)
	if err != nil {
		return err
	}
	if err := set.Remove(reviewerID); err != nil {
		return err
	}
	if err := saveAssignmentSet(tx, set); err != nil {
		return err
	}
	return tx.Commit()
}

// FreezeExternals makes the faculty's assignment set final. Implemented as
// a compare-and-set on the faculty row; freezing twice is a no-op and the
// returned flag is always the frozen state.
func FreezeExternals(db *sql.DB, facultyID string) (bool, error) {
	result, err := db.Exec(`
		UPDATE faculty_records SET is_externals_final = true, updated_at = now()
		WHERE id = $1 AND is_externals_final = false`, facultyID)
	if err != nil {
		return false, fmt.Errorf("failed to freeze externals: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		// Either already frozen (fine) or the faculty does not exist.
		var frozen bool
		err := db.QueryRow(`SELECT is_externals_final FROM faculty_records WHERE id = $1`,
			facultyID).Scan(&frozen)
		if err == sql.ErrNoRows {
			return false, appraisal.ErrNotFound
		}
		if err != nil {
			return false, fmt.Errorf("failed to check freeze state: %w", err)
		}
		return frozen, nil
	}
	return true, nil
}

// GetDepartmentAssignments maps each faculty id in the department to its
// assigned reviewer ids.
func GetDepartmentAssignments(db *sql.DB, department string) (map[string][]string, error) {
	query := `
		SELECT f.id, a.external_reviewer_id
		FROM faculty_records f
		LEFT JOIN faculty_external_assignments a ON a.faculty_id = f.id
		WHERE f.department = $1 AND f.archived_at IS NULL
		ORDER BY f.id`

	rows, err := db.Query(query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch department assignments: %w", err)
	}
	defer rows.Close()

	assignments := make(map[string][]string)
	for rows.Next() {
		var facultyID string
		var reviewerID sql.NullString
		if err := rows.Scan(&facultyID, &reviewerID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		if _, ok := assignments[facultyID]; !ok {
			assignments[facultyID] = []string{}
		}
		if reviewerID.Valid {
			assignments[facultyID] = append(assignments[facultyID], reviewerID.String)
		}
	}
	return assignments, rows.Err()
}

// External reviewer lifecycle: created and removed by director-level
// actors, soft-deleted so past assignments keep their reference.

func GetExternalReviewers(db *sql.DB) ([]*models.ExternalReviewer, error) {
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''),
			  COALESCE(organization, ''), COALESCE(designation, ''),
			  created_at, updated_at
			  FROM external_reviewers WHERE deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch external reviewers: %w", err)
	}
	defer rows.Close()

	var reviewers []*models.ExternalReviewer
	for rows.Next() {
		r := &models.ExternalReviewer{}
		err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Phone,
			&r.Organization, &r.Designation, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan external reviewer: %w", err)
		}
		reviewers = append(reviewers, r)
	}
	return reviewers, rows.Err()
}

func CreateExternalReviewer(db *sql.DB, r *models.ExternalReviewer) error {
	query := `INSERT INTO external_reviewers (name, email, phone, organization, designation)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, r.Name, r.Email, r.Phone, r.Organization, r.Designation).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create external reviewer: %w", err)
	}
	return nil
}

func DeleteExternalReviewer(db *sql.DB, reviewerID string) error {
	result, err := db.Exec(`
		UPDATE external_reviewers SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`, reviewerID)
	if err != nil {
		return fmt.Errorf("failed to delete external reviewer: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return appraisal.ErrNotFound
	}
	return nil
}
