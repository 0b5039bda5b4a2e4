package database

import (
	"database/sql"
	"errors"
	"fmt"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/models"
)

const facultyColumns = `id, name, COALESCE(email, ''), department, cadre,
	COALESCE(designation, ''), status, is_administrative_role,
	designation_bonus_given, is_externals_final, created_at, updated_at, archived_at`

func scanFaculty(row interface{ Scan(...interface{}) error }) (*models.FacultyRecord, error) {
	f := &models.FacultyRecord{}
	var archivedAt sql.NullTime
	err := row.Scan(
		&f.ID, &f.Name, &f.Email, &f.Department, &f.Cadre,
		&f.Designation, &f.Status, &f.IsAdministrativeRole,
		&f.DesignationBonusGiven, &f.IsExternalsFinal,
		&f.CreatedAt, &f.UpdatedAt, &archivedAt,
	)
	if err != nil {
		return nil, err
	}
	if archivedAt.Valid {
		f.ArchivedAt = &archivedAt.Time
	}
	return f, nil
}

// GetFacultyByID fetches one faculty record scoped to a department.
func GetFacultyByID(db *sql.DB, department, facultyID string) (*models.FacultyRecord, error) {
	query := `SELECT ` + facultyColumns + `
			  FROM faculty_records
			  WHERE id = $1 AND department = $2`

	f, err := scanFaculty(db.QueryRow(query, facultyID, department))
	if err == sql.ErrNoRows {
		return nil, appraisal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faculty: %w", err)
	}
	return f, nil
}

// GetFacultyByIDAny fetches one faculty record regardless of department.
func GetFacultyByIDAny(db *sql.DB, facultyID string) (*models.FacultyRecord, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_records WHERE id = $1`

	f, err := scanFaculty(db.QueryRow(query, facultyID))
	if err == sql.ErrNoRows {
		return nil, appraisal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faculty: %w", err)
	}
	return f, nil
}

// GetFacultyByDepartment lists the department's faculty records in name order.
func GetFacultyByDepartment(db *sql.DB, department string) ([]*models.FacultyRecord, error) {
	query := `SELECT ` + facultyColumns + `
			  FROM faculty_records
			  WHERE department = $1 AND archived_at IS NULL
			  ORDER BY name`

	rows, err := db.Query(query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faculty list: %w", err)
	}
	defer rows.Close()

	var records []*models.FacultyRecord
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faculty: %w", err)
		}
		records = append(records, f)
	}
	return records, rows.Err()
}

// CreateFaculty inserts a new faculty record in pending status.
func CreateFaculty(db *sql.DB, f *models.FacultyRecord) error {
	query := `INSERT INTO faculty_records
			  (name, email, department, cadre, designation, is_administrative_role)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, status, created_at, updated_at`

	err := db.QueryRow(query, f.Name, f.Email, f.Department, f.Cadre,
		f.Designation, f.IsAdministrativeRole).
		Scan(&f.ID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create faculty: %w", err)
	}
	return nil
}

// UpdateFaculty updates identity fields; status and flags have their own paths.
func UpdateFaculty(db *sql.DB, f *models.FacultyRecord) error {
	query := `UPDATE faculty_records
			  SET name = $1, email = $2, cadre = $3, designation = $4,
			      is_administrative_role = $5, updated_at = now()
			  WHERE id = $6`

	result, err := db.Exec(query, f.Name, f.Email, f.Cadre, f.Designation,
		f.IsAdministrativeRole, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update faculty: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return appraisal.ErrNotFound
	}
	return nil
}

// ArchiveFaculty stamps archived_at at cycle close. Records are never deleted.
func ArchiveFaculty(db *sql.DB, facultyID string) error {
	result, err := db.Exec(`
		UPDATE faculty_records SET archived_at = now(), updated_at = now()
		WHERE id = $1 AND archived_at IS NULL`, facultyID)
	if err != nil {
		return fmt.Errorf("failed to archive faculty: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return appraisal.ErrNotFound
	}
	return nil
}

// GrantDesignationBonus flips the one-time bonus flag. Granting twice is a
// no-op.
func GrantDesignationBonus(db *sql.DB, facultyID string) error {
	result, err := db.Exec(`
		UPDATE faculty_records SET designation_bonus_given = true, updated_at = now()
		WHERE id = $1`, facultyID)
	if err != nil {
		return fmt.Errorf("failed to grant designation bonus: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return appraisal.ErrNotFound
	}
	return nil
}

// BuildTransitionContext gathers the precondition facts the state machine
// guards read, from what the other components have recorded so far.
func BuildTransitionContext(db *sql.DB, facultyID string) (appraisal.TransitionContext, error) {
	var ctx appraisal.TransitionContext

	query := `
		SELECT
			EXISTS (SELECT 1 FROM section_marks
				WHERE faculty_id = $1 AND claimed > 0),
			EXISTS (SELECT 1 FROM section_marks
				WHERE faculty_id = $1 AND verified_by = 'hod'),
			EXISTS (SELECT 1 FROM section_marks
				WHERE faculty_id = $1 AND verified_by IN ('dean', 'director'))
			OR EXISTS (SELECT 1 FROM portfolio_data
				WHERE faculty_id = $1 AND (dean_marks > 0 OR director_marks > 0)),
			COALESCE((SELECT is_externals_final FROM faculty_records WHERE id = $1), false),
			EXISTS (SELECT 1 FROM interaction_evaluations
				WHERE faculty_id = $1 AND submitted_at IS NOT NULL)
	`

	err := db.QueryRow(query, facultyID).Scan(
		&ctx.SelfMarksSubmitted,
		&ctx.HODVerified,
		&ctx.AuthorityMarksRecorded,
		&ctx.ExternalsFrozen,
		&ctx.InteractionSubmitted,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to build transition context: %w", err)
	}
	return ctx, nil
}

// TransitionFacultyStatus validates the transition against the state
// machine and applies it together with an append-only log entry in one
// transaction. The faculty row is locked so concurrent transitions
// serialize; the guard is re-evaluated against the locked status.
func TransitionFacultyStatus(db *sql.DB, facultyID string, target models.Status, ctx appraisal.TransitionContext, actorID string) (models.Status, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current models.Status
	err = tx.QueryRow(`SELECT status FROM faculty_records WHERE id = $1 FOR UPDATE`, facultyID).
		Scan(&current)
	if err == sql.ErrNoRows {
		return "", appraisal.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to lock faculty: %w", err)
	}

	next, err := appraisal.Advance(current, target, ctx)
	if err != nil {
		return current, err
	}
	if next == current {
		// Idempotent re-request, nothing to write.
		return current, tx.Commit()
	}

	_, err = tx.Exec(`UPDATE faculty_records SET status = $1, updated_at = now() WHERE id = $2`,
		next, facultyID)
	if err != nil {
		return current, fmt.Errorf("failed to update status: %w", err)
	}

	var actor interface{}
	if actorID != "" {
		actor = actorID
	}
	_, err = tx.Exec(`
		INSERT INTO status_transitions (faculty_id, from_status, to_status, actor_id)
		VALUES ($1, $2, $3, $4)`, facultyID, current, next, actor)
	if err != nil {
		return current, fmt.Errorf("failed to log transition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return current, fmt.Errorf("failed to commit transition: %w", err)
	}
	return next, nil
}

// GetTransitionLog returns the faculty's transition history, oldest first.
func GetTransitionLog(db *sql.DB, facultyID string) ([]*models.StatusTransition, error) {
	query := `SELECT id, faculty_id, from_status, to_status, COALESCE(actor_id::text, ''), created_at
			  FROM status_transitions
			  WHERE faculty_id = $1
			  ORDER BY created_at`

	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transition log: %w", err)
	}
	defer rows.Close()

	var log []*models.StatusTransition
	for rows.Next() {
		entry := &models.StatusTransition{}
		err := rows.Scan(&entry.ID, &entry.FacultyID, &entry.FromStatus,
			&entry.ToStatus, &entry.ActorID, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transition: %w", err)
		}
		log = append(log, entry)
	}
	return log, rows.Err()
}

// CountFacultyByStatus returns the department's appraisal progress counts.
func CountFacultyByStatus(db *sql.DB, department string) (map[models.Status]int, error) {
	query := `SELECT status, COUNT(*)
			  FROM faculty_records
			  WHERE department = $1 AND archived_at IS NULL
			  GROUP BY status`

	rows, err := db.Query(query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to count faculty by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Status]int)
	for rows.Next() {
		var status models.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// IsNotFound reports whether err is the domain not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, appraisal.ErrNotFound)
}
