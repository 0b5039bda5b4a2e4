package database

import (
	"database/sql"
	"fmt"

	"fdw-appraisal/app/models"
)

// GetPortfolioData fetches the faculty's portfolio marks, zero-valued if
// no evaluator has written anything yet.
func GetPortfolioData(db *sql.DB, facultyID string) (*models.PortfolioData, error) {
	p := &models.PortfolioData{FacultyID: facultyID}
	query := `SELECT self_awarded_marks, hod_marks, dean_marks, director_marks,
			  portfolio_type, COALESCE(institute_level_portfolio, ''),
			  COALESCE(department_level_portfolio, ''), total_marks, updated_at
			  FROM portfolio_data WHERE faculty_id = $1`

	err := db.QueryRow(query, facultyID).Scan(
		&p.SelfAwardedMarks, &p.HODMarks, &p.DeanMarks, &p.DirectorMarks,
		&p.PortfolioType, &p.InstituteLevelPortfolio,
		&p.DepartmentLevelPortfolio, &p.TotalMarks, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		p.PortfolioType = models.PortfolioDepartment
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch portfolio: %w", err)
	}
	return p, nil
}

// UpsertPortfolioData persists the portfolio marks, last writer wins.
func UpsertPortfolioData(db *sql.DB, p *models.PortfolioData) error {
	query := `
		INSERT INTO portfolio_data
			(faculty_id, self_awarded_marks, hod_marks, dean_marks, director_marks,
			 portfolio_type, institute_level_portfolio, department_level_portfolio, total_marks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (faculty_id) DO UPDATE SET
			self_awarded_marks = EXCLUDED.self_awarded_marks,
			hod_marks = EXCLUDED.hod_marks,
			dean_marks = EXCLUDED.dean_marks,
			director_marks = EXCLUDED.director_marks,
			portfolio_type = EXCLUDED.portfolio_type,
			institute_level_portfolio = EXCLUDED.institute_level_portfolio,
			department_level_portfolio = EXCLUDED.department_level_portfolio,
			total_marks = EXCLUDED.total_marks,
			updated_at = now()`

	_, err := db.Exec(query, p.FacultyID, p.SelfAwardedMarks, p.HODMarks,
		p.DeanMarks, p.DirectorMarks, p.PortfolioType,
		p.InstituteLevelPortfolio, p.DepartmentLevelPortfolio, p.TotalMarks)
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio: %w", err)
	}
	return nil
}

// GetSectionMarks fetches all section mark rows for a faculty member.
func GetSectionMarks(db *sql.DB, facultyID string) ([]models.SectionMark, error) {
	query := `SELECT id, faculty_id, section, claimed, verified,
			  COALESCE(verified_by, ''), created_at, updated_at
			  FROM section_marks WHERE faculty_id = $1 ORDER BY section`

	rows, err := db.Query(query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch section marks: %w", err)
	}
	defer rows.Close()

	var marks []models.SectionMark
	for rows.Next() {
		var m models.SectionMark
		err := rows.Scan(&m.ID, &m.FacultyID, &m.Section, &m.Claimed,
			&m.Verified, &m.VerifiedBy, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section mark: %w", err)
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// GetSectionMark fetches one (faculty, section) row, zero-valued if absent.
func GetSectionMark(db *sql.DB, facultyID string, section models.Section) (*models.SectionMark, error) {
	m := &models.SectionMark{FacultyID: facultyID, Section: section}
	query := `SELECT id, claimed, verified, COALESCE(verified_by, ''), created_at, updated_at
			  FROM section_marks WHERE faculty_id = $1 AND section = $2`

	err := db.QueryRow(query, facultyID, section).Scan(
		&m.ID, &m.Claimed, &m.Verified, &m.VerifiedBy, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch section mark: %w", err)
	}
	return m, nil
}

// UpsertSectionMark persists one section mark row. Last writer per
// (faculty, section) wins; the unique constraint resolves the conflict.
func UpsertSectionMark(db *sql.DB, m *models.SectionMark) error {
	var verifiedBy interface{}
	if m.VerifiedBy != "" {
		verifiedBy = string(m.VerifiedBy)
	}

	query := `
		INSERT INTO section_marks (faculty_id, section, claimed, verified, verified_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (faculty_id, section) DO UPDATE SET
			claimed = EXCLUDED.claimed,
			verified = EXCLUDED.verified,
			verified_by = EXCLUDED.verified_by,
			updated_at = now()
		RETURNING id`

	err := db.QueryRow(query, m.FacultyID, m.Section, m.Claimed, m.Verified, verifiedBy).
		Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert section mark: %w", err)
	}
	return nil
}
