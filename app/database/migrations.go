package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"users and roles", createUserTables},
		{"faculty records", createFacultyTables},
		{"portfolio and section marks", createMarkTables},
		{"interaction evaluations", createInteractionTables},
		{"external reviewers and assignments", createExternalTables},
		{"status transition log", createTransitionLogTable},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Failed to run migration for %s: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUserTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			description TEXT
		);

		CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			PRIMARY KEY (user_id, role_id)
		);

		INSERT INTO roles (name) VALUES
			('faculty'), ('hod'), ('dean'), ('director'), ('admin')
		ON CONFLICT (name) DO NOTHING;
	`
	_, err := db.Exec(query)
	return err
}

func createFacultyTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS faculty_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			department VARCHAR(100) NOT NULL,
			cadre VARCHAR(50) NOT NULL,
			designation VARCHAR(100),
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			is_administrative_role BOOLEAN NOT NULL DEFAULT false,
			designation_bonus_given BOOLEAN NOT NULL DEFAULT false,
			is_externals_final BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			archived_at TIMESTAMPTZ
		);

		CREATE INDEX IF NOT EXISTS idx_faculty_records_department
			ON faculty_records(department);
		CREATE INDEX IF NOT EXISTS idx_faculty_records_status
			ON faculty_records(status);
	`
	_, err := db.Exec(query)
	return err
}

func createMarkTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS section_marks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			faculty_id UUID NOT NULL REFERENCES faculty_records(id),
			section CHAR(1) NOT NULL,
			claimed DECIMAL(7,2) NOT NULL DEFAULT 0,
			verified DECIMAL(7,2) NOT NULL DEFAULT 0,
			verified_by VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (faculty_id, section)
		);

		CREATE TABLE IF NOT EXISTS portfolio_data (
			faculty_id UUID PRIMARY KEY REFERENCES faculty_records(id),
			self_awarded_marks DECIMAL(7,2) NOT NULL DEFAULT 0,
			hod_marks DECIMAL(7,2) NOT NULL DEFAULT 0,
			dean_marks DECIMAL(7,2) NOT NULL DEFAULT 0,
			director_marks DECIMAL(7,2) NOT NULL DEFAULT 0,
			portfolio_type VARCHAR(20) NOT NULL DEFAULT 'department',
			institute_level_portfolio TEXT,
			department_level_portfolio TEXT,
			total_marks DECIMAL(7,2) NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := db.Exec(query)
	return err
}

func createInteractionTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS interaction_evaluations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			faculty_id UUID NOT NULL REFERENCES faculty_records(id),
			evaluator_id UUID NOT NULL,
			evaluator_role VARCHAR(20) NOT NULL,
			external_reviewer_id UUID,
			knowledge DECIMAL(5,2) NOT NULL DEFAULT 0,
			skills DECIMAL(5,2) NOT NULL DEFAULT 0,
			attributes DECIMAL(5,2) NOT NULL DEFAULT 0,
			outcomes_initiatives DECIMAL(5,2) NOT NULL DEFAULT 0,
			self_branching DECIMAL(5,2) NOT NULL DEFAULT 0,
			team_performance DECIMAL(5,2) NOT NULL DEFAULT 0,
			comments TEXT,
			total_score DECIMAL(5,2) NOT NULL DEFAULT 0,
			submitted_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (faculty_id, evaluator_id)
		);

		CREATE TABLE IF NOT EXISTS evaluation_drafts (
			evaluator_id UUID NOT NULL,
			faculty_id UUID NOT NULL REFERENCES faculty_records(id),
			payload JSONB NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (evaluator_id, faculty_id)
		);
	`
	_, err := db.Exec(query)
	return err
}

func createExternalTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS external_reviewers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(20),
			organization VARCHAR(255),
			designation VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS faculty_external_assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			faculty_id UUID NOT NULL REFERENCES faculty_records(id),
			external_reviewer_id UUID NOT NULL REFERENCES external_reviewers(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (faculty_id, external_reviewer_id)
		);
	`
	_, err := db.Exec(query)
	return err
}

func createTransitionLogTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS status_transitions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			faculty_id UUID NOT NULL REFERENCES faculty_records(id),
			from_status VARCHAR(50) NOT NULL,
			to_status VARCHAR(50) NOT NULL,
			actor_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_status_transitions_faculty
			ON status_transitions(faculty_id, created_at);
	`
	_, err := db.Exec(query)
	return err
}
