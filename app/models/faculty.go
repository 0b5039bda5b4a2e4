package models

import "time"

// FacultyRecord is one faculty member's appraisal record for the cycle.
// Records are archived at cycle close, never deleted.
type FacultyRecord struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email,omitempty"`
	Department            string     `json:"department"`
	Cadre                 Cadre      `json:"cadre"`
	Designation           string     `json:"designation,omitempty"`
	Status                Status     `json:"status"`
	IsAdministrativeRole  bool       `json:"is_administrative_role"`
	DesignationBonusGiven bool       `json:"designation_bonus_given"`
	IsExternalsFinal      bool       `json:"is_externals_final"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	ArchivedAt            *time.Time `json:"archived_at,omitempty"`
}

// StatusTransition is one entry in the append-only transition log for a
// faculty record. The log backs the monotonicity guarantee and forensic
// review of who moved a record and when.
type StatusTransition struct {
	ID         string    `json:"id"`
	FacultyID  string    `json:"faculty_id"`
	FromStatus Status    `json:"from_status"`
	ToStatus   Status    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	CreatedAt  time.Time `json:"created_at"`
}
