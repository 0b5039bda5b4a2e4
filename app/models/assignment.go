package models

import "time"

// ExternalReviewer is an external interaction-panel member. Reviewers have
// an independent lifecycle and are referenced, never owned, by assignments.
type ExternalReviewer struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Organization string     `json:"organization,omitempty"`
	Designation  string     `json:"designation,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Assignment links one external reviewer to one faculty member for the
// cycle. The freeze flag lives on the faculty record; once frozen the
// faculty's assignments are immutable for the remainder of the cycle.
type Assignment struct {
	ID                 string    `json:"id"`
	FacultyID          string    `json:"faculty_id"`
	ExternalReviewerID string    `json:"external_reviewer_id"`
	CreatedAt          time.Time `json:"created_at"`
}
