package models

import "time"

// SectionMark holds the claimed and verified marks for one appraisal
// section of one faculty member. Values are mutated only through the
// score aggregator so the clamping rules always apply.
type SectionMark struct {
	ID         string        `json:"id"`
	FacultyID  string        `json:"faculty_id"`
	Section    Section       `json:"section"`
	Claimed    float64       `json:"claimed"`
	Verified   float64       `json:"verified"`
	VerifiedBy EvaluatorRole `json:"verified_by,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PortfolioData carries the portfolio-duty marks awarded by the faculty
// member and the evaluating authorities. One-to-one with FacultyRecord
// for the appraisal cycle; immutable once the owning status is done.
type PortfolioData struct {
	FacultyID                string        `json:"faculty_id"`
	SelfAwardedMarks         float64       `json:"selfAwardedMarks"`
	HODMarks                 float64       `json:"hodMarks"`
	DeanMarks                float64       `json:"deanMarks"`
	DirectorMarks            float64       `json:"directorMarks"`
	PortfolioType            PortfolioType `json:"portfolioType"`
	InstituteLevelPortfolio  string        `json:"instituteLevelPortfolio,omitempty"`
	DepartmentLevelPortfolio string        `json:"departmentLevelPortfolio,omitempty"`
	TotalMarks               float64       `json:"total_marks"`
	UpdatedAt                time.Time     `json:"updated_at"`
}
