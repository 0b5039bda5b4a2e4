package models

// Cadre defines the faculty rank, which determines section score ceilings.
type Cadre string

const (
	Professor          Cadre = "professor"
	AssociateProfessor Cadre = "associate_professor"
	AssistantProfessor Cadre = "assistant_professor"
)

// Section defines the five appraisal categories.
type Section string

const (
	SectionAcademic      Section = "A" // Academic involvement
	SectionResearch      Section = "B" // Research and publications
	SectionSelfDev       Section = "C" // Self-development
	SectionPortfolio     Section = "D" // Portfolio duties
	SectionExtraordinary Section = "E" // Extra-ordinary contribution
)

// AllSections lists the appraisal sections in report order.
var AllSections = []Section{
	SectionAcademic,
	SectionResearch,
	SectionSelfDev,
	SectionPortfolio,
	SectionExtraordinary,
}

// EvaluatorRole identifies who awarded a mark.
type EvaluatorRole string

const (
	EvaluatorSelf     EvaluatorRole = "self"
	EvaluatorHOD      EvaluatorRole = "hod"
	EvaluatorDean     EvaluatorRole = "dean"
	EvaluatorDirector EvaluatorRole = "director"
	EvaluatorExternal EvaluatorRole = "external"
)

// PortfolioType defines which portfolio track a faculty member holds.
type PortfolioType string

const (
	PortfolioInstitute  PortfolioType = "institute"
	PortfolioDepartment PortfolioType = "department"
	PortfolioBoth       PortfolioType = "both"
)

// Status defines the appraisal lifecycle state of a faculty record.
// The set is closed: handlers parse incoming strings through ParseStatus
// rather than comparing free-form text.
type Status string

const (
	StatusPending                  Status = "pending"
	StatusVerificationPending      Status = "verification_pending"
	StatusAuthorityVerification    Status = "authority_verification_pending"
	StatusPortfolioMarkDeanPending Status = "portfolio_mark_dean_pending"
	StatusPortfolioMarkDirPending  Status = "portfolio_mark_director_pending"
	StatusInteractionPending       Status = "interaction_pending"
	StatusDone                     Status = "done"
	StatusSentToDirector           Status = "sent_to_director"
)

// AllStatuses lists every lifecycle state in forward order.
var AllStatuses = []Status{
	StatusPending,
	StatusVerificationPending,
	StatusAuthorityVerification,
	StatusPortfolioMarkDeanPending,
	StatusPortfolioMarkDirPending,
	StatusInteractionPending,
	StatusDone,
	StatusSentToDirector,
}

// ParseStatus maps an incoming string to a Status, false if unknown.
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// ParseCadre maps an incoming string to a Cadre, false if unknown.
func ParseCadre(s string) (Cadre, bool) {
	switch Cadre(s) {
	case Professor, AssociateProfessor, AssistantProfessor:
		return Cadre(s), true
	}
	return "", false
}

// ParseSection maps an incoming string to a Section, false if unknown.
func ParseSection(s string) (Section, bool) {
	switch Section(s) {
	case SectionAcademic, SectionResearch, SectionSelfDev, SectionPortfolio, SectionExtraordinary:
		return Section(s), true
	}
	return "", false
}
