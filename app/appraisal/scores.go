package appraisal

import (
	"math"

	"fdw-appraisal/app/models"
)

// MarkKind selects which side of a section mark a total is computed over.
type MarkKind string

const (
	Claimed  MarkKind = "claimed"
	Verified MarkKind = "verified"
)

// Caps applied to the portfolio-duty total depending on the portfolio
// track. Single-track portfolios top out at 120; holding both tracks
// raises the ceiling to 180 with each authority contributing half weight.
const (
	singlePortfolioCap = 120
	dualPortfolioCap   = 180
)

// ClampMark clamps a raw mark into [0, cap(section, cadre)]. Out-of-range
// input is clamped silently rather than rejected; negative and overflowing
// values both land on the nearest bound.
func ClampMark(value float64, section models.Section, cadre models.Cadre) (float64, error) {
	max, err := MaxMarks(section, cadre)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || value < 0 {
		return 0, nil
	}
	if value > max {
		return max, nil
	}
	return value, nil
}

// RecordClaim stores a self-declared mark on the section entry, clamped
// into range.
func RecordClaim(mark *models.SectionMark, value float64, cadre models.Cadre) error {
	clamped, err := ClampMark(value, mark.Section, cadre)
	if err != nil {
		return err
	}
	mark.Claimed = clamped
	return nil
}

// RecordVerification stores an evaluator's verified mark on the section
// entry, clamped into range. Last writer per (faculty, section) wins;
// there is no merge of concurrent verifications.
func RecordVerification(mark *models.SectionMark, value float64, role models.EvaluatorRole, cadre models.Cadre) error {
	clamped, err := ClampMark(value, mark.Section, cadre)
	if err != nil {
		return err
	}
	mark.Verified = clamped
	mark.VerifiedBy = role
	return nil
}

// GrandTotal sums section marks of the requested kind and applies the
// 1000-point ceiling after summation. Each entry is assumed pre-clamped
// by RecordClaim/RecordVerification.
func GrandTotal(marks []models.SectionMark, kind MarkKind) float64 {
	var sum float64
	for _, m := range marks {
		if kind == Claimed {
			sum += m.Claimed
		} else {
			sum += m.Verified
		}
	}
	return math.Min(GrandTotalCeiling, sum)
}

// authorityMarks picks the institute-level authority contribution:
// director-track faculty are marked by the director, dean-track by the
// dean. Director marks take precedence when both were recorded.
func authorityMarks(p models.PortfolioData) float64 {
	if p.DirectorMarks > 0 {
		return p.DirectorMarks
	}
	return p.DeanMarks
}

// CalculateTotalScore computes the portfolio-duty total for a regular
// faculty member. Administrative-role faculty always score 0 here; their
// score comes from the separate administrative track.
func CalculateTotalScore(p models.PortfolioData, isAdministrativeRole bool) float64 {
	if isAdministrativeRole {
		return 0
	}
	switch p.PortfolioType {
	case models.PortfolioInstitute:
		return math.Min(singlePortfolioCap, p.SelfAwardedMarks+authorityMarks(p))
	case models.PortfolioDepartment:
		return math.Min(singlePortfolioCap, p.SelfAwardedMarks+p.HODMarks)
	case models.PortfolioBoth:
		return math.Min(dualPortfolioCap, p.SelfAwardedMarks+p.HODMarks/2+authorityMarks(p)/2)
	}
	return 0
}
