package appraisal

import "fdw-appraisal/app/models"

// GrandTotalCeiling is the hard ceiling on a faculty member's verified or
// claimed grand total, applied after summation, never per section.
const GrandTotalCeiling = 1000

// sectionCaps holds the maximum marks per section per cadre. Professors
// carry more research weight, assistant professors more academic weight.
var sectionCaps = map[models.Cadre]map[models.Section]float64{
	models.Professor: {
		models.SectionAcademic:      300,
		models.SectionResearch:      400,
		models.SectionSelfDev:       200,
		models.SectionPortfolio:     180,
		models.SectionExtraordinary: 60,
	},
	models.AssociateProfessor: {
		models.SectionAcademic:      400,
		models.SectionResearch:      350,
		models.SectionSelfDev:       200,
		models.SectionPortfolio:     180,
		models.SectionExtraordinary: 60,
	},
	models.AssistantProfessor: {
		models.SectionAcademic:      500,
		models.SectionResearch:      300,
		models.SectionSelfDev:       200,
		models.SectionPortfolio:     180,
		models.SectionExtraordinary: 60,
	},
}

// MaxMarks returns the maximum mark for a section under a cadre. Lookup
// misses fail loudly; callers wanting the restrictive fallback must opt
// in through MaxMarksOrRestrictive.
func MaxMarks(section models.Section, cadre models.Cadre) (float64, error) {
	caps, ok := sectionCaps[cadre]
	if !ok {
		return 0, ErrUnknownCadre
	}
	max, ok := caps[section]
	if !ok {
		return 0, ErrUnknownSection
	}
	return max, nil
}

// MostRestrictiveCadre is the cadre with the lowest research ceiling,
// used as the explicit fallback for unrecognized cadre values.
func MostRestrictiveCadre() models.Cadre {
	return models.AssistantProfessor
}

// MaxMarksOrRestrictive looks up the cap for the given cadre and falls
// back to the most restrictive cadre when the cadre is unknown. An
// unknown section still fails.
func MaxMarksOrRestrictive(section models.Section, cadre models.Cadre) (float64, error) {
	max, err := MaxMarks(section, cadre)
	if err == ErrUnknownCadre {
		return MaxMarks(section, MostRestrictiveCadre())
	}
	return max, err
}
