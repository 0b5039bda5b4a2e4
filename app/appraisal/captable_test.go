package appraisal

import (
	"errors"
	"testing"

	"fdw-appraisal/app/models"
)

func TestMaxMarksKnownLookups(t *testing.T) {
	tests := []struct {
		name    string
		section models.Section
		cadre   models.Cadre
		want    float64
	}{
		{"professor research", models.SectionResearch, models.Professor, 400},
		{"professor academic", models.SectionAcademic, models.Professor, 300},
		{"associate academic", models.SectionAcademic, models.AssociateProfessor, 400},
		{"assistant academic", models.SectionAcademic, models.AssistantProfessor, 500},
		{"assistant research", models.SectionResearch, models.AssistantProfessor, 300},
		{"self development shared", models.SectionSelfDev, models.Professor, 200},
		{"portfolio shared", models.SectionPortfolio, models.AssociateProfessor, 180},
		{"extraordinary shared", models.SectionExtraordinary, models.AssistantProfessor, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxMarks(tt.section, tt.cadre)
			if err != nil {
				t.Fatalf("MaxMarks(%s, %s): %v", tt.section, tt.cadre, err)
			}
			if got != tt.want {
				t.Fatalf("MaxMarks(%s, %s) = %v, want %v", tt.section, tt.cadre, got, tt.want)
			}
		})
	}
}

func TestMaxMarksUnknownCadre(t *testing.T) {
	_, err := MaxMarks(models.SectionAcademic, models.Cadre("visiting"))
	if !errors.Is(err, ErrUnknownCadre) {
		t.Fatalf("expected ErrUnknownCadre, got %v", err)
	}
}

func TestMaxMarksUnknownSection(t *testing.T) {
	_, err := MaxMarks(models.Section("F"), models.Professor)
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestMaxMarksOrRestrictiveFallsBackToAssistant(t *testing.T) {
	got, err := MaxMarksOrRestrictive(models.SectionAcademic, models.Cadre("visiting"))
	if err != nil {
		t.Fatalf("fallback lookup: %v", err)
	}
	want, _ := MaxMarks(models.SectionAcademic, models.AssistantProfessor)
	if got != want {
		t.Fatalf("fallback cap = %v, want assistant cap %v", got, want)
	}
}

func TestMaxMarksOrRestrictiveStillRejectsUnknownSection(t *testing.T) {
	_, err := MaxMarksOrRestrictive(models.Section("Z"), models.Cadre("visiting"))
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}
