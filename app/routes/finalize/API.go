package finalize

import (
	"errors"
	"log"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"

	"github.com/gofiber/fiber/v2"
)

// facultyFinalMarks is the read-only projection of one faculty's final
// score for the ranking view.
type facultyFinalMarks struct {
	FacultyInfo        *models.FacultyRecord `json:"faculty_info"`
	VerifiedTotal      float64               `json:"verified_total"`
	InteractionAverage *float64              `json:"interaction_average,omitempty"`
	NotYetEvaluated    bool                  `json:"not_yet_evaluated,omitempty"`
	FinalMarks         float64               `json:"final_marks"`
}

// GetFinalMarksAPI projects the finalization engine's output for every
// active faculty record in the department. Faculty without a submitted
// interaction evaluation are reported as not yet evaluated; their final
// marks carry only the weighted section total.
func GetFinalMarksAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	db := config.GetDB()

	records, err := database.GetFacultyByDepartment(db, department)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	var results []facultyFinalMarks
	var sumFinal float64
	evaluated := 0
	sent := 0

	for _, record := range records {
		marks, err := database.GetSectionMarks(db, record.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch section marks"})
		}
		verifiedTotal := appraisal.GrandTotal(marks, appraisal.Verified)

		entry := facultyFinalMarks{
			FacultyInfo:   record,
			VerifiedTotal: verifiedTotal,
		}

		evals, err := database.GetEvaluationsByFaculty(db, record.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch evaluations"})
		}

		average, err := appraisal.InteractionAverage(evals)
		if err != nil {
			if !errors.Is(err, appraisal.ErrNotYetEvaluated) {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to compute interaction average"})
			}
			entry.NotYetEvaluated = true
			entry.FinalMarks = appraisal.FinalMarks(verifiedTotal, 0)
		} else {
			entry.InteractionAverage = &average
			entry.FinalMarks = appraisal.FinalMarks(verifiedTotal, appraisal.ScaledInteraction(average))
			evaluated++
		}

		if record.Status == models.StatusSentToDirector {
			sent++
		}
		sumFinal += entry.FinalMarks
		results = append(results, entry)
	}

	summary := fiber.Map{
		"total_faculty":    len(results),
		"evaluated":        evaluated,
		"sent_to_director": sent,
	}
	if len(results) > 0 {
		summary["average_final_marks"] = sumFinal / float64(len(results))
	}

	return c.JSON(fiber.Map{
		"department":  department,
		"final_marks": results,
		"summary":     summary,
	})
}

// PostSendToDirectorAPI processes a director-bound batch. Faculty are
// handled independently: records in done move to sent_to_director, the
// rest are reported back as unsuccessful without blocking the batch.
func PostSendToDirectorAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	db := config.GetDB()

	var req struct {
		UserIDs []string `json:"user_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.UserIDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No faculty ids provided"})
	}

	// Statuses are read once at batch time; eligibility is re-checked
	// under the row lock when each transition applies.
	statusOf := func(id string) (models.Status, bool) {
		record, err := database.GetFacultyByID(db, department, id)
		if err != nil {
			return "", false
		}
		return record.Status, true
	}

	result := appraisal.PartitionDirectorBatch(req.UserIDs, statusOf)

	actorID, _ := c.Locals("user_id").(string)
	applied := []string{}
	for _, facultyID := range result.SuccessfulIDs {
		ctx := appraisal.TransitionContext{InDirectorBatch: true}
		_, err := database.TransitionFacultyStatus(db, facultyID, models.StatusSentToDirector, ctx, actorID)
		if err != nil {
			log.Printf("Send to director failed for %s: %v", facultyID, err)
			result.UnsuccessfulIDs = append(result.UnsuccessfulIDs, facultyID)
			continue
		}
		applied = append(applied, facultyID)
	}
	result.SuccessfulIDs = applied

	return c.JSON(fiber.Map{
		"successful_ids":   result.SuccessfulIDs,
		"unsuccessful_ids": result.UnsuccessfulIDs,
	})
}
