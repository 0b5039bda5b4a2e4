package interaction

import (
	"errors"
	"log"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/services"

	"github.com/gofiber/fiber/v2"
)

// PostInteractionMarksAPI submits one evaluator's six-criterion rubric
// for a faculty member. Criteria are clamped to their own maxima before
// the total is derived; a submitted evaluation is immutable afterwards.
func PostInteractionMarksAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	evaluatorID := c.Params("evaluatorId")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	record, err := database.GetFacultyByID(db, department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	// The interaction panel runs only after the reviewer set is final.
	if !record.IsExternalsFinal {
		return c.Status(409).JSON(fiber.Map{"error": "External reviewer assignments are not frozen yet"})
	}

	var req struct {
		EvaluatorRole       string  `json:"evaluator_role"`
		ExternalReviewerID  *string `json:"external_reviewer_id,omitempty"`
		Knowledge           float64 `json:"knowledge"`
		Skills              float64 `json:"skills"`
		Attributes          float64 `json:"attributes"`
		OutcomesInitiatives float64 `json:"outcomesInitiatives"`
		SelfBranching       float64 `json:"selfBranching"`
		TeamPerformance     float64 `json:"teamPerformance"`
		Comments            string  `json:"comments"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	role := models.EvaluatorRole(req.EvaluatorRole)
	switch role {
	case models.EvaluatorHOD, models.EvaluatorDean, models.EvaluatorDirector, models.EvaluatorExternal:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown evaluator role"})
	}

	if role == models.EvaluatorExternal {
		if req.ExternalReviewerID == nil {
			return c.Status(400).JSON(fiber.Map{"error": "external_reviewer_id is required for external evaluations"})
		}
		assignments, err := database.GetDepartmentAssignments(db, department)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to check reviewer assignment"})
		}
		assigned := false
		for _, reviewerID := range assignments[facultyID] {
			if reviewerID == *req.ExternalReviewerID {
				assigned = true
				break
			}
		}
		if !assigned {
			return c.Status(403).JSON(fiber.Map{"error": "Reviewer is not assigned to this faculty"})
		}
	}

	eval := &models.InteractionEvaluation{
		FacultyID:           facultyID,
		EvaluatorID:         evaluatorID,
		EvaluatorRole:       role,
		ExternalReviewerID:  req.ExternalReviewerID,
		Knowledge:           req.Knowledge,
		Skills:              req.Skills,
		Attributes:          req.Attributes,
		OutcomesInitiatives: req.OutcomesInitiatives,
		SelfBranching:       req.SelfBranching,
		TeamPerformance:     req.TeamPerformance,
		Comments:            req.Comments,
	}
	appraisal.ClampCriteria(eval)

	if err := database.SubmitEvaluation(db, eval); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit evaluation"})
	}

	if err := services.DiscardEvaluationDraft(db, evaluatorID, facultyID); err != nil {
		log.Printf("Failed to discard draft for %s/%s: %v", evaluatorID, facultyID, err)
	}

	// A first submitted evaluation closes the interaction stage.
	if record.Status == models.StatusInteractionPending {
		ctx, err := database.BuildTransitionContext(db, facultyID)
		if err == nil {
			actorID, _ := c.Locals("user_id").(string)
			if _, err := database.TransitionFacultyStatus(db, facultyID, models.StatusDone, ctx, actorID); err != nil {
				log.Printf("Auto-advance interaction_pending -> done for %s skipped: %v", facultyID, err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"total_marks":  eval.TotalScore,
		"comments":     eval.Comments,
		"submitted_at": eval.SubmittedAt,
	})
}

// GetInteractionSummaryAPI returns the submitted evaluations with the
// faculty's interaction average and scaled contribution. A faculty with
// no submitted evaluations reports not_yet_evaluated rather than 0.
func GetInteractionSummaryAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	if _, err := database.GetFacultyByID(db, department, facultyID); err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	evals, err := database.GetEvaluationsByFaculty(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch evaluations"})
	}

	average, err := appraisal.InteractionAverage(evals)
	if err != nil {
		if errors.Is(err, appraisal.ErrNotYetEvaluated) {
			return c.JSON(fiber.Map{
				"faculty_id":        facultyID,
				"evaluations":       evals,
				"not_yet_evaluated": true,
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute average"})
	}

	return c.JSON(fiber.Map{
		"faculty_id":         facultyID,
		"evaluations":        evals,
		"average":            average,
		"scaled_interaction": appraisal.ScaledInteraction(average),
	})
}

// SaveDraftAPI stores an in-progress evaluation form server-side.
func SaveDraftAPI(c *fiber.Ctx) error {
	evaluatorID := c.Params("evaluatorId")
	facultyID := c.Params("facultyId")

	eval, err := database.GetEvaluation(config.GetDB(), evaluatorID, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check evaluation"})
	}
	if eval != nil && eval.SubmittedAt != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Evaluation already submitted"})
	}

	payload := string(c.Body())
	if payload == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Empty draft payload"})
	}

	draft, err := services.SaveEvaluationDraft(config.GetDB(), evaluatorID, facultyID, payload)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save draft"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"updated_at": draft.UpdatedAt,
	})
}

// GetDraftAPI fetches the saved draft for an evaluator/faculty pair.
func GetDraftAPI(c *fiber.Ctx) error {
	evaluatorID := c.Params("evaluatorId")
	facultyID := c.Params("facultyId")

	draft, err := services.GetEvaluationDraft(config.GetDB(), evaluatorID, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch draft"})
	}
	if draft == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No draft saved"})
	}

	return c.JSON(draft)
}
