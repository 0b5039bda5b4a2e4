package externals

import (
	"errors"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetExternalAssignmentsAPI maps each faculty member in the department to
// the assigned external reviewer ids.
func GetExternalAssignmentsAPI(c *fiber.Ctx) error {
	department := c.Params("department")

	assignments, err := database.GetDepartmentAssignments(config.GetDB(), department)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}

	return c.JSON(fiber.Map{
		"department":  department,
		"assignments": assignments,
	})
}

// PostExternalAssignmentsAPI replaces the full assigned reviewer set per
// faculty in one atomic call each. Frozen faculty are rejected with no
// change; the rest of the payload still applies (partial-failure
// contract, same shape as the director batch).
func PostExternalAssignmentsAPI(c *fiber.Ctx) error {
	var req struct {
		Assignments map[string][]string `json:"assignments"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Assignments) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No assignments provided"})
	}

	db := config.GetDB()
	result := appraisal.BatchResult{SuccessfulIDs: []string{}, UnsuccessfulIDs: []string{}}
	frozen := []string{}

	for facultyID, reviewerIDs := range req.Assignments {
		err := database.ReplaceAssignments(db, facultyID, reviewerIDs)
		if err != nil {
			result.UnsuccessfulIDs = append(result.UnsuccessfulIDs, facultyID)
			if errors.Is(err, appraisal.ErrFrozen) {
				frozen = append(frozen, facultyID)
			}
			continue
		}
		result.SuccessfulIDs = append(result.SuccessfulIDs, facultyID)
	}

	status := 200
	if len(result.SuccessfulIDs) == 0 {
		status = 409
	}
	return c.Status(status).JSON(fiber.Map{
		"successful_ids":   result.SuccessfulIDs,
		"unsuccessful_ids": result.UnsuccessfulIDs,
		"frozen_ids":       frozen,
	})
}

// UnassignReviewerAPI removes a single reviewer from a faculty's set.
func UnassignReviewerAPI(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")
	reviewerID := c.Params("reviewerId")

	err := database.UnassignReviewer(config.GetDB(), facultyID, reviewerID)
	if err != nil {
		if errors.Is(err, appraisal.ErrFrozen) {
			return c.Status(409).JSON(fiber.Map{"error": "External assignments are frozen for this faculty"})
		}
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unassign reviewer"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// FreezeExternalsAPI makes the faculty's reviewer set final for the
// cycle. Freezing twice is a no-op returning the same frozen state.
func FreezeExternalsAPI(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")

	frozen, err := database.FreezeExternals(config.GetDB(), facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to freeze assignments"})
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"is_externals_final": frozen,
	})
}

func GetExternalReviewersAPI(c *fiber.Ctx) error {
	reviewers, err := database.GetExternalReviewers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch external reviewers"})
	}

	return c.JSON(fiber.Map{
		"reviewers": reviewers,
		"count":     len(reviewers),
	})
}

func CreateExternalReviewerAPI(c *fiber.Ctx) error {
	var reviewer models.ExternalReviewer
	if err := c.BodyParser(&reviewer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if reviewer.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := database.CreateExternalReviewer(config.GetDB(), &reviewer); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create external reviewer"})
	}

	return c.Status(201).JSON(reviewer)
}

func DeleteExternalReviewerAPI(c *fiber.Ctx) error {
	reviewerID := c.Params("id")

	if err := database.DeleteExternalReviewer(config.GetDB(), reviewerID); err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "External reviewer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete external reviewer"})
	}

	return c.SendStatus(204)
}
