package status

import (
	"errors"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"

	"github.com/gofiber/fiber/v2"
)

// PostStatusTransitionAPI validates and executes one lifecycle transition
// for a faculty record. Re-requesting the current status is a no-op so
// callers may retry safely.
func PostStatusTransitionAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	var req struct {
		TargetState string `json:"target_state"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	target, ok := models.ParseStatus(req.TargetState)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown target state: " + req.TargetState})
	}

	if _, err := database.GetFacultyByID(db, department, facultyID); err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	ctx, err := database.BuildTransitionContext(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to evaluate preconditions"})
	}

	// Opening a portfolio stage is itself the scheduling request.
	if target == models.StatusPortfolioMarkDeanPending || target == models.StatusPortfolioMarkDirPending {
		ctx.PortfolioRequested = true
	}

	actorID, _ := c.Locals("user_id").(string)
	next, err := database.TransitionFacultyStatus(db, facultyID, target, ctx, actorID)
	if err != nil {
		if errors.Is(err, appraisal.ErrInvalidTransition) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to execute transition"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  next,
	})
}

// GetTransitionLogAPI returns the append-only transition history for a
// faculty record, oldest first.
func GetTransitionLogAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	if _, err := database.GetFacultyByID(db, department, facultyID); err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	log, err := database.GetTransitionLog(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch transition log"})
	}

	return c.JSON(fiber.Map{
		"faculty_id":  facultyID,
		"transitions": log,
		"count":       len(log),
	})
}
