package portfolio

import (
	"database/sql"
	"log"

	"fdw-appraisal/app/appraisal"
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetPortfolioAPI returns the faculty's portfolio data and section marks
// with both grand totals.
func GetPortfolioAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	record, err := database.GetFacultyByID(db, department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	portfolio, err := database.GetPortfolioData(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch portfolio"})
	}

	marks, err := database.GetSectionMarks(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch section marks"})
	}

	return c.JSON(fiber.Map{
		"faculty":        record,
		"portfolio":      portfolio,
		"section_marks":  marks,
		"claimed_total":  appraisal.GrandTotal(marks, appraisal.Claimed),
		"verified_total": appraisal.GrandTotal(marks, appraisal.Verified),
	})
}

// PutPortfolioAPI persists portfolio marks from the calling evaluator.
// The derived total is always recomputed server-side; done records are
// immutable.
func PutPortfolioAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	record, err := database.GetFacultyByID(db, department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	if record.Status == models.StatusDone || record.Status == models.StatusSentToDirector {
		return c.Status(409).JSON(fiber.Map{"error": "Portfolio is final for this cycle"})
	}

	var req models.PortfolioData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	switch req.PortfolioType {
	case models.PortfolioInstitute, models.PortfolioDepartment, models.PortfolioBoth:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown portfolio type"})
	}

	req.FacultyID = facultyID
	req.TotalMarks = appraisal.CalculateTotalScore(req, record.IsAdministrativeRole)

	if err := database.UpsertPortfolioData(db, &req); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save portfolio"})
	}

	// Dean/Director portfolio marks satisfy the portfolio-stage guard.
	if req.DeanMarks > 0 || req.DirectorMarks > 0 {
		advance(db, facultyID, record.Status, []models.Status{
			models.StatusPortfolioMarkDeanPending,
			models.StatusPortfolioMarkDirPending,
		}, models.StatusDone, c.Locals("user_id"))
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"portfolio": req,
	})
}

// RecordClaimsAPI stores the faculty member's self-declared section
// marks, clamped to the cadre's caps, and opens the verification stage.
func RecordClaimsAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	record, err := database.GetFacultyByID(db, department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	var req struct {
		Claims map[string]float64 `json:"claims"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Claims) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No claims provided"})
	}

	var saved []models.SectionMark
	for sectionName, value := range req.Claims {
		section, ok := models.ParseSection(sectionName)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown section: " + sectionName})
		}

		mark, err := database.GetSectionMark(db, facultyID, section)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch section mark"})
		}

		if err := appraisal.RecordClaim(mark, value, record.Cadre); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		if err := database.UpsertSectionMark(db, mark); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save section mark"})
		}
		saved = append(saved, *mark)
	}

	advance(db, facultyID, record.Status,
		[]models.Status{models.StatusPending}, models.StatusVerificationPending,
		c.Locals("user_id"))

	return c.JSON(fiber.Map{
		"success":       true,
		"section_marks": saved,
		"claimed_total": claimedTotal(db, facultyID),
	})
}

// RecordVerificationsAPI stores an evaluator's verified marks for one or
// more sections; last writer per (faculty, section) wins.
func RecordVerificationsAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")
	db := config.GetDB()

	record, err := database.GetFacultyByID(db, department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	var req struct {
		EvaluatorRole string             `json:"evaluator_role"`
		Verifications map[string]float64 `json:"verifications"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Verifications) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No verifications provided"})
	}

	role := models.EvaluatorRole(req.EvaluatorRole)
	switch role {
	case models.EvaluatorHOD, models.EvaluatorDean, models.EvaluatorDirector:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown evaluator role"})
	}

	var saved []models.SectionMark
	for sectionName, value := range req.Verifications {
		section, ok := models.ParseSection(sectionName)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown section: " + sectionName})
		}

		mark, err := database.GetSectionMark(db, facultyID, section)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch section mark"})
		}

		if err := appraisal.RecordVerification(mark, value, role, record.Cadre); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		if err := database.UpsertSectionMark(db, mark); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save section mark"})
		}
		saved = append(saved, *mark)
	}

	if role == models.EvaluatorHOD {
		advance(db, facultyID, record.Status,
			[]models.Status{models.StatusVerificationPending}, models.StatusAuthorityVerification,
			c.Locals("user_id"))
	} else {
		advance(db, facultyID, record.Status, []models.Status{
			models.StatusPortfolioMarkDeanPending,
			models.StatusPortfolioMarkDirPending,
		}, models.StatusDone, c.Locals("user_id"))
	}

	marks, err := database.GetSectionMarks(db, facultyID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch section marks"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"section_marks":  saved,
		"verified_total": appraisal.GrandTotal(marks, appraisal.Verified),
	})
}

// advance opportunistically moves the record forward when the completed
// action satisfies a stage guard. The explicit status endpoint remains
// the authoritative path; a failed auto-advance is logged, not surfaced.
func advance(db *sql.DB, facultyID string, current models.Status, from []models.Status, target models.Status, actor interface{}) {
	for _, status := range from {
		if current != status {
			continue
		}
		actorID, _ := actor.(string)
		ctx, err := database.BuildTransitionContext(db, facultyID)
		if err != nil {
			log.Printf("Auto-advance context for %s failed: %v", facultyID, err)
			return
		}
		if target == models.StatusPortfolioMarkDeanPending || target == models.StatusPortfolioMarkDirPending {
			ctx.PortfolioRequested = true
		}
		if _, err := database.TransitionFacultyStatus(db, facultyID, target, ctx, actorID); err != nil {
			log.Printf("Auto-advance %s -> %s for %s skipped: %v", current, target, facultyID, err)
		}
		return
	}
}

func claimedTotal(db *sql.DB, facultyID string) float64 {
	marks, err := database.GetSectionMarks(db, facultyID)
	if err != nil {
		return 0
	}
	return appraisal.GrandTotal(marks, appraisal.Claimed)
}
