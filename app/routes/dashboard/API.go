package dashboard

import (
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard handles the appraisal dashboard page
func GetDashboard(c *fiber.Ctx) error {
	// Get user from context (set by auth middleware)
	user := c.Locals("user").(*models.User)

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
	})
}

// GetDashboardStatsAPI returns the department's appraisal progress as JSON
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	department := c.Query("department")
	if department == "" {
		return c.Status(400).JSON(fiber.Map{"error": "department is required"})
	}

	counts, err := database.CountFacultyByStatus(config.GetDB(), department)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch appraisal stats"})
	}

	total := 0
	byStatus := fiber.Map{}
	for _, status := range models.AllStatuses {
		n := counts[status]
		byStatus[string(status)] = n
		total += n
	}

	return c.JSON(fiber.Map{
		"department": department,
		"total":      total,
		"by_status":  byStatus,
	})
}

// SetupDashboardRoutes registers the dashboard page and stats API
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, GetDashboard)
	app.Get("/api/dashboard/stats", auth.AuthMiddleware, GetDashboardStatsAPI)
}
