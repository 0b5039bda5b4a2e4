package portfolio

import (
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPortfolioRoutes(app *fiber.App) {
	api := app.Group("/api/departments/:department/faculty/:facultyId")
	api.Use(auth.AuthMiddleware)

	api.Get("/portfolio", GetPortfolioAPI)
	api.Put("/portfolio", auth.RoleMiddleware(
		models.RoleFaculty, models.RoleHOD, models.RoleDean, models.RoleDirector, models.RoleAdmin),
		PutPortfolioAPI)

	api.Post("/claims", auth.RoleMiddleware(models.RoleFaculty, models.RoleAdmin), RecordClaimsAPI)
	api.Post("/verifications", auth.RoleMiddleware(
		models.RoleHOD, models.RoleDean, models.RoleDirector, models.RoleAdmin),
		RecordVerificationsAPI)
}
