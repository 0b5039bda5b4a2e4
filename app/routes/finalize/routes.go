package finalize

import (
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFinalizeRoutes(app *fiber.App) {
	api := app.Group("/api/departments/:department")
	api.Use(auth.AuthMiddleware)

	api.Get("/final-marks", auth.RoleMiddleware(
		models.RoleHOD, models.RoleDean, models.RoleDirector, models.RoleAdmin),
		GetFinalMarksAPI)

	api.Post("/send-to-director", auth.RoleMiddleware(
		models.RoleDean, models.RoleDirector, models.RoleAdmin),
		PostSendToDirectorAPI)
}
