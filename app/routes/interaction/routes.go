package interaction

import (
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupInteractionRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	panel := auth.RoleMiddleware(models.RoleHOD, models.RoleDean, models.RoleDirector, models.RoleAdmin)

	api.Post("/departments/:department/interaction/:evaluatorId/:facultyId", panel, PostInteractionMarksAPI)
	api.Get("/departments/:department/interaction/:facultyId", panel, GetInteractionSummaryAPI)

	api.Put("/interaction/drafts/:evaluatorId/:facultyId", panel, SaveDraftAPI)
	api.Get("/interaction/drafts/:evaluatorId/:facultyId", panel, GetDraftAPI)
}
