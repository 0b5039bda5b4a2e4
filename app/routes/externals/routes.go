package externals

import (
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupExternalsRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	directorLevel := auth.RoleMiddleware(models.RoleDirector, models.RoleAdmin)
	panelAdmin := auth.RoleMiddleware(models.RoleHOD, models.RoleDean, models.RoleDirector, models.RoleAdmin)

	api.Get("/departments/:department/external-assignments", panelAdmin, GetExternalAssignmentsAPI)
	api.Post("/departments/:department/external-assignments", panelAdmin, PostExternalAssignmentsAPI)
	api.Delete("/departments/:department/external-assignments/:facultyId/:reviewerId", panelAdmin, UnassignReviewerAPI)

	api.Post("/faculty/:facultyId/freeze-externals", directorLevel, FreezeExternalsAPI)

	api.Get("/external-reviewers", panelAdmin, GetExternalReviewersAPI)
	api.Post("/external-reviewers", directorLevel, CreateExternalReviewerAPI)
	api.Delete("/external-reviewers/:id", directorLevel, DeleteExternalReviewerAPI)
}
