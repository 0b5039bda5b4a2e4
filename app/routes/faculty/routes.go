package faculty

import (
	"fdw-appraisal/app/models"
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFacultyRoutes(app *fiber.App) {
	api := app.Group("/api/departments/:department/faculty")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetFacultyListAPI)
	api.Get("/:facultyId", GetFacultyAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleHOD, models.RoleAdmin), CreateFacultyAPI)
	api.Put("/:facultyId", auth.RoleMiddleware(models.RoleHOD, models.RoleAdmin), UpdateFacultyAPI)
	api.Post("/:facultyId/archive", auth.RoleMiddleware(models.RoleAdmin), ArchiveFacultyAPI)
	api.Post("/:facultyId/designation-bonus",
		auth.RoleMiddleware(models.RoleDirector), GrantDesignationBonusAPI)
}
