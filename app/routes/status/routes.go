package status

import (
	"fdw-appraisal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStatusRoutes(app *fiber.App) {
	api := app.Group("/api/departments/:department/faculty/:facultyId/status")
	api.Use(auth.AuthMiddleware)

	api.Post("/", PostStatusTransitionAPI)
	api.Get("/log", GetTransitionLogAPI)
}
