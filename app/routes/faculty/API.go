package faculty

import (
	"fdw-appraisal/app/config"
	"fdw-appraisal/app/database"
	"fdw-appraisal/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetFacultyListAPI(c *fiber.Ctx) error {
	department := c.Params("department")

	records, err := database.GetFacultyByDepartment(config.GetDB(), department)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	return c.JSON(fiber.Map{
		"faculty": records,
		"count":   len(records),
	})
}

func GetFacultyAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")

	record, err := database.GetFacultyByID(config.GetDB(), department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	return c.JSON(record)
}

func CreateFacultyAPI(c *fiber.Ctx) error {
	type CreateFacultyRequest struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Cadre                string `json:"cadre"`
		Designation          string `json:"designation"`
		IsAdministrativeRole bool   `json:"is_administrative_role"`
	}

	var req CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	cadre, ok := models.ParseCadre(req.Cadre)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown cadre: " + req.Cadre})
	}

	record := &models.FacultyRecord{
		Name:                 req.Name,
		Email:                req.Email,
		Department:           c.Params("department"),
		Cadre:                cadre,
		Designation:          req.Designation,
		IsAdministrativeRole: req.IsAdministrativeRole,
	}

	if err := database.CreateFaculty(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create faculty"})
	}

	return c.Status(201).JSON(record)
}

func UpdateFacultyAPI(c *fiber.Ctx) error {
	department := c.Params("department")
	facultyID := c.Params("facultyId")

	record, err := database.GetFacultyByID(config.GetDB(), department, facultyID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	type UpdateFacultyRequest struct {
		Name                 *string `json:"name"`
		Email                *string `json:"email"`
		Cadre                *string `json:"cadre"`
		Designation          *string `json:"designation"`
		IsAdministrativeRole *bool   `json:"is_administrative_role"`
	}

	var req UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Cadre != nil {
		cadre, ok := models.ParseCadre(*req.Cadre)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown cadre: " + *req.Cadre})
		}
		record.Cadre = cadre
	}
	if req.Designation != nil {
		record.Designation = *req.Designation
	}
	if req.IsAdministrativeRole != nil {
		record.IsAdministrativeRole = *req.IsAdministrativeRole
	}

	if err := database.UpdateFaculty(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update faculty"})
	}

	return c.JSON(record)
}

func ArchiveFacultyAPI(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")

	if err := database.ArchiveFaculty(config.GetDB(), facultyID); err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found or already archived"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to archive faculty"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Faculty archived for the cycle",
	})
}

func GrantDesignationBonusAPI(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")

	if err := database.GrantDesignationBonus(config.GetDB(), facultyID); err != nil {
		if database.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Faculty not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to grant designation bonus"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Designation bonus granted",
	})
}
