package projectController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	projectValidator "prayerhub/validators/project"
)

// GetAllProjects lists published projects
func GetAllProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("created_at desc").Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
	})
}

// GetProjectDetails returns a single published project
func GetProjectDetails(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", projectID, false, true).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project fetched successfully!", project)
}

// AdminCreateProject creates a new project
func AdminCreateProject(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProject").(*projectValidator.ProjectPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	project := models.Project{
		Title:       reqData.Title,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
		VideoURL:    reqData.VideoURL,
		CreatedBy:   admin.ID,
	}

	if err := database.Database.Db.Create(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", project)
}

// AdminUpdateProject edits a project in place
func AdminUpdateProject(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", projectID, false).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	reqData, ok := c.Locals("validatedProjectUpdate").(*projectValidator.ProjectPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		project.Title = reqData.Title
	}
	if reqData.Description != "" {
		project.Description = reqData.Description
	}
	if reqData.ImageURL != "" {
		project.ImageURL = reqData.ImageURL
	}
	if reqData.VideoURL != "" {
		project.VideoURL = reqData.VideoURL
	}

	if err := database.Database.Db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", project)
}

// AdminDeleteProject soft deletes a project
func AdminDeleteProject(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", projectID, false).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	project.IsDeleted = true
	if err := database.Database.Db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}

// AdminListProjects lists all projects including drafts
func AdminListProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
	})
}

// AdminPublishProject toggles a project live
func AdminPublishProject(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", projectID, false).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	project.IsPublished = !project.IsPublished
	if err := database.Database.Db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project publish state updated!", project)
}
