package uploadController

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/config"
	"prayerhub/middleware"
	"prayerhub/utils"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
	".mp4":  true,
	".mp3":  true,
}

// UploadFile stores a multipart file and returns its public URL. Admin only.
func UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	if file.Size > int64(config.AppConfig.MaxUploadSize)*1024*1024 {
		return middleware.JsonResponse(c, fiber.StatusRequestEntityTooLarge, false, "File is too large!", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "File type is not allowed!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", fiber.Map{
		"filename": filename,
		"url":      utils.GetFileURL(filename),
	})
}
