package bookController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	bookValidator "prayerhub/validators/book"
)

// BookWithLink is a book enriched with its Amazon referral URL
type BookWithLink struct {
	models.Book
	AmazonURL string `json:"amazon_url"`
}

func withLink(book models.Book) BookWithLink {
	return BookWithLink{Book: book, AmazonURL: utils.AmazonReferralURL(book.ASIN)}
}

// GetAllBooks lists published books with referral links
func GetAllBooks(c *fiber.Ctx) error {
	var books []models.Book
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("created_at desc").Find(&books).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch books!", nil)
	}

	result := make([]BookWithLink, len(books))
	for i, book := range books {
		result[i] = withLink(book)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books fetched successfully!", fiber.Map{
		"books": result,
	})
}

// GetBookDetails returns one published book with its referral link
func GetBookDetails(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var book models.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", bookID, false, true).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book fetched successfully!", withLink(book))
}

// AdminCreateBook adds a book to the storefront
func AdminCreateBook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBook").(*bookValidator.BookPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	book := models.Book{
		Title:       reqData.Title,
		Author:      reqData.Author,
		Description: reqData.Description,
		CoverURL:    reqData.CoverURL,
		ASIN:        reqData.ASIN,
		Price:       reqData.Price,
	}

	if err := database.Database.Db.Create(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Book created successfully!", book)
}

// AdminUpdateBook edits a book in place
func AdminUpdateBook(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var book models.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	reqData, ok := c.Locals("validatedBookUpdate").(*bookValidator.BookPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		book.Title = reqData.Title
	}
	if reqData.Author != "" {
		book.Author = reqData.Author
	}
	if reqData.Description != "" {
		book.Description = reqData.Description
	}
	if reqData.CoverURL != "" {
		book.CoverURL = reqData.CoverURL
	}
	if reqData.ASIN != "" {
		book.ASIN = reqData.ASIN
	}
	if reqData.Price > 0 {
		book.Price = reqData.Price
	}

	if err := database.Database.Db.Save(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book updated successfully!", book)
}

// AdminDeleteBook soft deletes a book
func AdminDeleteBook(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var book models.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	book.IsDeleted = true
	if err := database.Database.Db.Save(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book deleted successfully!", nil)
}

// AdminListBooks lists all books including unpublished
func AdminListBooks(c *fiber.Ctx) error {
	var books []models.Book
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&books).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch books!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books fetched successfully!", fiber.Map{
		"books": books,
	})
}

// AdminPublishBook toggles a book live
func AdminPublishBook(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var book models.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", bookID, false).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	book.IsPublished = !book.IsPublished
	if err := database.Database.Db.Save(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book publish state updated!", book)
}
