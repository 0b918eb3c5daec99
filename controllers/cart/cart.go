package cartController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	cartValidator "prayerhub/validators/cart"
)

// AddToCart puts a book in the user's cart, or updates the quantity if the
// book is already there
func AddToCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCartItem").(*cartValidator.AddItemPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var book models.Book
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", reqData.BookID, false, true).First(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	var item models.CartItem
	err := database.Database.Db.Where("user_id = ? AND book_id = ? AND is_deleted = ?", userID, reqData.BookID, false).First(&item).Error
	if err == nil {
		item.Quantity = reqData.Quantity
	} else {
		item = models.CartItem{
			UserID:   userID,
			BookID:   reqData.BookID,
			Quantity: reqData.Quantity,
		}
	}

	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart updated successfully!", item)
}

// GetCart lists the user's cart with book details and total
func GetCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var items []models.CartItem
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Book").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	var total float64
	for _, item := range items {
		total += item.Book.Price * float64(item.Quantity)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
		"items": items,
		"total": total,
	})
}

// RemoveFromCart deletes one cart line
func RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	itemID := c.Locals("itemID").(int)

	var item models.CartItem
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", itemID, userID, false).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	item.IsDeleted = true
	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove cart item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item removed successfully!", nil)
}
