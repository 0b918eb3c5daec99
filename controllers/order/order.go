package orderController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
)

// Checkout snapshots the user's cart into an order. The order rows and the
// cart clear happen in one transaction.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var items []models.CartItem
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Book").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	if len(items) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	var order models.Order
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			UserID: userID,
			Status: models.OrderStatusPlaced,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, item := range items {
			line := models.OrderItem{
				OrderID:   order.ID,
				BookID:    item.BookID,
				Title:     item.Book.Title,
				Quantity:  item.Quantity,
				UnitPrice: item.Book.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			total += line.UnitPrice * float64(line.Quantity)
		}

		order.Total = total
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// Clear the cart
		return tx.Model(&models.CartItem{}).
			Where("user_id = ? AND is_deleted = ?", userID, false).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to place order!", nil)
	}

	database.Database.Db.Preload("Items").First(&order, order.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order placed successfully!", order)
}

// GetMyOrders lists the user's orders with their lines
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": orders,
	})
}

// GetOrderDetails returns one of the user's orders
func GetOrderDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID := c.Locals("orderID").(int)

	var order models.Order
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", orderID, userID, false).
		Preload("Items").First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully!", order)
}

// AdminListOrders lists all orders
func AdminListOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}
