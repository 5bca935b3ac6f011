package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
)

type CreateOrderItemRequest struct {
	OrderID    uint     `json:"order_id" binding:"required"`
	MenuItemID uint     `json:"menuitem_id" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required,min=1"`
	SubTotal   *float64 `json:"sub_total"`
}

type UpdateOrderItemRequest struct {
	Quantity   *int     `json:"quantity"`
	SubTotal   *float64 `json:"sub_total"`
	MenuItemID *uint    `json:"menuitem_id"`
}

// ownsOrder loads an order and checks the caller may touch it
func ownsOrder(c *gin.Context, orderID uint) (*models.Order, bool) {
	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		return nil, false
	}
	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		return &order, false
	}
	return &order, true
}

// ListOrderItems returns order lines. Admins see everything, everyone
// else sees lines of their own orders.
func ListOrderItems(c *gin.Context) {
	query := config.DB.Preload("MenuItem")
	if middleware.GetRole(c) != models.RoleAdmin {
		query = query.Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.user_id = ?", middleware.GetUserID(c))
	}

	var items []models.OrderItem
	if err := query.Find(&items).Error; err != nil {
		internalError(c, "Failed to list order items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_items": items})
}

func GetOrderItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.OrderItem
	if err := config.DB.Preload("MenuItem").First(&item, id).Error; err != nil {
		notFoundError(c, "Order item not found")
		return
	}
	if _, allowed := ownsOrder(c, item.OrderID); !allowed {
		forbiddenError(c, "This is not your order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_item": item})
}

// CreateOrderItem adds a line to an existing order. Subtotal defaults
// to quantity times the menu price when not supplied.
func CreateOrderItem(c *gin.Context) {
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	order, allowed := ownsOrder(c, req.OrderID)
	if order == nil {
		validationError(c, "Order does not exist")
		return
	}
	if !allowed {
		forbiddenError(c, "This is not your order")
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		validationError(c, "Menu item does not exist")
		return
	}

	item := models.OrderItem{
		OrderID:    req.OrderID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
		SubTotal:   float64(req.Quantity * menuItem.Price),
	}
	if req.SubTotal != nil {
		item.SubTotal = *req.SubTotal
	}

	if err := config.DB.Create(&item).Error; err != nil {
		internalError(c, "Failed to create order item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order_item": item})
}

func UpdateOrderItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.OrderItem
	if err := config.DB.First(&item, id).Error; err != nil {
		notFoundError(c, "Order item not found")
		return
	}
	if _, allowed := ownsOrder(c, item.OrderID); !allowed {
		forbiddenError(c, "This is not your order")
		return
	}

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			validationError(c, "Quantity must be at least 1")
			return
		}
		item.Quantity = *req.Quantity
	}
	if req.SubTotal != nil {
		item.SubTotal = *req.SubTotal
	}
	if req.MenuItemID != nil {
		var menuItem models.MenuItem
		if err := config.DB.First(&menuItem, *req.MenuItemID).Error; err != nil {
			validationError(c, "Menu item does not exist")
			return
		}
		item.MenuItemID = *req.MenuItemID
	}

	if err := config.DB.Save(&item).Error; err != nil {
		internalError(c, "Failed to update order item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_item": item})
}

func DeleteOrderItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.OrderItem
	if err := config.DB.First(&item, id).Error; err != nil {
		notFoundError(c, "Order item not found")
		return
	}
	if _, allowed := ownsOrder(c, item.OrderID); !allowed {
		forbiddenError(c, "This is not your order")
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		internalError(c, "Failed to delete order item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order item deleted successfully"})
}
