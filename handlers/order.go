package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Status     string   `json:"status"`
	TotalPrice *float64 `json:"total_price"`
	UserID     uint     `json:"user_id"` // admins may create on behalf of a user
}

type UpdateOrderRequest struct {
	Status     *string  `json:"status"`
	TotalPrice *float64 `json:"total_price"`
}

// ListOrders returns orders with their items. Admins see everything,
// everyone else sees their own.
func ListOrders(c *gin.Context) {
	query := config.DB.Preload("OrderItems.MenuItem")
	if middleware.GetRole(c) != models.RoleAdmin {
		query = query.Where("user_id = ?", middleware.GetUserID(c))
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		internalError(c, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func GetOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var order models.Order
	if err := config.DB.Preload("OrderItems.MenuItem").Preload("Reservation").First(&order, id).Error; err != nil {
		notFoundError(c, "Order not found")
		return
	}
	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "This is not your order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CreateOrder opens an order for the caller. Total price is
// caller-authoritative; it is not recomputed from items.
func CreateOrder(c *gin.Context) {
	// Every field is optional, so an empty body is a valid order
	var req CreateOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err.Error())
			return
		}
	}

	userID := middleware.GetUserID(c)
	if req.UserID != 0 && middleware.GetRole(c) == models.RoleAdmin {
		var target models.User
		if err := config.DB.First(&target, req.UserID).Error; err != nil {
			validationError(c, "User does not exist")
			return
		}
		userID = req.UserID
	}

	order := models.Order{
		Status: "pending",
		UserID: userID,
	}
	if req.Status != "" {
		order.Status = req.Status
	}
	if req.TotalPrice != nil {
		order.TotalPrice = *req.TotalPrice
	}

	if err := config.DB.Create(&order).Error; err != nil {
		writeError(c, err, "Order already exists")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// UpdateOrder patches status and/or total price. The creation
// timestamp and the owning user never change.
func UpdateOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		notFoundError(c, "Order not found")
		return
	}
	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "This is not your order")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.TotalPrice != nil {
		order.TotalPrice = *req.TotalPrice
	}

	if err := config.DB.Save(&order).Error; err != nil {
		internalError(c, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeleteOrder removes an order and cascades to its items; a linked
// reservation survives with its order reference cleared.
func DeleteOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		notFoundError(c, "Order not found")
		return
	}
	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "This is not your order")
		return
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteOrderTree(tx, []uint{order.ID})
	})
	if err != nil {
		internalError(c, "Failed to delete order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
