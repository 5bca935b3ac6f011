package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required,min=0"`
	Category    string `json:"category"`
	OutletID    uint   `json:"outlet_id" binding:"required"`
}

type UpdateMenuItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Category    *string `json:"category"`
	OutletID    *uint   `json:"outlet_id"`
}

// ownsOutlet reports whether the caller may manage items of an outlet
func ownsOutlet(c *gin.Context, outletID uint) (bool, error) {
	if middleware.GetRole(c) == models.RoleAdmin {
		return true, nil
	}
	var outlet models.Outlet
	if err := config.DB.First(&outlet, outletID).Error; err != nil {
		return false, err
	}
	return outlet.OwnerID == middleware.GetUserID(c), nil
}

func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Preload("Outlet").Find(&items).Error; err != nil {
		internalError(c, "Failed to list menu items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

func GetMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.Preload("Outlet").First(&item, id).Error; err != nil {
		notFoundError(c, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// CreateMenuItem adds a dish to an outlet the caller owns
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	var outlet models.Outlet
	if err := config.DB.First(&outlet, req.OutletID).Error; err != nil {
		validationError(c, "Outlet does not exist")
		return
	}
	if outlet.OwnerID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "You don't own this outlet")
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		OutletID:    req.OutletID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		writeError(c, err, "Menu item already exists")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

func UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		notFoundError(c, "Menu item not found")
		return
	}
	if ok, err := ownsOutlet(c, item.OutletID); err != nil || !ok {
		forbiddenError(c, "You don't own this outlet")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			validationError(c, "Price cannot be negative")
			return
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.OutletID != nil {
		if ok, err := ownsOutlet(c, *req.OutletID); err != nil {
			validationError(c, "Outlet does not exist")
			return
		} else if !ok {
			forbiddenError(c, "You don't own the target outlet")
			return
		}
		item.OutletID = *req.OutletID
	}

	if err := config.DB.Save(&item).Error; err != nil {
		writeError(c, err, "Menu item already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// DeleteMenuItem removes a dish and cascades to its order items
func DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		notFoundError(c, "Menu item not found")
		return
	}
	if ok, err := ownsOutlet(c, item.OutletID); err != nil || !ok {
		forbiddenError(c, "You don't own this outlet")
		return
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteMenuItemTree(tx, []uint{item.ID})
	})
	if err != nil {
		internalError(c, "Failed to delete menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
