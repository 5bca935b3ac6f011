package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateOutletRequest struct {
	Name        string `json:"name" binding:"required"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CuisineID   uint   `json:"cuisine_id" binding:"required"`
	OwnerID     uint   `json:"owner_id"` // admins may create on behalf of an owner
}

type UpdateOutletRequest struct {
	Name        *string `json:"name"`
	Contact     *string `json:"contact"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	CuisineID   *uint   `json:"cuisine_id"`
}

// ListOutlets returns all outlets with cuisine and menu for browsing
func ListOutlets(c *gin.Context) {
	var outlets []models.Outlet
	if err := config.DB.Preload("Cuisine").Preload("MenuItems").Find(&outlets).Error; err != nil {
		internalError(c, "Failed to list outlets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"outlets": outlets})
}

func GetOutlet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var outlet models.Outlet
	if err := config.DB.Preload("Cuisine").Preload("MenuItems").First(&outlet, id).Error; err != nil {
		notFoundError(c, "Outlet not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"outlet": outlet})
}

// CreateOutlet lets an owner open a stall under a cuisine
func CreateOutlet(c *gin.Context) {
	var req CreateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	var cuisine models.Cuisine
	if err := config.DB.First(&cuisine, req.CuisineID).Error; err != nil {
		validationError(c, "Cuisine does not exist")
		return
	}

	ownerID := middleware.GetUserID(c)
	if req.OwnerID != 0 && middleware.GetRole(c) == models.RoleAdmin {
		ownerID = req.OwnerID
	}

	outlet := models.Outlet{
		Name:        req.Name,
		Contact:     req.Contact,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CuisineID:   req.CuisineID,
		OwnerID:     ownerID,
	}
	if err := config.DB.Create(&outlet).Error; err != nil {
		writeError(c, err, "Outlet already exists")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"outlet": outlet})
}

func UpdateOutlet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var outlet models.Outlet
	if err := config.DB.First(&outlet, id).Error; err != nil {
		notFoundError(c, "Outlet not found")
		return
	}
	if outlet.OwnerID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "You don't own this outlet")
		return
	}

	var req UpdateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.Name != nil {
		outlet.Name = *req.Name
	}
	if req.Contact != nil {
		outlet.Contact = *req.Contact
	}
	if req.Description != nil {
		outlet.Description = *req.Description
	}
	if req.ImageURL != nil {
		outlet.ImageURL = *req.ImageURL
	}
	if req.CuisineID != nil {
		var cuisine models.Cuisine
		if err := config.DB.First(&cuisine, *req.CuisineID).Error; err != nil {
			validationError(c, "Cuisine does not exist")
			return
		}
		outlet.CuisineID = *req.CuisineID
	}

	if err := config.DB.Save(&outlet).Error; err != nil {
		writeError(c, err, "Outlet already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"outlet": outlet})
}

// DeleteOutlet removes an outlet and cascades to its menu items and
// their order items.
func DeleteOutlet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var outlet models.Outlet
	if err := config.DB.First(&outlet, id).Error; err != nil {
		notFoundError(c, "Outlet not found")
		return
	}
	if outlet.OwnerID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "You don't own this outlet")
		return
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteOutletTree(tx, []uint{outlet.ID})
	})
	if err != nil {
		internalError(c, "Failed to delete outlet")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outlet deleted successfully"})
}
