package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCuisineRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

type UpdateCuisineRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
}

// ListCuisines returns all cuisines with their outlets
func ListCuisines(c *gin.Context) {
	var cuisines []models.Cuisine
	if err := config.DB.Preload("Outlets").Find(&cuisines).Error; err != nil {
		internalError(c, "Failed to list cuisines")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cuisines": cuisines})
}

func GetCuisine(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var cuisine models.Cuisine
	if err := config.DB.Preload("Outlets").First(&cuisine, id).Error; err != nil {
		notFoundError(c, "Cuisine not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cuisine": cuisine})
}

// CreateCuisine adds a cuisine. Admin only (route-level guard).
func CreateCuisine(c *gin.Context) {
	var req CreateCuisineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	cuisine := models.Cuisine{Name: req.Name, ImageURL: req.ImageURL}
	if err := config.DB.Create(&cuisine).Error; err != nil {
		writeError(c, err, "Cuisine already exists")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cuisine": cuisine})
}

func UpdateCuisine(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var cuisine models.Cuisine
	if err := config.DB.First(&cuisine, id).Error; err != nil {
		notFoundError(c, "Cuisine not found")
		return
	}

	var req UpdateCuisineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.Name != nil {
		cuisine.Name = *req.Name
	}
	if req.ImageURL != nil {
		cuisine.ImageURL = *req.ImageURL
	}

	if err := config.DB.Save(&cuisine).Error; err != nil {
		writeError(c, err, "Cuisine already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cuisine": cuisine})
}

// DeleteCuisine removes a cuisine; its outlets, their menu items and
// those items' order items cascade away with it.
func DeleteCuisine(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var cuisine models.Cuisine
	if err := config.DB.First(&cuisine, id).Error; err != nil {
		notFoundError(c, "Cuisine not found")
		return
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var outletIDs []uint
		if err := tx.Model(&models.Outlet{}).Where("cuisine_id = ?", cuisine.ID).Pluck("id", &outletIDs).Error; err != nil {
			return err
		}
		if err := deleteOutletTree(tx, outletIDs); err != nil {
			return err
		}
		return tx.Delete(&cuisine).Error
	})
	if err != nil {
		internalError(c, "Failed to delete cuisine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cuisine deleted successfully"})
}
