package handlers

import (
	"net/http"

	"food-court-api/config"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTableRequest struct {
	TableNumber int                 `json:"table_number" binding:"required"`
	Status      *models.TableStatus `json:"status"`
}

type UpdateTableRequest struct {
	TableNumber *int                `json:"table_number"`
	Status      *models.TableStatus `json:"status"`
}

func validTableStatus(s models.TableStatus) bool {
	return s == models.TableAvailable || s == models.TableReserved
}

// ListTables returns every table and its current availability
func ListTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Find(&tables).Error; err != nil {
		internalError(c, "Failed to list tables")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func GetTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.Preload("Reservations").First(&table, id).Error; err != nil {
		notFoundError(c, "Table not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// CreateTable adds a table. Admin only (route-level guard).
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	table := models.Table{TableNumber: req.TableNumber, Status: models.TableAvailable}
	if req.Status != nil {
		if !validTableStatus(*req.Status) {
			validationError(c, "Status must be 'available' or 'reserved'")
			return
		}
		table.Status = *req.Status
	}

	if err := config.DB.Create(&table).Error; err != nil {
		writeError(c, err, "Table number already exists")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"table": table})
}

func UpdateTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		notFoundError(c, "Table not found")
		return
	}

	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.TableNumber != nil {
		table.TableNumber = *req.TableNumber
	}
	if req.Status != nil {
		if !validTableStatus(*req.Status) {
			validationError(c, "Status must be 'available' or 'reserved'")
			return
		}
		table.Status = *req.Status
	}

	if err := config.DB.Save(&table).Error; err != nil {
		writeError(c, err, "Table number already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// DeleteTable removes a table and cascades to its reservations
func DeleteTable(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		notFoundError(c, "Table not found")
		return
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// The table is going away, so its reservations go with it
		if err := tx.Where("table_id = ?", table.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&table).Error
	})
	if err != nil {
		internalError(c, "Failed to delete table")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}
