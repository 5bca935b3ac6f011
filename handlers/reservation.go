package handlers

import (
	"errors"
	"net/http"
	"time"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReservationRequest struct {
	TableID     uint      `json:"table_id" binding:"required"`
	BookingTime time.Time `json:"booking_time" binding:"required"`
	NoOfPeople  int       `json:"no_of_people"`
	Status      string    `json:"status"`
	OrderID     *uint     `json:"order_id"`
	UserID      uint      `json:"user_id"` // admins may reserve on behalf of a user
}

type UpdateReservationRequest struct {
	TableID     *uint      `json:"table_id"`
	BookingTime *time.Time `json:"booking_time"`
	NoOfPeople  *int       `json:"no_of_people"`
	Status      *string    `json:"status"`
	OrderID     *uint      `json:"order_id"`
}

var (
	errTableNotAvailable = errors.New("table is not available")
	errTableNotFound     = errors.New("table does not exist")
)

// ListReservations returns reservations with their table and order.
// Admins see everything, everyone else sees their own.
func ListReservations(c *gin.Context) {
	query := config.DB.Preload("Table").Preload("Order")
	if middleware.GetRole(c) != models.RoleAdmin {
		query = query.Where("user_id = ?", middleware.GetUserID(c))
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		internalError(c, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func GetReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var reservation models.Reservation
	if err := config.DB.Preload("Table").Preload("Order").First(&reservation, id).Error; err != nil {
		notFoundError(c, "Reservation not found")
		return
	}
	if reservation.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "This is not your reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// CreateReservation books a table. The availability check, the flip to
// reserved and the reservation insert commit as one transaction, so
// two requests can never hold the same table.
func CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	userID := middleware.GetUserID(c)
	if req.UserID != 0 && middleware.GetRole(c) == models.RoleAdmin {
		userID = req.UserID
	}

	if req.OrderID != nil {
		var order models.Order
		if err := config.DB.First(&order, *req.OrderID).Error; err != nil {
			validationError(c, "Order does not exist")
			return
		}
	}

	reservation := models.Reservation{
		TableID:     req.TableID,
		BookingTime: req.BookingTime,
		NoOfPeople:  req.NoOfPeople,
		Status:      "confirmed",
		OrderID:     req.OrderID,
		UserID:      userID,
	}
	if req.Status != "" {
		reservation.Status = req.Status
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, req.TableID).Error; err != nil {
			return errTableNotFound
		}
		if table.Status != models.TableAvailable {
			return errTableNotAvailable
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		return tx.Model(&table).Update("status", models.TableReserved).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errTableNotFound):
			validationError(c, "Table does not exist")
		case errors.Is(err, errTableNotAvailable):
			validationError(c, "Table is not available")
		default:
			internalError(c, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

// UpdateReservation patches a reservation. When table_id changes, the
// old table is released and the new one claimed in the same
// transaction; if the new table is taken, nothing is applied.
func UpdateReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var reservation models.Reservation
	if err := config.DB.First(&reservation, id).Error; err != nil {
		notFoundError(c, "Reservation not found")
		return
	}
	if reservation.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "This is not your reservation")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if req.OrderID != nil {
		var order models.Order
		if err := config.DB.First(&order, *req.OrderID).Error; err != nil {
			validationError(c, "Order does not exist")
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.TableID != nil && *req.TableID != reservation.TableID {
			var newTable models.Table
			if err := tx.First(&newTable, *req.TableID).Error; err != nil {
				return errTableNotFound
			}
			if newTable.Status != models.TableAvailable {
				return errTableNotAvailable
			}
			if err := tx.Model(&models.Table{}).Where("id = ?", reservation.TableID).
				Update("status", models.TableAvailable).Error; err != nil {
				return err
			}
			if err := tx.Model(&newTable).Update("status", models.TableReserved).Error; err != nil {
				return err
			}
			reservation.TableID = *req.TableID
		}

		if req.BookingTime != nil {
			reservation.BookingTime = *req.BookingTime
		}
		if req.NoOfPeople != nil {
			reservation.NoOfPeople = *req.NoOfPeople
		}
		if req.Status != nil {
			reservation.Status = *req.Status
		}
		if req.OrderID != nil {
			reservation.OrderID = req.OrderID
		}

		return tx.Save(&reservation).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errTableNotFound):
			validationError(c, "Table does not exist")
		case errors.Is(err, errTableNotAvailable):
			validationError(c, "Table is not available")
		default:
			internalError(c, "Failed to update reservation")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// DeleteReservation releases the held table back to available before
// removing the reservation row, atomically.
func DeleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var reservation models.Reservation
	if err := config.DB.First(&reservation, id).Error; err != nil {
		notFoundError(c, "Reservation not found")
		return
	}
	if reservation.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		forbiddenError(c, "This is not your reservation")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Table{}).Where("id = ?", reservation.TableID).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
	if err != nil {
		internalError(c, "Failed to delete reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
