package handlers

import (
	"food-court-api/models"

	"gorm.io/gorm"
)

// Cascade helpers. Children go before parents inside one transaction,
// so no orphaned foreign key can survive a partial failure. Done at
// the ORM level rather than trusting the driver to enforce it.

func deleteMenuItemTree(tx *gorm.DB, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	if err := tx.Where("menu_item_id IN ?", itemIDs).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", itemIDs).Delete(&models.MenuItem{}).Error
}

func deleteOutletTree(tx *gorm.DB, outletIDs []uint) error {
	if len(outletIDs) == 0 {
		return nil
	}
	var itemIDs []uint
	if err := tx.Model(&models.MenuItem{}).Where("outlet_id IN ?", outletIDs).Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if err := deleteMenuItemTree(tx, itemIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", outletIDs).Delete(&models.Outlet{}).Error
}

func deleteOrderTree(tx *gorm.DB, orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	// Reservations outlive their order, just unlinked
	if err := tx.Model(&models.Reservation{}).Where("order_id IN ?", orderIDs).
		Update("order_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", orderIDs).Delete(&models.Order{}).Error
}

// deleteReservations releases every held table before dropping the rows
func deleteReservations(tx *gorm.DB, reservations []models.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.ID)
		if err := tx.Model(&models.Table{}).Where("id = ?", res.TableID).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", ids).Delete(&models.Reservation{}).Error
}

func deleteUserTree(tx *gorm.DB, user *models.User) error {
	var reservations []models.Reservation
	if err := tx.Where("user_id = ?", user.ID).Find(&reservations).Error; err != nil {
		return err
	}
	if err := deleteReservations(tx, reservations); err != nil {
		return err
	}

	var orderIDs []uint
	if err := tx.Model(&models.Order{}).Where("user_id = ?", user.ID).Pluck("id", &orderIDs).Error; err != nil {
		return err
	}
	if err := deleteOrderTree(tx, orderIDs); err != nil {
		return err
	}

	var outletIDs []uint
	if err := tx.Model(&models.Outlet{}).Where("owner_id = ?", user.ID).Pluck("id", &outletIDs).Error; err != nil {
		return err
	}
	if err := deleteOutletTree(tx, outletIDs); err != nil {
		return err
	}

	return tx.Delete(user).Error
}
