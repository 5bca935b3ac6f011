package models

import "time"

type Order struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Status     string  `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice float64 `json:"total_price" gorm:"not null;default:0"`

	UserID uint  `json:"user_id" gorm:"not null"`
	User   *User `json:"-" gorm:"foreignKey:UserID"`

	OrderItems  []OrderItem  `json:"order_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Reservation *Reservation `json:"reservation,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`

	// Set once at insert, never touched on patch
	CreatedAt time.Time `json:"created_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Quantity int     `json:"quantity" gorm:"not null"`
	SubTotal float64 `json:"sub_total"`

	OrderID    uint      `json:"order_id" gorm:"not null"`
	Order      *Order    `json:"-" gorm:"foreignKey:OrderID"`
	MenuItemID uint      `json:"menuitem_id" gorm:"not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
}
