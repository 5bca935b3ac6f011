package models

import "time"

// TableStatus replaces the legacy "yes"/"no" availability string
// with a single enumerated representation.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

type Table struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TableNumber int         `json:"table_number" gorm:"uniqueIndex;not null"`
	Status      TableStatus `json:"status" gorm:"not null;default:'available'"`

	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:TableID;constraint:OnDelete:CASCADE"`
}

type Reservation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BookingTime time.Time `json:"booking_time" gorm:"not null"`
	NoOfPeople  int       `json:"no_of_people"`
	Status      string    `json:"status" gorm:"not null;default:'confirmed'"`

	UserID  uint   `json:"user_id" gorm:"not null"`
	User    *User  `json:"-" gorm:"foreignKey:UserID"`
	TableID uint   `json:"table_id" gorm:"not null"`
	Table   *Table `json:"table,omitempty" gorm:"foreignKey:TableID"`
	OrderID *uint  `json:"order_id"`
	Order   *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"created_at"`
}
