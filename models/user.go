package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r UserRole) bool {
	return r == RoleCustomer || r == RoleOwner || r == RoleAdmin
}

type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"uniqueIndex;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"not null"`
	Phone        string   `json:"phone_no"`
	Role         UserRole `json:"role" gorm:"not null;default:'customer'"`

	// Children cascade away with their user
	Outlets      []Outlet      `json:"outlets,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Orders       []Order       `json:"orders,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
