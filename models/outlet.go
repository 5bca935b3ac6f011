package models

import "time"

type Cuisine struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	ImageURL string `json:"image_url"`

	Outlets []Outlet `json:"outlets,omitempty" gorm:"foreignKey:CuisineID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Outlet struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	CuisineID uint     `json:"cuisine_id" gorm:"not null"`
	Cuisine   *Cuisine `json:"cuisine,omitempty" gorm:"foreignKey:CuisineID"`
	OwnerID   uint     `json:"owner_id" gorm:"not null"`
	Owner     *User    `json:"-" gorm:"foreignKey:OwnerID"`

	MenuItems []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:OutletID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Price       int    `json:"price" gorm:"not null"` // whole currency units, no subdivision
	Category    string `json:"category"`

	OutletID uint    `json:"outlet_id" gorm:"not null"`
	Outlet   *Outlet `json:"outlet,omitempty" gorm:"foreignKey:OutletID"`

	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
