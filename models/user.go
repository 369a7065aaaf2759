package models

import "time"

type UserProfile struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	PhoneNumber    string    `gorm:"uniqueIndex;not null" json:"phone_number"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	DefaultAddress Address   `gorm:"serializer:json" json:"default_address"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Address is stored as a jsonb snapshot, both as a profile default and
// embedded on each order at checkout time.
type Address struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}
