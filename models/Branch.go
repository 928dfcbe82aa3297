package models

import "gorm.io/gorm"

// Branch is one hotel property.
type Branch struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:128;not null"`
	Address     string `json:"address"`
	City        string `json:"city" gorm:"size:64;index"`
	Country     string `json:"country" gorm:"size:64"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:BranchID"`
}
