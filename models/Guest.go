package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Guest is a person who stays at the hotel. A guest may optionally be linked
// to an auth User account (for the self-service booking client).
type Guest struct {
	gorm.Model
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email" gorm:"index"`
	PhoneNumber string         `json:"phoneNumber" gorm:"index"`
	IDType      string         `json:"idType"`   // passport, national_id, driving_license
	IDNumber    string         `json:"idNumber"` // document number, not validated here
	Address     string         `json:"address"`
	Nationality string         `json:"nationality"`
	Preferences datatypes.JSON `json:"preferences"`
	Notes       string         `json:"notes"`
	UserID      *uint          `json:"userID,omitempty" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
