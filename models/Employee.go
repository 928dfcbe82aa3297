package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee is a staff record for HR purposes, separate from the auth User.
type Employee struct {
	gorm.Model
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email" gorm:"index"`
	PhoneNumber string    `json:"phoneNumber"`
	Position    string    `json:"position" gorm:"size:64;index"` // receptionist, housekeeper, manager, ...
	BranchID    uint      `json:"branchID" gorm:"index;not null"`
	Salary      float64   `json:"salary"`
	HiredAt     time.Time `json:"hiredAt"`
	UserID      *uint     `json:"userID,omitempty" gorm:"index"`

	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
