package models

import "gorm.io/gorm"

// Service is a chargeable hotel service (laundry, spa, airport pickup).
type Service struct {
	gorm.Model
	Name        string  `json:"name" gorm:"size:128;not null"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	BranchID    *uint   `json:"branchID,omitempty" gorm:"index"` // nil = offered at every branch
	IsActive    bool    `json:"isActive" gorm:"default:true"`
}
