package models

import "gorm.io/gorm"

// Notification is an in-app notification row; push delivery is best-effort on top.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"index;not null"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type" gorm:"size:48;index"` // reservation_status, payment_recorded, ...
	RefID   uint   `json:"refID"`
	RefType string `json:"refType" gorm:"size:32"`
	IsRead  bool   `json:"isRead" gorm:"default:false"`
}
