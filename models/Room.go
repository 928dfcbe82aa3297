package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is a physical room in a branch. Only Status is touched by the
// reservation lifecycle; everything else belongs to room management.
type Room struct {
	gorm.Model
	BranchID      uint           `json:"branchID" gorm:"not null;uniqueIndex:idx_branch_room_number"`
	Number        string         `json:"number" gorm:"size:16;uniqueIndex:idx_branch_room_number"`
	Type          string         `json:"type" gorm:"size:32;index"` // single, double, twin, suite
	Floor         int            `json:"floor"`
	Capacity      int            `json:"capacity" gorm:"default:2"`
	PricePerNight float64        `json:"pricePerNight"`
	Status        RoomStatus     `json:"status" gorm:"size:24;index;default:available"`
	Amenities     datatypes.JSON `json:"amenities"`
	Notes         string         `json:"notes"`

	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}
