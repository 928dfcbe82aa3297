package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records money captured or refunded against a reservation. There is
// no gateway integration here; staff record payments taken at the desk.
type Payment struct {
	gorm.Model
	ReservationID uint       `json:"reservationID" gorm:"index;not null"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method" gorm:"size:32"` // cash, card, bank_transfer
	Status        string     `json:"status" gorm:"size:20;index;default:pending"` // pending, captured, refunded
	Reference     string     `json:"reference" gorm:"size:64"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`

	Reservation *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID"`
}
