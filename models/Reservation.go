package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation models a guest's stay: a date window plus the rooms and services
// booked for it. Room bookings and service line items are owned by the
// reservation and live and die with it.
type Reservation struct {
	gorm.Model
	GuestID         uint              `json:"guestID" gorm:"index;not null"`
	CheckInDate     time.Time         `json:"checkInDate" gorm:"type:date;index;not null"`
	CheckOutDate    time.Time         `json:"checkOutDate" gorm:"type:date;index;not null"`
	ReservationDate time.Time         `json:"reservationDate"` // set at creation, never updated
	Status          ReservationStatus `json:"status" gorm:"size:20;index"`
	TotalCost       float64           `json:"totalCost"` // derived from bookings + line items
	Note            string            `json:"note"`

	RoomBookings     []RoomBooking     `json:"roomBookings" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	ServiceLineItems []ServiceLineItem `json:"serviceLineItems" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`

	Guest *Guest `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
}

// RoomBooking pins one room to a reservation at the nightly price agreed at
// booking time, so later room price changes don't alter past reservations.
type RoomBooking struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ReservationID uint    `json:"reservationID" gorm:"index;not null"`
	RoomID        uint    `json:"roomID" gorm:"index;not null"`
	PricePerNight float64 `json:"pricePerNight"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// ServiceLineItem is a chargeable extra (laundry, spa, minibar) added to a stay.
type ServiceLineItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ReservationID uint    `json:"reservationID" gorm:"index;not null"`
	ServiceID     uint    `json:"serviceID" gorm:"index;not null"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`

	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

// Nights returns the length of the stay in nights; the window is half-open so
// the checkout day is not counted.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// BookedRoomIDs returns the distinct room ids referenced by this reservation's
// bookings, in booking order.
func (r *Reservation) BookedRoomIDs() []uint {
	ids := make([]uint, 0, len(r.RoomBookings))
	seen := make(map[uint]bool, len(r.RoomBookings))
	for _, booking := range r.RoomBookings {
		if !seen[booking.RoomID] {
			seen[booking.RoomID] = true
			ids = append(ids, booking.RoomID)
		}
	}
	return ids
}
