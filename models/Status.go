package models

import "strings"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

var reservationStatusNames = map[string]ReservationStatus{
	"pending":    ReservationPending,
	"confirmed":  ReservationConfirmed,
	"checkedin":  ReservationCheckedIn,
	"checkedout": ReservationCheckedOut,
	"cancelled":  ReservationCancelled,
}

// ParseReservationStatus resolves a client-supplied status name, case-insensitively
// and ignoring separators, so "CheckedIn", "checked_in" and "checked-in" all match.
func ParseReservationStatus(name string) (ReservationStatus, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	status, ok := reservationStatusNames[key]
	return status, ok
}

// IsActive reports whether the reservation can block availability or claim a room.
// Cancelled and checked-out reservations never do.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationCheckedIn
}

// IsTerminal reports whether no further transition is legal from this status.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationCheckedOut || s == ReservationCancelled
}

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable        RoomStatus = "available"
	RoomOccupied         RoomStatus = "occupied"
	RoomUnderMaintenance RoomStatus = "under_maintenance"
)

var roomStatusNames = map[string]RoomStatus{
	"available":        RoomAvailable,
	"occupied":         RoomOccupied,
	"undermaintenance": RoomUnderMaintenance,
}

func ParseRoomStatus(name string) (RoomStatus, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	status, ok := roomStatusNames[key]
	return status, ok
}
