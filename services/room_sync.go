package services

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

// SyncRoomStatus brings room occupancy in line with the reservation's status.
// Rooms are claimed physically at check-in, not at confirmation, mirroring
// front-desk practice: a confirmed reservation is a promise, not an occupancy.
//
//   - checked_in: every booked room becomes occupied.
//   - checked_out / cancelled: every booked room reverts to available, unless
//     another active reservation's window contains today (back-to-back
//     bookings keep the room occupied).
//   - pending / confirmed: no room change.
//
// A room under maintenance is never touched; maintenance is an external
// signal with higher priority than any reservation-driven change.
//
// rooms are mutated in place and not persisted here. others must hold the
// reservations that could claim one of the booked rooms on the day of now,
// excluding the reservation itself.
func SyncRoomStatus(reservation *models.Reservation, rooms []*models.Room, others []models.Reservation, now time.Time) {
	booked := reservation.BookedRoomIDs()
	today := DateOnly(now)

	for _, room := range rooms {
		if !slices.Contains(booked, room.ID) {
			continue
		}
		if room.Status == models.RoomUnderMaintenance {
			continue
		}

		switch reservation.Status {
		case models.ReservationCheckedIn:
			room.Status = models.RoomOccupied
		case models.ReservationCheckedOut, models.ReservationCancelled:
			if RoomClaimedOn(room.ID, today, others, reservation.ID) {
				room.Status = models.RoomOccupied
			} else {
				room.Status = models.RoomAvailable
			}
		}
	}
}
