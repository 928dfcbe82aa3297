package services

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

// Stay windows are half-open: [checkIn, checkOut). A reservation checking out
// on day D and another checking in on day D share the room without conflict,
// which is the standard same-day turnover convention.

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsRoomAvailable reports whether the room can host a stay over
// [checkIn, checkOut) given the reservations in scope. Only active
// reservations (pending, confirmed, checked-in) block; cancelled and
// checked-out ones never do. excludeReservationID lets an edit-in-place
// re-check ignore the reservation being edited; pass 0 to exclude nothing.
//
// An inverted or empty date range is reported as not available rather than an
// error, keeping this a plain predicate.
func IsRoomAvailable(roomID uint, checkIn, checkOut time.Time, reservations []models.Reservation, excludeReservationID uint) bool {
	if !checkIn.Before(checkOut) {
		return false
	}
	for i := range reservations {
		reservation := &reservations[i]
		if reservation.ID == excludeReservationID {
			continue
		}
		if !reservation.Status.IsActive() {
			continue
		}
		if !slices.Contains(reservation.BookedRoomIDs(), roomID) {
			continue
		}
		if Overlaps(reservation.CheckInDate, reservation.CheckOutDate, checkIn, checkOut) {
			return false
		}
	}
	return true
}

// RoomClaimedOn reports whether some active reservation other than
// excludeReservationID books the room for a window containing day.
func RoomClaimedOn(roomID uint, day time.Time, reservations []models.Reservation, excludeReservationID uint) bool {
	return !IsRoomAvailable(roomID, day, day.AddDate(0, 0, 1), reservations, excludeReservationID)
}

// DateOnly truncates a timestamp to midnight in its own location, the
// granularity all stay windows use.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
