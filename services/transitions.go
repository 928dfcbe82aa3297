package services

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

// legalTransitions is the complete reservation state machine. A status absent
// from its own target list means X -> X is rejected like any other illegal
// pair; duplicate requests should surface, not silently succeed.
var legalTransitions = map[models.ReservationStatus][]models.ReservationStatus{
	models.ReservationPending:    {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed:  {models.ReservationCheckedIn, models.ReservationCancelled},
	models.ReservationCheckedIn:  {models.ReservationCheckedOut},
	models.ReservationCheckedOut: {},
	models.ReservationCancelled:  {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to models.ReservationStatus) bool {
	return slices.Contains(legalTransitions[from], to)
}

// TransitionStatus applies newStatus to the reservation if the change is
// legal, stamping the updated marker. On rejection the reservation is left
// untouched and the returned error carries the offending pair.
//
// This touches nothing but the reservation itself; room occupancy follows
// separately via SyncRoomStatus.
func TransitionStatus(reservation *models.Reservation, newStatus models.ReservationStatus) error {
	if !CanTransition(reservation.Status, newStatus) {
		return &InvalidTransitionError{From: reservation.Status, To: newStatus}
	}
	reservation.Status = newStatus
	reservation.UpdatedAt = time.Now()
	return nil
}
