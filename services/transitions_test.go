package services

import (
	"errors"
	"testing"
	"time"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

func TestTransitionTable(t *testing.T) {
	all := []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationCheckedIn,
		models.ReservationCheckedOut,
		models.ReservationCancelled,
	}
	legal := map[models.ReservationStatus]map[models.ReservationStatus]bool{
		models.ReservationPending:   {models.ReservationConfirmed: true, models.ReservationCancelled: true},
		models.ReservationConfirmed: {models.ReservationCheckedIn: true, models.ReservationCancelled: true},
		models.ReservationCheckedIn: {models.ReservationCheckedOut: true},
	}

	for _, from := range all {
		for _, to := range all {
			reservation := testReservation(1, from, date(2024, 6, 1), date(2024, 6, 5), 7)
			err := TransitionStatus(&reservation, to)
			want := legal[from][to]
			if want {
				if err != nil {
					t.Errorf("%s -> %s: unexpected error %v", from, to, err)
					continue
				}
				if reservation.Status != to {
					t.Errorf("%s -> %s: status not applied, got %s", from, to, reservation.Status)
				}
				continue
			}
			var transitionErr *InvalidTransitionError
			if !errors.As(err, &transitionErr) {
				t.Errorf("%s -> %s: want InvalidTransitionError, got %v", from, to, err)
				continue
			}
			if transitionErr.From != from || transitionErr.To != to {
				t.Errorf("%s -> %s: error carries wrong pair %s -> %s", from, to, transitionErr.From, transitionErr.To)
			}
			if reservation.Status != from {
				t.Errorf("%s -> %s: rejected transition mutated status to %s", from, to, reservation.Status)
			}
		}
	}
}

func TestTransitionStampsUpdatedAt(t *testing.T) {
	reservation := testReservation(1, models.ReservationPending, date(2024, 6, 1), date(2024, 6, 5), 7)
	before := time.Now().Add(-time.Hour)
	reservation.UpdatedAt = before

	if err := TransitionStatus(&reservation, models.ReservationConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reservation.UpdatedAt.After(before) {
		t.Fatal("UpdatedAt not refreshed")
	}
}
