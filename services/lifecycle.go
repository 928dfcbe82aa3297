package services

import (
	"context"
	"errors"
	"time"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
)

// ReservationStore is the persistence contract for reservations. GetByID must
// load the owned room bookings and service line items with the reservation and
// return storage.ErrNotFound when the id does not exist.
// ListOverlappingForRooms returns the active reservations whose stay window
// overlaps [from, to) for any of the given rooms, excluding
// excludeReservationID; implementations should query by room id and date
// range, not scan the whole table.
type ReservationStore interface {
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	ListOverlappingForRooms(ctx context.Context, roomIDs []uint, from, to time.Time, excludeReservationID uint) ([]models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
}

// RoomStore is the persistence contract for rooms as the lifecycle needs them.
type RoomStore interface {
	ListByIDs(ctx context.Context, ids []uint) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
}

// ReservationLifecycleService coordinates a reservation status change: it
// validates the transition, derives the room occupancy side effects, and
// persists both. Callers must serialize concurrent changes to one reservation
// (the API layer holds a per-reservation lock around each call).
type ReservationLifecycleService struct {
	reservations ReservationStore
	rooms        RoomStore
	now          func() time.Time
}

func NewReservationLifecycleService(reservations ReservationStore, rooms RoomStore) *ReservationLifecycleService {
	return &ReservationLifecycleService{
		reservations: reservations,
		rooms:        rooms,
		now:          time.Now,
	}
}

// ChangeReservationStatus moves the reservation to the named status and syncs
// the booked rooms' occupancy. statusName is matched case-insensitively.
//
// Failure modes: *InvalidStatusError (unknown name), *NotFoundError,
// *InvalidTransitionError (illegal or no-op change), *PartialWriteError (the
// reservation was saved but a room write failed; the caller must surface this
// for reconciliation rather than swallow it). Store read errors propagate
// unchanged. Nothing is written before all validation has passed.
func (s *ReservationLifecycleService) ChangeReservationStatus(ctx context.Context, reservationID uint, statusName string) (*models.Reservation, error) {
	newStatus, ok := models.ParseReservationStatus(statusName)
	if !ok {
		return nil, &InvalidStatusError{Name: statusName}
	}

	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &NotFoundError{Resource: "reservation", ID: reservationID}
		}
		return nil, err
	}

	if err := TransitionStatus(reservation, newStatus); err != nil {
		return nil, err
	}

	roomIDs := reservation.BookedRoomIDs()
	rooms, err := s.rooms.ListByIDs(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	today := DateOnly(s.now())
	others, err := s.reservations.ListOverlappingForRooms(ctx, roomIDs, today, today.AddDate(0, 0, 1), reservation.ID)
	if err != nil {
		return nil, err
	}

	SyncRoomStatus(reservation, rooms, others, s.now())

	if err := s.reservations.Update(ctx, reservation); err != nil {
		return nil, err
	}

	var failedRooms []uint
	var lastErr error
	for _, room := range rooms {
		if err := s.rooms.Update(ctx, room); err != nil {
			failedRooms = append(failedRooms, room.ID)
			lastErr = err
		}
	}
	if lastErr != nil {
		return reservation, &PartialWriteError{
			ReservationID: reservation.ID,
			FailedRoomIDs: failedRooms,
			Err:           lastErr,
		}
	}

	return reservation, nil
}

// CheckAvailability answers whether the room can host a stay over
// [checkIn, checkOut), using a query scoped to that room and window. Pass
// excludeReservationID when re-checking during an edit; 0 otherwise.
func (s *ReservationLifecycleService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time, excludeReservationID uint) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, nil
	}
	overlapping, err := s.reservations.ListOverlappingForRooms(ctx, []uint{roomID}, checkIn, checkOut, excludeReservationID)
	if err != nil {
		return false, err
	}
	return IsRoomAvailable(roomID, checkIn, checkOut, overlapping, excludeReservationID), nil
}
