package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
)

type fakeReservationStore struct {
	reservations map[uint]*models.Reservation
	updateErr    error
	updates      int
}

func (f *fakeReservationStore) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return reservation, nil
}

func (f *fakeReservationStore) ListOverlappingForRooms(ctx context.Context, roomIDs []uint, from, to time.Time, excludeReservationID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, reservation := range f.reservations {
		if reservation.ID == excludeReservationID || !reservation.Status.IsActive() {
			continue
		}
		if !Overlaps(reservation.CheckInDate, reservation.CheckOutDate, from, to) {
			continue
		}
		for _, roomID := range roomIDs {
			if slicesContains(reservation.BookedRoomIDs(), roomID) {
				out = append(out, *reservation)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReservationStore) Update(ctx context.Context, reservation *models.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.reservations[reservation.ID] = reservation
	return nil
}

func slicesContains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeRoomStore struct {
	rooms        map[uint]*models.Room
	updateErrFor map[uint]error
	updates      int
}

func (f *fakeRoomStore) ListByIDs(ctx context.Context, ids []uint) ([]*models.Room, error) {
	var out []*models.Room
	for _, id := range ids {
		if room, ok := f.rooms[id]; ok {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomStore) Update(ctx context.Context, room *models.Room) error {
	if err := f.updateErrFor[room.ID]; err != nil {
		return err
	}
	f.updates++
	return nil
}

func newTestLifecycle(reservations *fakeReservationStore, rooms *fakeRoomStore, now time.Time) *ReservationLifecycleService {
	service := NewReservationLifecycleService(reservations, rooms)
	service.now = func() time.Time { return now }
	return service
}

func TestLifecycleCheckInAndOut(t *testing.T) {
	reservation := testReservation(1, models.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5), 101)
	reservations := &fakeReservationStore{reservations: map[uint]*models.Reservation{1: &reservation}}
	rooms := &fakeRoomStore{rooms: map[uint]*models.Room{101: testRoom(101, models.RoomAvailable)}}
	service := newTestLifecycle(reservations, rooms, date(2024, 6, 1))

	updated, err := service.ChangeReservationStatus(context.Background(), 1, "CheckedIn")
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if updated.Status != models.ReservationCheckedIn {
		t.Fatalf("want checked_in, got %s", updated.Status)
	}
	if rooms.rooms[101].Status != models.RoomOccupied {
		t.Fatalf("room should be occupied, got %s", rooms.rooms[101].Status)
	}

	// Repeating the same change is a rejected no-op.
	if _, err := service.ChangeReservationStatus(context.Background(), 1, "CheckedIn"); err == nil {
		t.Fatal("repeated check-in should fail")
	} else {
		var transitionErr *InvalidTransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("want InvalidTransitionError, got %v", err)
		}
	}
	if rooms.rooms[101].Status != models.RoomOccupied {
		t.Fatal("failed transition must not touch the room")
	}

	service.now = func() time.Time { return date(2024, 6, 5) }
	updated, err = service.ChangeReservationStatus(context.Background(), 1, "checked_out")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if updated.Status != models.ReservationCheckedOut {
		t.Fatalf("want checked_out, got %s", updated.Status)
	}
	if rooms.rooms[101].Status != models.RoomAvailable {
		t.Fatalf("room should be free after checkout, got %s", rooms.rooms[101].Status)
	}
}

func TestLifecycleCheckoutWithBackToBack(t *testing.T) {
	leaving := testReservation(1, models.ReservationCheckedIn, date(2024, 6, 1), date(2024, 6, 5), 101)
	arriving := testReservation(2, models.ReservationCheckedIn, date(2024, 6, 5), date(2024, 6, 8), 101)
	reservations := &fakeReservationStore{reservations: map[uint]*models.Reservation{1: &leaving, 2: &arriving}}
	rooms := &fakeRoomStore{rooms: map[uint]*models.Room{101: testRoom(101, models.RoomOccupied)}}
	service := newTestLifecycle(reservations, rooms, date(2024, 6, 5))

	if _, err := service.ChangeReservationStatus(context.Background(), 1, "checked_out"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if rooms.rooms[101].Status != models.RoomOccupied {
		t.Fatalf("room claimed by the arriving guest should stay occupied, got %s", rooms.rooms[101].Status)
	}
}

func TestLifecycleUnknownStatus(t *testing.T) {
	service := newTestLifecycle(&fakeReservationStore{reservations: map[uint]*models.Reservation{}}, &fakeRoomStore{}, date(2024, 6, 1))

	_, err := service.ChangeReservationStatus(context.Background(), 1, "teleported")
	var statusErr *InvalidStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("want InvalidStatusError, got %v", err)
	}
	if statusErr.Name != "teleported" {
		t.Fatalf("error carries wrong name %q", statusErr.Name)
	}
}

func TestLifecycleReservationNotFound(t *testing.T) {
	service := newTestLifecycle(&fakeReservationStore{reservations: map[uint]*models.Reservation{}}, &fakeRoomStore{}, date(2024, 6, 1))

	_, err := service.ChangeReservationStatus(context.Background(), 99, "confirmed")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if notFound.Resource != "reservation" || notFound.ID != 99 {
		t.Fatalf("error carries wrong target %s/%d", notFound.Resource, notFound.ID)
	}
}

func TestLifecyclePartialWrite(t *testing.T) {
	reservation := testReservation(1, models.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5), 101, 102)
	reservations := &fakeReservationStore{reservations: map[uint]*models.Reservation{1: &reservation}}
	rooms := &fakeRoomStore{
		rooms: map[uint]*models.Room{
			101: testRoom(101, models.RoomAvailable),
			102: testRoom(102, models.RoomAvailable),
		},
		updateErrFor: map[uint]error{102: fmt.Errorf("connection reset")},
	}
	service := newTestLifecycle(reservations, rooms, date(2024, 6, 1))

	updated, err := service.ChangeReservationStatus(context.Background(), 1, "checked_in")
	var partial *PartialWriteError
	if !errors.As(err, &partial) {
		t.Fatalf("want PartialWriteError, got %v", err)
	}
	if updated == nil || updated.Status != models.ReservationCheckedIn {
		t.Fatal("reservation write should have succeeded before the room failure")
	}
	if reservations.updates != 1 {
		t.Fatalf("reservation update count = %d", reservations.updates)
	}
	if len(partial.FailedRoomIDs) != 1 || partial.FailedRoomIDs[0] != 102 {
		t.Fatalf("failed rooms = %v", partial.FailedRoomIDs)
	}
	if partial.ReservationID != 1 {
		t.Fatalf("partial write names reservation %d", partial.ReservationID)
	}
}

func TestLifecycleNoWriteOnRejectedTransition(t *testing.T) {
	reservation := testReservation(1, models.ReservationCheckedOut, date(2024, 6, 1), date(2024, 6, 5), 101)
	reservations := &fakeReservationStore{reservations: map[uint]*models.Reservation{1: &reservation}}
	rooms := &fakeRoomStore{rooms: map[uint]*models.Room{101: testRoom(101, models.RoomAvailable)}}
	service := newTestLifecycle(reservations, rooms, date(2024, 6, 1))

	if _, err := service.ChangeReservationStatus(context.Background(), 1, "cancelled"); err == nil {
		t.Fatal("cancelling a checked-out reservation should fail")
	}
	if reservations.updates != 0 || rooms.updates != 0 {
		t.Fatalf("rejected transition wrote to stores (%d reservation, %d room updates)", reservations.updates, rooms.updates)
	}
}

func TestCheckAvailabilityScoped(t *testing.T) {
	blocking := testReservation(1, models.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 5), 101)
	reservations := &fakeReservationStore{reservations: map[uint]*models.Reservation{1: &blocking}}
	service := newTestLifecycle(reservations, &fakeRoomStore{}, date(2024, 6, 1))

	available, err := service.CheckAvailability(context.Background(), 101, date(2024, 6, 3), date(2024, 6, 6), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if available {
		t.Fatal("room should be blocked")
	}

	available, err = service.CheckAvailability(context.Background(), 101, date(2024, 6, 5), date(2024, 6, 8), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Fatal("same-day turnover should be available")
	}

	if available, _ := service.CheckAvailability(context.Background(), 101, date(2024, 6, 6), date(2024, 6, 3), 0); available {
		t.Fatal("inverted range should never be available")
	}
}
