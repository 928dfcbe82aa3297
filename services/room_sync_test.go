package services

import (
	"testing"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

func testRoom(id uint, status models.RoomStatus) *models.Room {
	room := &models.Room{BranchID: 1, Number: "101", Status: status}
	room.ID = id
	return room
}

func TestSyncCheckInOccupies(t *testing.T) {
	reservation := testReservation(1, models.ReservationCheckedIn, date(2024, 6, 1), date(2024, 6, 5), 7, 8)
	rooms := []*models.Room{testRoom(7, models.RoomAvailable), testRoom(8, models.RoomAvailable)}

	SyncRoomStatus(&reservation, rooms, nil, date(2024, 6, 1))

	for _, room := range rooms {
		if room.Status != models.RoomOccupied {
			t.Errorf("room %d: want occupied, got %s", room.ID, room.Status)
		}
	}
}

func TestSyncCheckOutReleases(t *testing.T) {
	reservation := testReservation(1, models.ReservationCheckedOut, date(2024, 6, 1), date(2024, 6, 5), 7)
	rooms := []*models.Room{testRoom(7, models.RoomOccupied)}

	SyncRoomStatus(&reservation, rooms, nil, date(2024, 6, 5))

	if rooms[0].Status != models.RoomAvailable {
		t.Fatalf("want available, got %s", rooms[0].Status)
	}
}

func TestSyncBackToBackKeepsOccupied(t *testing.T) {
	reservation := testReservation(1, models.ReservationCheckedOut, date(2024, 6, 1), date(2024, 6, 5), 7)
	rooms := []*models.Room{testRoom(7, models.RoomOccupied)}
	others := []models.Reservation{
		testReservation(2, models.ReservationCheckedIn, date(2024, 6, 5), date(2024, 6, 8), 7),
	}

	SyncRoomStatus(&reservation, rooms, others, date(2024, 6, 5))

	if rooms[0].Status != models.RoomOccupied {
		t.Fatalf("back-to-back claim should keep room occupied, got %s", rooms[0].Status)
	}
}

func TestSyncMaintenanceWins(t *testing.T) {
	for _, status := range []models.ReservationStatus{models.ReservationCheckedIn, models.ReservationCheckedOut, models.ReservationCancelled} {
		reservation := testReservation(1, status, date(2024, 6, 1), date(2024, 6, 5), 7)
		rooms := []*models.Room{testRoom(7, models.RoomUnderMaintenance)}

		SyncRoomStatus(&reservation, rooms, nil, date(2024, 6, 2))

		if rooms[0].Status != models.RoomUnderMaintenance {
			t.Errorf("%s: maintenance room changed to %s", status, rooms[0].Status)
		}
	}
}

func TestSyncPendingConfirmedNoChange(t *testing.T) {
	for _, status := range []models.ReservationStatus{models.ReservationPending, models.ReservationConfirmed} {
		reservation := testReservation(1, status, date(2024, 6, 1), date(2024, 6, 5), 7)
		rooms := []*models.Room{testRoom(7, models.RoomAvailable)}

		SyncRoomStatus(&reservation, rooms, nil, date(2024, 6, 1))

		if rooms[0].Status != models.RoomAvailable {
			t.Errorf("%s: room status changed to %s", status, rooms[0].Status)
		}
	}
}

func TestSyncSkipsUnbookedRooms(t *testing.T) {
	reservation := testReservation(1, models.ReservationCheckedIn, date(2024, 6, 1), date(2024, 6, 5), 7)
	other := testRoom(9, models.RoomAvailable)

	SyncRoomStatus(&reservation, []*models.Room{other}, nil, date(2024, 6, 1))

	if other.Status != models.RoomAvailable {
		t.Fatalf("unbooked room changed to %s", other.Status)
	}
}

func TestSyncIdempotent(t *testing.T) {
	reservation := testReservation(1, models.ReservationCheckedIn, date(2024, 6, 1), date(2024, 6, 5), 7)
	rooms := []*models.Room{testRoom(7, models.RoomAvailable)}

	SyncRoomStatus(&reservation, rooms, nil, date(2024, 6, 1))
	first := rooms[0].Status
	SyncRoomStatus(&reservation, rooms, nil, date(2024, 6, 1))

	if rooms[0].Status != first {
		t.Fatalf("second sync changed status from %s to %s", first, rooms[0].Status)
	}
}
