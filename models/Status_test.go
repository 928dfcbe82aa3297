package models

import "testing"

func TestParseReservationStatus(t *testing.T) {
	cases := map[string]ReservationStatus{
		"pending":     ReservationPending,
		"Confirmed":   ReservationConfirmed,
		"CheckedIn":   ReservationCheckedIn,
		"checked_in":  ReservationCheckedIn,
		"checked-in":  ReservationCheckedIn,
		"checked out": ReservationCheckedOut,
		"CANCELLED":   ReservationCancelled,
		" confirmed ": ReservationConfirmed,
	}
	for name, want := range cases {
		got, ok := ParseReservationStatus(name)
		if !ok || got != want {
			t.Errorf("ParseReservationStatus(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}

	for _, name := range []string{"", "done", "checked", "pendingg"} {
		if _, ok := ParseReservationStatus(name); ok {
			t.Errorf("ParseReservationStatus(%q) should not match", name)
		}
	}
}

func TestParseRoomStatus(t *testing.T) {
	cases := map[string]RoomStatus{
		"available":         RoomAvailable,
		"Occupied":          RoomOccupied,
		"under_maintenance": RoomUnderMaintenance,
		"UnderMaintenance":  RoomUnderMaintenance,
	}
	for name, want := range cases {
		got, ok := ParseRoomStatus(name)
		if !ok || got != want {
			t.Errorf("ParseRoomStatus(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
	if _, ok := ParseRoomStatus("broken"); ok {
		t.Error(`ParseRoomStatus("broken") should not match`)
	}
}

func TestReservationStatusPredicates(t *testing.T) {
	active := []ReservationStatus{ReservationPending, ReservationConfirmed, ReservationCheckedIn}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("%s should be active", s)
		}
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []ReservationStatus{ReservationCheckedOut, ReservationCancelled} {
		if s.IsActive() {
			t.Errorf("%s should not be active", s)
		}
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}
