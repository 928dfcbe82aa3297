package services

import (
	"testing"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

func TestTotalCost(t *testing.T) {
	reservation := testReservation(1, models.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 4), 7)
	reservation.RoomBookings[0].PricePerNight = 120
	reservation.ServiceLineItems = []models.ServiceLineItem{
		{ServiceID: 1, Quantity: 2, UnitPrice: 15},
		{ServiceID: 2, Quantity: 1, UnitPrice: 40},
	}

	// 3 nights * 120 + 2*15 + 1*40
	if got := TotalCost(&reservation); got != 430 {
		t.Fatalf("TotalCost = %v, want 430", got)
	}
}

func TestTotalCostMultipleRooms(t *testing.T) {
	reservation := testReservation(1, models.ReservationConfirmed, date(2024, 6, 1), date(2024, 6, 3), 7, 8)
	reservation.RoomBookings[0].PricePerNight = 100
	reservation.RoomBookings[1].PricePerNight = 150

	if got := TotalCost(&reservation); got != 500 {
		t.Fatalf("TotalCost = %v, want 500", got)
	}
}
