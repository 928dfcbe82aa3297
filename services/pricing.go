package services

import "github.com/HazemSoftPro/HotelTransylvania-sub001/models"

// TotalCost recomputes a reservation's total from its room bookings and
// service line items. The total is always derived, never edited directly.
func TotalCost(reservation *models.Reservation) float64 {
	nights := reservation.Nights()
	if nights < 1 {
		nights = 1
	}

	var total float64
	for _, booking := range reservation.RoomBookings {
		total += booking.PricePerNight * float64(nights)
	}
	for _, item := range reservation.ServiceLineItems {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
