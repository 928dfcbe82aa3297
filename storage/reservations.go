package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

// ReservationStore persists reservations with their owned room bookings and
// service line items.
type ReservationStore struct {
	db *gorm.DB
}

func NewReservationStore(db *gorm.DB) *ReservationStore {
	return &ReservationStore{db: db}
}

var activeReservationStatuses = []models.ReservationStatus{
	models.ReservationPending,
	models.ReservationConfirmed,
	models.ReservationCheckedIn,
}

func (s *ReservationStore) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).
		Preload("RoomBookings").
		Preload("ServiceLineItems").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// ListOverlappingForRooms returns active reservations whose [check_in_date,
// check_out_date) window overlaps [from, to) for any of the given rooms.
// The query is scoped by room id and date range; it never scans the full
// reservations table.
func (s *ReservationStore) ListOverlappingForRooms(ctx context.Context, roomIDs []uint, from, to time.Time, excludeReservationID uint) ([]models.Reservation, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	var reservations []models.Reservation
	q := s.db.WithContext(ctx).
		Distinct("reservations.*").
		Joins("JOIN room_bookings ON room_bookings.reservation_id = reservations.id").
		Where("room_bookings.room_id IN ?", roomIDs).
		Where("reservations.status IN ?", activeReservationStatuses).
		Where("reservations.check_in_date < ? AND reservations.check_out_date > ?", to, from)
	if excludeReservationID != 0 {
		q = q.Where("reservations.id <> ?", excludeReservationID)
	}
	if err := q.Preload("RoomBookings").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationStore) Update(ctx context.Context, reservation *models.Reservation) error {
	return s.db.WithContext(ctx).Save(reservation).Error
}

// Create persists a new reservation together with its owned bookings and line
// items in one insert.
func (s *ReservationStore) Create(ctx context.Context, reservation *models.Reservation) error {
	return s.db.WithContext(ctx).Create(reservation).Error
}
