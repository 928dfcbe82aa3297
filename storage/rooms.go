package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

// RoomStore persists rooms for the reservation lifecycle.
type RoomStore struct {
	db *gorm.DB
}

func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

func (s *RoomStore) ListByIDs(ctx context.Context, ids []uint) ([]*models.Room, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rooms []*models.Room
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomStore) Update(ctx context.Context, room *models.Room) error {
	return s.db.WithContext(ctx).Save(room).Error
}
