package services

import (
	"fmt"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
)

// NotFoundError reports that the reservation or a referenced room does not
// exist. Never retried; maps to a 404 at the API layer.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// InvalidStatusError reports a status name that does not map to any known
// reservation status. Nothing is touched when this is returned.
type InvalidStatusError struct {
	Name string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("unknown reservation status %q", e.Name)
}

// InvalidTransitionError reports an illegal status change, carrying the
// rejected pair so callers can explain why.
type InvalidTransitionError struct {
	From models.ReservationStatus
	To   models.ReservationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal reservation transition %s -> %s", e.From, e.To)
}

// PartialWriteError reports that the reservation was persisted but one or more
// room status writes failed afterwards. The rooms listed need reconciling.
type PartialWriteError struct {
	ReservationID uint
	FailedRoomIDs []uint
	Err           error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("reservation %d saved but room status writes failed for rooms %v: %v",
		e.ReservationID, e.FailedRoomIDs, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
