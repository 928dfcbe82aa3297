package routes

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/services"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

const bookingLockTTL = 10 * time.Second

func newLifecycleService() *services.ReservationLifecycleService {
	return services.NewReservationLifecycleService(
		storage.NewReservationStore(storage.DB),
		storage.NewRoomStore(storage.DB),
	)
}

type ServiceLineInput struct {
	ServiceID uint `json:"serviceID" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

type CreateReservationInput struct {
	GuestID      uint               `json:"guestID" validate:"required"`
	CheckInDate  time.Time          `json:"checkInDate" validate:"required"`
	CheckOutDate time.Time          `json:"checkOutDate" validate:"required"`
	RoomIDs      []uint             `json:"roomIDs" validate:"required,min=1"`
	Services     []ServiceLineInput `json:"services" validate:"dive"`
	Confirm      bool               `json:"confirm"` // front desk can confirm immediately
	Note         string             `json:"note"`
}

// CreateReservation books rooms for a guest. The availability check and the
// insert run under one advisory lock per room, so two concurrent requests for
// the same room cannot both pass the check before either commits.
func CreateReservation(ctx iris.Context) {
	var input CreateReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn := services.DateOnly(input.CheckInDate)
	checkOut := services.DateOnly(input.CheckOutDate)
	if !checkIn.Before(checkOut) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "checkInDate must be before checkOutDate", ctx)
		return
	}

	var guest models.Guest
	if err := storage.DB.First(&guest, input.GuestID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Guest not found", ctx)
		return
	}

	var rooms []models.Room
	if err := storage.DB.Where("id IN ?", input.RoomIDs).Find(&rooms).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if len(rooms) != len(dedupeIDs(input.RoomIDs)) {
		utils.CreateError(iris.StatusNotFound, "Not Found", "One or more rooms do not exist", ctx)
		return
	}

	// Lock rooms in id order so competing multi-room requests meet in a
	// consistent sequence.
	roomIDs := dedupeIDs(input.RoomIDs)
	sort.Slice(roomIDs, func(i, j int) bool { return roomIDs[i] < roomIDs[j] })

	reqCtx := ctx.Request().Context()
	var held []string
	defer func() {
		for _, key := range held {
			storage.ReleaseLock(reqCtx, key)
		}
	}()
	for _, roomID := range roomIDs {
		key := storage.RoomLockKey(roomID)
		ok, err := storage.AcquireLock(reqCtx, key, bookingLockTTL)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if !ok {
			utils.JSONError(ctx, http.StatusConflict, "room_busy", "Room is being booked by another request, retry shortly")
			return
		}
		held = append(held, key)
	}

	// Re-check availability under the locks with the same predicate the
	// lifecycle uses.
	store := storage.NewReservationStore(storage.DB)
	for _, room := range rooms {
		overlapping, err := store.ListOverlappingForRooms(reqCtx, []uint{room.ID}, checkIn, checkOut, 0)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if !services.IsRoomAvailable(room.ID, checkIn, checkOut, overlapping, 0) {
			utils.JSONError(ctx, http.StatusConflict, "room_unavailable",
				fmt.Sprintf("Room %s is not available for the requested dates", room.Number))
			return
		}
	}

	status := models.ReservationPending
	claims := jwt.Get(ctx).(*utils.AccessToken)
	if input.Confirm && claims.Role != "guest" {
		status = models.ReservationConfirmed
	}

	reservation := models.Reservation{
		GuestID:         guest.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		ReservationDate: time.Now(),
		Status:          status,
		Note:            input.Note,
	}
	for _, room := range rooms {
		reservation.RoomBookings = append(reservation.RoomBookings, models.RoomBooking{
			RoomID:        room.ID,
			PricePerNight: room.PricePerNight,
		})
	}
	for _, line := range input.Services {
		var service models.Service
		if err := storage.DB.First(&service, line.ServiceID).Error; err != nil {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Service not found", ctx)
			return
		}
		reservation.ServiceLineItems = append(reservation.ServiceLineItems, models.ServiceLineItem{
			ServiceID: service.ID,
			Quantity:  line.Quantity,
			UnitPrice: service.UnitPrice,
		})
	}
	reservation.TotalCost = services.TotalCost(&reservation)

	if err := store.Create(reqCtx, &reservation); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "reservation.create", "reservation", reservation.ID, nil, reservation)

	if guest.UserID != nil {
		notificationService := services.NewNotificationService()
		go notificationService.SendReservationStatusNotification(&reservation, *guest.UserID)
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&reservation)
}

type ChangeReservationStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// ChangeReservationStatus drives the reservation lifecycle: it validates the
// transition and syncs room occupancy, serialized per reservation by an
// advisory lock so concurrent changes cannot both act on the same prior state.
func ChangeReservationStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input ChangeReservationStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	reqCtx := ctx.Request().Context()
	lockKey := storage.ReservationLockKey(id)
	ok, lockErr := storage.AcquireLock(reqCtx, lockKey, bookingLockTTL)
	if lockErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !ok {
		utils.JSONError(ctx, http.StatusConflict, "reservation_busy", "Reservation is being updated by another request, retry shortly")
		return
	}
	defer storage.ReleaseLock(reqCtx, lockKey)

	var before models.Reservation
	storage.DB.First(&before, id)

	updated, changeErr := newLifecycleService().ChangeReservationStatus(reqCtx, id, input.Status)
	if changeErr != nil {
		var invalidStatus *services.InvalidStatusError
		var notFound *services.NotFoundError
		var invalidTransition *services.InvalidTransitionError
		var partialWrite *services.PartialWriteError

		switch {
		case errors.As(changeErr, &invalidStatus):
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_status", invalidStatus.Error())
		case errors.As(changeErr, &notFound):
			utils.JSONError(ctx, http.StatusNotFound, "not_found", notFound.Error())
		case errors.As(changeErr, &invalidTransition):
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_transition",
				fmt.Sprintf("cannot change reservation status from %s to %s", invalidTransition.From, invalidTransition.To))
		case errors.As(changeErr, &partialWrite):
			// The reservation was persisted but room writes failed; report it
			// loudly so ops can reconcile instead of hiding the inconsistency.
			utils.Audit(ctx, "reservation.status.partial_write", "reservation", id, before, partialWrite.Error())
			utils.JSONError(ctx, http.StatusInternalServerError, "partial_write", partialWrite.Error())
		default:
			utils.JSONError(ctx, http.StatusInternalServerError, "server_error", changeErr.Error())
		}
		return
	}

	utils.Audit(ctx, "reservation.status", "reservation", updated.ID, before, updated)

	var guest models.Guest
	if err := storage.DB.First(&guest, updated.GuestID).Error; err == nil && guest.UserID != nil {
		notificationService := services.NewNotificationService()
		go notificationService.SendReservationStatusNotification(updated, *guest.UserID)
	}

	ctx.JSON(updated)
}

// GetReservation returns one reservation with its bookings, line items and guest.
func GetReservation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var reservation models.Reservation
	if err := storage.DB.
		Preload("RoomBookings.Room").
		Preload("ServiceLineItems.Service").
		Preload("Guest").
		First(&reservation, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return
	}
	utils.JSONData(ctx, reservation)
}

// ListReservations lists reservations with status/guest/date filters, paginated.
func ListReservations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	guestID := ctx.URLParamDefault("guest_id", "")
	dateFrom := ctx.URLParamDefault("date_from", "")
	dateTo := ctx.URLParamDefault("date_to", "")

	q := storage.DB.Model(&models.Reservation{})
	if status != "" {
		parsed, ok := models.ParseReservationStatus(status)
		if !ok {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_status", "unknown status filter")
			return
		}
		q = q.Where("status = ?", parsed)
	}
	if guestID != "" {
		q = q.Where("guest_id = ?", guestID)
	}
	if dateFrom != "" {
		if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
			q = q.Where("check_in_date >= ?", t)
		}
	}
	if dateTo != "" {
		if t, err := time.Parse("2006-01-02", dateTo); err == nil {
			q = q.Where("check_out_date <= ?", t)
		}
	}

	var total int64
	q.Count(&total)

	var items []models.Reservation
	if err := q.Preload("RoomBookings").Preload("Guest").
		Offset((page - 1) * perPage).Limit(perPage).
		Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

type AddServiceLineInput struct {
	ServiceID uint `json:"serviceID" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// AddReservationService appends a service line item to an existing reservation
// and recomputes the derived total.
func AddReservationService(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input AddServiceLineInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var reservation models.Reservation
	if err := storage.DB.Preload("RoomBookings").Preload("ServiceLineItems").First(&reservation, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return
	}

	if reservation.Status.IsTerminal() {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "reservation_closed", "cannot add services to a closed reservation")
		return
	}

	var service models.Service
	if err := storage.DB.First(&service, input.ServiceID).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "service not found")
		return
	}

	reservation.ServiceLineItems = append(reservation.ServiceLineItems, models.ServiceLineItem{
		ReservationID: reservation.ID,
		ServiceID:     service.ID,
		Quantity:      input.Quantity,
		UnitPrice:     service.UnitPrice,
	})
	reservation.TotalCost = services.TotalCost(&reservation)

	if err := storage.DB.Save(&reservation).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.JSONData(ctx, reservation)
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
