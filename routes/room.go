package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/datatypes"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/services"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

type RoomInput struct {
	BranchID      uint     `json:"branchID" validate:"required"`
	Number        string   `json:"number" validate:"required,max=16"`
	Type          string   `json:"type" validate:"required,oneof=single double twin suite"`
	Floor         int      `json:"floor"`
	Capacity      int      `json:"capacity" validate:"min=1,max=16"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,min=0"`
	Amenities     []string `json:"amenities"`
	Notes         string   `json:"notes"`
}

func CreateRoom(ctx iris.Context) {
	var input RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var branch models.Branch
	if err := storage.DB.First(&branch, input.BranchID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Branch not found", ctx)
		return
	}

	room := models.Room{
		BranchID:      input.BranchID,
		Number:        input.Number,
		Type:          input.Type,
		Floor:         input.Floor,
		Capacity:      input.Capacity,
		PricePerNight: input.PricePerNight,
		Status:        models.RoomAvailable,
		Notes:         input.Notes,
	}
	if input.Amenities != nil {
		room.Amenities = marshalJSON(input.Amenities)
	}

	if err := storage.DB.Create(&room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "room.create", "room", room.ID, nil, room)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&room)
}

func GetRoom(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var room models.Room
	if err := storage.DB.Preload("Branch").First(&room, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return
	}
	utils.JSONData(ctx, room)
}

// ListRooms filters by branch, status and type, paginated.
func ListRooms(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Room{})
	if branchID := ctx.URLParamDefault("branch_id", ""); branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	if status := ctx.URLParamDefault("status", ""); status != "" {
		parsed, ok := models.ParseRoomStatus(status)
		if !ok {
			utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_status", "unknown room status filter")
			return
		}
		q = q.Where("status = ?", parsed)
	}
	if roomType := ctx.URLParamDefault("type", ""); roomType != "" {
		q = q.Where("type = ?", roomType)
	}

	var total int64
	q.Count(&total)

	var rooms []models.Room
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("branch_id, number").Find(&rooms).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, rooms, page, perPage, total)
}

type UpdateRoomInput struct {
	Type          string   `json:"type" validate:"omitempty,oneof=single double twin suite"`
	Floor         *int     `json:"floor"`
	Capacity      *int     `json:"capacity" validate:"omitempty,min=1,max=16"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitempty,min=0"`
	Amenities     []string `json:"amenities"`
	Notes         *string  `json:"notes"`
}

func UpdateRoom(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input UpdateRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return
	}

	before := room
	if input.Type != "" {
		room.Type = input.Type
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.Amenities != nil {
		room.Amenities = marshalJSON(input.Amenities)
	}
	if input.Notes != nil {
		room.Notes = *input.Notes
	}

	if err := storage.DB.Save(&room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "room.update", "room", room.ID, before, room)
	ctx.JSON(&room)
}

type RoomMaintenanceInput struct {
	UnderMaintenance *bool  `json:"underMaintenance" validate:"required"`
	Reason           string `json:"reason"`
}

// SetRoomMaintenance flags a room for maintenance or returns it to service.
// Maintenance is the only occupancy change made outside the reservation
// lifecycle; while set, the lifecycle never overwrites the room's status.
func SetRoomMaintenance(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input RoomMaintenanceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return
	}

	before := room
	if *input.UnderMaintenance {
		room.Status = models.RoomUnderMaintenance
		if input.Reason != "" {
			room.Notes = input.Reason
		}
	} else {
		// Returning to service: occupied again only if an active
		// reservation claims the room today.
		store := storage.NewReservationStore(storage.DB)
		today := services.DateOnly(time.Now())
		overlapping, listErr := store.ListOverlappingForRooms(ctx.Request().Context(), []uint{room.ID}, today, today.AddDate(0, 0, 1), 0)
		if listErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		checkedIn := false
		for _, r := range overlapping {
			if r.Status == models.ReservationCheckedIn {
				checkedIn = true
				break
			}
		}
		if checkedIn {
			room.Status = models.RoomOccupied
		} else {
			room.Status = models.RoomAvailable
		}
	}

	if err := storage.DB.Save(&room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "room.maintenance", "room", room.ID, before, room)
	ctx.JSON(&room)
}

// GetRoomAvailability answers whether a room is free for a date range:
// GET /api/rooms/{id}/availability?checkIn=2024-07-01&checkOut=2024-07-03
// Pass exclude_reservation_id when re-checking during an edit.
func GetRoomAvailability(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	checkInStr := ctx.URLParam("checkIn")
	checkOutStr := ctx.URLParam("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "checkIn and checkOut are required", ctx)
		return
	}

	checkIn, err := time.Parse("2006-01-02", checkInStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid checkIn date format", ctx)
		return
	}
	checkOut, err := time.Parse("2006-01-02", checkOutStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid checkOut date format", ctx)
		return
	}

	excludeID := uint(ctx.URLParamIntDefault("exclude_reservation_id", 0))

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return
	}

	available, checkErr := newLifecycleService().CheckAvailability(ctx.Request().Context(), room.ID, checkIn, checkOut, excludeID)
	if checkErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"roomID":    room.ID,
		"checkIn":   checkInStr,
		"checkOut":  checkOutStr,
		"available": available,
	})
}

func marshalJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
