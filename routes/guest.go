package routes

import (
	"net/http"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

type GuestInput struct {
	FirstName   string   `json:"firstName" validate:"required,max=256"`
	LastName    string   `json:"lastName" validate:"required,max=256"`
	Email       string   `json:"email" validate:"omitempty,email"`
	PhoneNumber string   `json:"phoneNumber"`
	IDType      string   `json:"idType" validate:"omitempty,oneof=passport national_id driving_license"`
	IDNumber    string   `json:"idNumber"`
	Address     string   `json:"address"`
	Nationality string   `json:"nationality"`
	Preferences []string `json:"preferences"`
	Notes       string   `json:"notes"`
}

func CreateGuest(ctx iris.Context) {
	var input GuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.PhoneNumber != "" && !utils.ValidatePhoneNumber(input.PhoneNumber) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid phone number", ctx)
		return
	}

	guest := models.Guest{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: utils.NormalizePhoneNumber(input.PhoneNumber),
		IDType:      input.IDType,
		IDNumber:    input.IDNumber,
		Address:     input.Address,
		Nationality: input.Nationality,
		Notes:       input.Notes,
	}
	if input.Preferences != nil {
		guest.Preferences = marshalJSON(input.Preferences)
	}

	if err := storage.DB.Create(&guest).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&guest)
}

func GetGuest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var guest models.Guest
	if err := storage.DB.First(&guest, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "guest not found")
		return
	}
	utils.JSONData(ctx, guest)
}

// ListGuests searches by name, email or phone, paginated.
func ListGuests(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Guest{})
	if search := ctx.URLParamDefault("q", ""); search != "" {
		like := "%" + search + "%"
		q = q.Where("lower(first_name) LIKE lower(?) OR lower(last_name) LIKE lower(?) OR lower(email) LIKE lower(?) OR phone_number LIKE ?",
			like, like, like, like)
	}

	var total int64
	q.Count(&total)

	var guests []models.Guest
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("last_name, first_name").Find(&guests).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, guests, page, perPage, total)
}

func UpdateGuest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input GuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var guest models.Guest
	if err := storage.DB.First(&guest, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "guest not found")
		return
	}

	before := guest
	guest.FirstName = input.FirstName
	guest.LastName = input.LastName
	guest.Email = input.Email
	if input.PhoneNumber != "" {
		guest.PhoneNumber = utils.NormalizePhoneNumber(input.PhoneNumber)
	}
	guest.IDType = input.IDType
	guest.IDNumber = input.IDNumber
	guest.Address = input.Address
	guest.Nationality = input.Nationality
	guest.Notes = input.Notes
	if input.Preferences != nil {
		guest.Preferences = marshalJSON(input.Preferences)
	}

	if err := storage.DB.Save(&guest).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "guest.update", "guest", guest.ID, before, guest)
	ctx.JSON(&guest)
}

// DeleteGuest removes a guest with no reservations. Guests with history are
// kept for the audit trail.
func DeleteGuest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var guest models.Guest
	if err := storage.DB.First(&guest, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "guest not found")
		return
	}

	var reservationCount int64
	storage.DB.Model(&models.Reservation{}).Where("guest_id = ?", id).Count(&reservationCount)
	if reservationCount > 0 {
		utils.JSONError(ctx, http.StatusConflict, "guest_has_reservations", "guest has reservations and cannot be deleted")
		return
	}

	if err := storage.DB.Delete(&guest).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "guest.delete", "guest", guest.ID, guest, nil)
	ctx.StatusCode(iris.StatusNoContent)
}
