package routes

import (
	"net/http"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/services"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

type PaymentInput struct {
	ReservationID uint    `json:"reservationID" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"required,oneof=cash card bank_transfer"`
	Reference     string  `json:"reference"`
}

// RecordPayment captures a payment taken at the desk against a reservation.
func RecordPayment(ctx iris.Context) {
	var input PaymentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var reservation models.Reservation
	if err := storage.DB.First(&reservation, input.ReservationID).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return
	}

	if reservation.Status == models.ReservationCancelled {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "reservation_cancelled", "cannot record a payment on a cancelled reservation")
		return
	}

	now := time.Now()
	payment := models.Payment{
		ReservationID: reservation.ID,
		Amount:        input.Amount,
		Method:        input.Method,
		Status:        "captured",
		Reference:     input.Reference,
		PaidAt:        &now,
	}

	if err := storage.DB.Create(&payment).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "payment.record", "payment", payment.ID, nil, payment)

	var guest models.Guest
	if err := storage.DB.First(&guest, reservation.GuestID).Error; err == nil && guest.UserID != nil {
		notificationService := services.NewNotificationService()
		go notificationService.SendPaymentRecordedNotification(&payment, *guest.UserID)
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&payment)
}

// ListPayments lists payments, optionally scoped to one reservation.
func ListPayments(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Payment{})
	if reservationID := ctx.URLParamDefault("reservation_id", ""); reservationID != "" {
		q = q.Where("reservation_id = ?", reservationID)
	}
	if status := ctx.URLParamDefault("status", ""); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	q.Count(&total)

	var payments []models.Payment
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, payments, page, perPage, total)
}

type RefundInput struct {
	Reason string `json:"reason" validate:"required"`
}

// RefundPayment marks a captured payment as refunded.
func RefundPayment(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input RefundInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var payment models.Payment
	if err := storage.DB.First(&payment, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "payment not found")
		return
	}

	if payment.Status != "captured" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "not_refundable", "only captured payments can be refunded")
		return
	}

	before := payment
	payment.Status = "refunded"
	if err := storage.DB.Save(&payment).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "payment.refund", "payment", payment.ID, before, payment)
	ctx.JSON(&payment)
}
