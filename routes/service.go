package routes

import (
	"net/http"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

type ServiceInput struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice" validate:"required,min=0"`
	BranchID    *uint   `json:"branchID"`
	IsActive    *bool   `json:"isActive"`
}

func CreateService(ctx iris.Context) {
	var input ServiceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		UnitPrice:   input.UnitPrice,
		BranchID:    input.BranchID,
		IsActive:    true,
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := storage.DB.Create(&service).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&service)
}

func ListServices(ctx iris.Context) {
	q := storage.DB.Model(&models.Service{})
	if ctx.URLParamDefault("active", "") == "true" {
		q = q.Where("is_active = ?", true)
	}
	if branchID := ctx.URLParamDefault("branch_id", ""); branchID != "" {
		q = q.Where("branch_id = ? OR branch_id IS NULL", branchID)
	}

	var services []models.Service
	if err := q.Order("name").Find(&services).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONData(ctx, services)
}

func UpdateService(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input ServiceInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var service models.Service
	if err := storage.DB.First(&service, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "service not found")
		return
	}

	before := service
	service.Name = input.Name
	service.Description = input.Description
	service.UnitPrice = input.UnitPrice
	service.BranchID = input.BranchID
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := storage.DB.Save(&service).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "service.update", "service", service.ID, before, service)
	ctx.JSON(&service)
}

func DeleteService(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var service models.Service
	if err := storage.DB.First(&service, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "service not found")
		return
	}

	// Soft-deactivate instead of deleting when line items reference it.
	var lineCount int64
	storage.DB.Model(&models.ServiceLineItem{}).Where("service_id = ?", id).Count(&lineCount)
	if lineCount > 0 {
		service.IsActive = false
		storage.DB.Save(&service)
		ctx.JSON(&service)
		return
	}

	if err := storage.DB.Delete(&service).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusNoContent)
}
