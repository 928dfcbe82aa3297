package routes

import (
	"net/http"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

type BranchInput struct {
	Name        string `json:"name" validate:"required,max=128"`
	Address     string `json:"address"`
	City        string `json:"city" validate:"required,max=64"`
	Country     string `json:"country" validate:"max=64"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func CreateBranch(ctx iris.Context) {
	var input BranchInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	branch := models.Branch{
		Name:        input.Name,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
	}

	if err := storage.DB.Create(&branch).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "branch.create", "branch", branch.ID, nil, branch)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&branch)
}

func GetBranch(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var branch models.Branch
	if err := storage.DB.Preload("Rooms").First(&branch, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "branch not found")
		return
	}
	utils.JSONData(ctx, branch)
}

func ListBranches(ctx iris.Context) {
	var branches []models.Branch
	if err := storage.DB.Order("name").Find(&branches).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONData(ctx, branches)
}

func UpdateBranch(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input BranchInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var branch models.Branch
	if err := storage.DB.First(&branch, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "branch not found")
		return
	}

	before := branch
	branch.Name = input.Name
	branch.Address = input.Address
	branch.City = input.City
	branch.Country = input.Country
	branch.PhoneNumber = input.PhoneNumber
	branch.Email = input.Email

	if err := storage.DB.Save(&branch).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "branch.update", "branch", branch.ID, before, branch)
	ctx.JSON(&branch)
}
