package routes

import (
	"net/http"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

type EmployeeInput struct {
	FirstName   string    `json:"firstName" validate:"required,max=256"`
	LastName    string    `json:"lastName" validate:"required,max=256"`
	Email       string    `json:"email" validate:"omitempty,email"`
	PhoneNumber string    `json:"phoneNumber"`
	Position    string    `json:"position" validate:"required,max=64"`
	BranchID    uint      `json:"branchID" validate:"required"`
	Salary      float64   `json:"salary" validate:"min=0"`
	HiredAt     time.Time `json:"hiredAt"`
	UserID      *uint     `json:"userID"`
}

func CreateEmployee(ctx iris.Context) {
	var input EmployeeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var branch models.Branch
	if err := storage.DB.First(&branch, input.BranchID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Branch not found", ctx)
		return
	}

	employee := models.Employee{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: utils.NormalizePhoneNumber(input.PhoneNumber),
		Position:    input.Position,
		BranchID:    input.BranchID,
		Salary:      input.Salary,
		HiredAt:     input.HiredAt,
		UserID:      input.UserID,
	}
	if employee.HiredAt.IsZero() {
		employee.HiredAt = time.Now()
	}

	if err := storage.DB.Create(&employee).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "employee.create", "employee", employee.ID, nil, employee)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&employee)
}

func GetEmployee(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var employee models.Employee
	if err := storage.DB.Preload("Branch").First(&employee, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "employee not found")
		return
	}
	utils.JSONData(ctx, employee)
}

func ListEmployees(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Employee{})
	if branchID := ctx.URLParamDefault("branch_id", ""); branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	if position := ctx.URLParamDefault("position", ""); position != "" {
		q = q.Where("position = ?", position)
	}

	var total int64
	q.Count(&total)

	var employees []models.Employee
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("last_name, first_name").Find(&employees).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, employees, page, perPage, total)
}

func UpdateEmployee(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var input EmployeeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var employee models.Employee
	if err := storage.DB.First(&employee, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "employee not found")
		return
	}

	before := employee
	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Email = input.Email
	if input.PhoneNumber != "" {
		employee.PhoneNumber = utils.NormalizePhoneNumber(input.PhoneNumber)
	}
	employee.Position = input.Position
	employee.BranchID = input.BranchID
	employee.Salary = input.Salary
	if !input.HiredAt.IsZero() {
		employee.HiredAt = input.HiredAt
	}
	employee.UserID = input.UserID

	if err := storage.DB.Save(&employee).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "employee.update", "employee", employee.ID, before, employee)
	ctx.JSON(&employee)
}

func DeleteEmployee(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var employee models.Employee
	if err := storage.DB.First(&employee, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "employee not found")
		return
	}

	if err := storage.DB.Delete(&employee).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	utils.Audit(ctx, "employee.delete", "employee", employee.ID, employee, nil)
	ctx.StatusCode(iris.StatusNoContent)
}
