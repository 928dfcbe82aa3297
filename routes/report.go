package routes

import (
	"encoding/json"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

const statsCacheKey = "cache:admin:stats"

// AdminStats reports occupancy and revenue headline numbers. The payload is
// cached for a minute; the dashboard polls it aggressively.
func AdminStats(ctx iris.Context) {
	reqCtx := ctx.Request().Context()
	if cached := storage.GetCachedJSON(reqCtx, statsCacheKey); cached != nil {
		ctx.ContentType("application/json")
		ctx.Write(cached)
		return
	}

	var totalRooms, occupiedRooms, maintenanceRooms int64
	storage.DB.Model(&models.Room{}).Count(&totalRooms)
	storage.DB.Model(&models.Room{}).Where("status = ?", models.RoomOccupied).Count(&occupiedRooms)
	storage.DB.Model(&models.Room{}).Where("status = ?", models.RoomUnderMaintenance).Count(&maintenanceRooms)

	occupancyRate := 0.0
	if totalRooms > 0 {
		occupancyRate = float64(occupiedRooms) / float64(totalRooms)
	}

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var newRes7, newRes30 int64
	storage.DB.Model(&models.Reservation{}).Where("created_at >= ?", since7).Count(&newRes7)
	storage.DB.Model(&models.Reservation{}).Where("created_at >= ?", since30).Count(&newRes30)

	byStatus := map[string]int64{}
	for _, status := range []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationCheckedIn,
		models.ReservationCheckedOut,
		models.ReservationCancelled,
	} {
		var count int64
		storage.DB.Model(&models.Reservation{}).Where("status = ?", status).Count(&count)
		byStatus[string(status)] = count
	}

	var revenue7, revenue30 float64
	storage.DB.Model(&models.Payment{}).Where("status = ? AND paid_at >= ?", "captured", since7).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue7)
	storage.DB.Model(&models.Payment{}).Where("status = ? AND paid_at >= ?", "captured", since30).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue30)

	payload := iris.Map{
		"data": iris.Map{
			"total_rooms":            totalRooms,
			"occupied_rooms":         occupiedRooms,
			"maintenance_rooms":      maintenanceRooms,
			"occupancy_rate":         occupancyRate,
			"new_reservations_7d":    newRes7,
			"new_reservations_30d":   newRes30,
			"reservations_by_status": byStatus,
			"captured_revenue_7d":    revenue7,
			"captured_revenue_30d":   revenue30,
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	}

	if raw, err := json.Marshal(payload); err == nil {
		storage.CacheJSON(reqCtx, statsCacheKey, raw, time.Minute)
	}
	ctx.JSON(payload)
}

// AdminActivity returns the most recent audit log entries.
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	utils.JSONData(ctx, logs)
}
