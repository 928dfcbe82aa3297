package main

import (
	"fmt"
	"log"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
)

// Seeds a branch with a small room inventory and the standard service
// catalogue for local development.
func main() {
	db := storage.InitializeDB()

	branch := models.Branch{Name: "Transylvania Main", City: "Bran", Country: "Romania"}
	if err := db.Where("name = ?", branch.Name).FirstOrCreate(&branch).Error; err != nil {
		log.Fatalf("seeding branch: %v", err)
	}

	roomTypes := []struct {
		Type  string
		Price float64
		Count int
	}{
		{"single", 55, 10},
		{"double", 80, 20},
		{"twin", 75, 10},
		{"suite", 160, 4},
	}

	number := 100
	for _, rt := range roomTypes {
		for i := 0; i < rt.Count; i++ {
			number++
			room := models.Room{
				BranchID:      branch.ID,
				Number:        fmt.Sprintf("%d", number),
				Type:          rt.Type,
				Floor:         number / 100,
				Capacity:      2,
				PricePerNight: rt.Price,
				Status:        models.RoomAvailable,
			}
			if err := db.Where("branch_id = ? AND number = ?", branch.ID, room.Number).
				FirstOrCreate(&room).Error; err != nil {
				log.Fatalf("seeding room %s: %v", room.Number, err)
			}
		}
	}

	services := []models.Service{
		{Name: "Breakfast", Description: "Continental breakfast", UnitPrice: 12},
		{Name: "Laundry", Description: "Per bag", UnitPrice: 18},
		{Name: "Spa Access", Description: "Per day", UnitPrice: 35},
		{Name: "Airport Pickup", Description: "One way", UnitPrice: 45},
	}
	for _, s := range services {
		service := s
		service.IsActive = true
		if err := db.Where("name = ?", service.Name).FirstOrCreate(&service).Error; err != nil {
			log.Fatalf("seeding service %s: %v", service.Name, err)
		}
	}

	fmt.Println("Inventory seeding completed successfully!")
}
