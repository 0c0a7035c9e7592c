package main

import (
	"log"
	"os"

	"backend/config"
	"backend/routes"
	"backend/services"
)

func main() {
	config.InitDB()
	services.InitTracker()

	if path := os.Getenv("FOOD_CSV_PATH"); path != "" {
		if err := services.SeedFoodCatalog(path); err != nil {
			log.Fatalf("Failed to seed food catalog: %v", err)
		}
	}

	r := routes.SetupRouter()
	r.Run(":8080")
}
