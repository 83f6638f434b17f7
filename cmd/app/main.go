package main

import (
	"EcoMart-Backend/cmd/config"
	migration "EcoMart-Backend/cmd/database/migrate"
	"EcoMart-Backend/cmd/database/seed"
	"EcoMart-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	if err := seed.Seed(db); err != nil {
		log.Fatalf("error seeding catalog: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
