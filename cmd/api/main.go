package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/zelligewear/zellige-api/internal/cart"
	"github.com/zelligewear/zellige-api/internal/database"
	"github.com/zelligewear/zellige-api/internal/handlers"
	"github.com/zelligewear/zellige-api/internal/routes"
	"github.com/zelligewear/zellige-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Carts are session state: in memory only, gone on restart.
	app := handlers.New(store.New(db), cart.NewStore())

	router := routes.SetupRouter(app, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Zellige API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
