package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/autohaus/autohaus/internal/config"
	"github.com/autohaus/autohaus/internal/database"
	"github.com/autohaus/autohaus/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
