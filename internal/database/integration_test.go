package database_test

import (
	"testing"

	"github.com/autohaus/autohaus/internal/config"
	"github.com/autohaus/autohaus/internal/database"
	"github.com/autohaus/autohaus/internal/models"
	"github.com/autohaus/autohaus/internal/services"
	"github.com/autohaus/autohaus/internal/testenv"
	"github.com/shopspring/decimal"
)

// TestMariaDBRoundTrip exercises the full stack against a real MariaDB
// started with testcontainers. Skipped in short mode.
func TestMariaDBRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping testcontainers integration test in short mode")
	}

	containers, err := testenv.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to create test containers: %v", err)
	}
	defer containers.Terminate(t)

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            containers.DBHost,
		DBPort:            containers.DBPort.Port(),
		DBDatabase:        "autohaus",
		DBUser:            "root",
		DBPassword:        "root",
		DBConnectionLimit: 4,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	id, err := services.CreateAuto(db, nil, &models.Auto{
		Fgnr:          "9-0001-1",
		Art:           models.ArtCoupe,
		Preis:         decimal.NewFromInt(44000),
		Schlagwoerter: []string{"SPORT", "GELAENDE"},
		Modell:        &models.Modell{Modell: "M4 Competition"},
	})
	if err != nil {
		t.Fatalf("CreateAuto failed: %v", err)
	}

	// Duplicate probe must hit the unique index, not the DB constraint
	_, err = services.CreateAuto(db, nil, &models.Auto{
		Fgnr:   "9-0001-1",
		Preis:  decimal.NewFromInt(1),
		Modell: &models.Modell{Modell: "M4"},
	})
	if err == nil {
		t.Error("Expected duplicate fgnr to be rejected")
	}

	// The MariaDB JSON column needs the CAST path for tag predicates
	slice, err := services.FindAutos(db, services.Suchkriterien{"sport": "true"}, services.Pageable{Size: 0})
	if err != nil {
		t.Fatalf("FindAutos by tag failed: %v", err)
	}
	if slice.TotalElements != 1 {
		t.Errorf("Expected 1 SPORT auto, got %d", slice.TotalElements)
	}

	// GELAENDE alone must not satisfy the komfort pseudo criterion
	if _, err := services.FindAutos(db, services.Suchkriterien{"komfort": "true"}, services.Pageable{Size: 0}); err == nil {
		t.Error("Expected no komfort match for GELAENDE-tagged auto")
	}

	newVersion, err := services.UpdateAuto(db, id, `"0"`, &models.Auto{
		Fgnr:      "9-0001-1",
		Art:       models.ArtCoupe,
		Preis:     decimal.NewFromInt(43000),
		Lieferbar: true,
	})
	if err != nil {
		t.Fatalf("UpdateAuto failed: %v", err)
	}
	if newVersion != 1 {
		t.Errorf("Expected version 1 after update, got %d", newVersion)
	}

	deleted, err := services.DeleteAuto(db, id)
	if err != nil {
		t.Fatalf("DeleteAuto failed: %v", err)
	}
	if !deleted {
		t.Error("Expected the record to be deleted")
	}
}
