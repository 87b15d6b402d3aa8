package graphql

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/autohaus/autohaus/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGraphQLApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	err = db.AutoMigrate(&models.Auto{}, &models.Modell{}, &models.Bild{}, &models.AutoFile{})
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	handler, err := Handler(db, nil)
	if err != nil {
		t.Fatalf("Failed to build GraphQL handler: %v", err)
	}

	app := fiber.New()
	app.Post("/graphql", handler)
	return app, db
}

func execQuery(t *testing.T, app *fiber.App, query string) map[string]interface{} {
	body, _ := json.Marshal(map[string]string{"query": query})
	req := httptest.NewRequest("POST", "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

func TestQueryAuto(t *testing.T) {
	app, db := setupGraphQLApp(t)

	auto := models.Auto{
		Fgnr:          "4-0001-1",
		Art:           models.ArtCoupe,
		Preis:         decimal.NewFromInt(44000),
		Rabatt:        decimal.NewFromFloat(0.1),
		Schlagwoerter: []string{"SPORT"},
		Modell:        &models.Modell{Modell: "M4"},
	}
	if err := db.Create(&auto).Error; err != nil {
		t.Fatalf("Failed to seed auto: %v", err)
	}

	result := execQuery(t, app, `{ auto(id: "1") { id fgnr modell preis rabatt } }`)
	if result["errors"] != nil {
		t.Fatalf("Unexpected errors: %v", result["errors"])
	}

	data := result["data"].(map[string]interface{})
	got := data["auto"].(map[string]interface{})
	if got["fgnr"] != "4-0001-1" {
		t.Errorf("Expected fgnr 4-0001-1, got %v", got["fgnr"])
	}
	if got["modell"] != "M4" {
		t.Errorf("Expected flattened model M4, got %v", got["modell"])
	}
	if got["rabatt"] != "0.1 %" {
		t.Errorf("Expected rabatt as percent string, got %v", got["rabatt"])
	}
}

func TestQueryAutos(t *testing.T) {
	app, db := setupGraphQLApp(t)

	for i, modell := range []string{"BMW", "Mercedes"} {
		auto := models.Auto{
			Fgnr:   "4-000" + string(rune('2'+i)) + "-0",
			Preis:  decimal.NewFromInt(30000),
			Modell: &models.Modell{Modell: modell},
		}
		if err := db.Create(&auto).Error; err != nil {
			t.Fatalf("Failed to seed auto: %v", err)
		}
	}

	result := execQuery(t, app, `{ autos(suchkriterien: { modell: "m" }) { modell } }`)
	if result["errors"] != nil {
		t.Fatalf("Unexpected errors: %v", result["errors"])
	}

	data := result["data"].(map[string]interface{})
	autos := data["autos"].([]interface{})
	if len(autos) != 2 {
		t.Errorf("Expected 2 autos for substring 'm', got %d", len(autos))
	}
}

func TestQueryAutoNotFound(t *testing.T) {
	app, _ := setupGraphQLApp(t)

	result := execQuery(t, app, `{ auto(id: "4711") { id } }`)
	if result["errors"] == nil {
		t.Error("Expected errors for missing record")
	}
}

func TestMutationRequiresSession(t *testing.T) {
	app, _ := setupGraphQLApp(t)

	result := execQuery(t, app, `mutation {
		create(input: { fgnr: "4-0009-9", preis: 1, modell: { modell: "Golf" } }) { id }
	}`)
	if result["errors"] == nil {
		t.Error("Expected errors for unauthenticated mutation")
	}
}
