package services

import (
	"errors"
	"testing"

	"github.com/autohaus/autohaus/internal/models"
	"github.com/shopspring/decimal"
)

func TestCreateAuto(t *testing.T) {
	db := setupTestDB(t)

	auto := &models.Auto{
		Fgnr:          "2-0001-1",
		Art:           models.ArtCoupe,
		Preis:         decimal.NewFromInt(44990),
		Schlagwoerter: []string{"SPORT"},
		Modell:        &models.Modell{Modell: "BMW"},
		Bilder: []models.Bild{
			{Beschriftung: "Front", ContentType: "image/png"},
		},
	}

	id, err := CreateAuto(db, nil, auto)
	if err != nil {
		t.Fatalf("CreateAuto failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected a generated ID")
	}

	stored, err := FindAutoByID(db, id, true)
	if err != nil {
		t.Fatalf("FindAutoByID failed: %v", err)
	}
	if stored.Version != 0 {
		t.Errorf("Expected initial version 0, got %d", stored.Version)
	}
	if stored.Modell == nil || stored.Modell.Modell != "BMW" {
		t.Errorf("Expected cascaded model BMW, got %+v", stored.Modell)
	}
	if len(stored.Bilder) != 1 {
		t.Errorf("Expected 1 cascaded image, got %d", len(stored.Bilder))
	}
}

func TestCreateAutoDuplicateFgnr(t *testing.T) {
	db := setupTestDB(t)
	seedAuto(t, db, "2-0002-2", "Audi", models.ArtKombi, 39000, nil)

	_, err := CreateAuto(db, nil, &models.Auto{
		Fgnr:   "2-0002-2",
		Preis:  decimal.NewFromInt(1),
		Modell: &models.Modell{Modell: "Audi"},
	})

	var exists *FgnrExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("Expected FgnrExistsError, got %v", err)
	}
	if exists.Fgnr != "2-0002-2" {
		t.Errorf("Expected offending fgnr in error, got %q", exists.Fgnr)
	}
}

func TestUpdateAutoIncrementsVersion(t *testing.T) {
	db := setupTestDB(t)
	created := seedAuto(t, db, "2-0003-3", "Golf", models.ArtKombi, 22000, nil)

	changed := &models.Auto{
		Fgnr:      "2-0003-3",
		Art:       models.ArtLimo,
		Preis:     decimal.NewFromInt(21000),
		Lieferbar: true,
	}

	newVersion, err := UpdateAuto(db, created.ID, `"0"`, changed)
	if err != nil {
		t.Fatalf("UpdateAuto failed: %v", err)
	}
	if newVersion != 1 {
		t.Errorf("Expected new version 1, got %d", newVersion)
	}

	stored, err := FindAutoByID(db, created.ID, false)
	if err != nil {
		t.Fatalf("FindAutoByID failed: %v", err)
	}
	if stored.Version != 1 {
		t.Errorf("Expected stored version 1, got %d", stored.Version)
	}
	if stored.Art != models.ArtLimo {
		t.Errorf("Expected updated art LIMO, got %q", stored.Art)
	}
}

func TestUpdateAutoStaleVersion(t *testing.T) {
	db := setupTestDB(t)
	created := seedAuto(t, db, "2-0004-4", "Polo", models.ArtLimo, 18000, nil)

	if _, err := UpdateAuto(db, created.ID, `"0"`, &models.Auto{Fgnr: "2-0004-4", Preis: decimal.NewFromInt(1)}); err != nil {
		t.Fatalf("First update failed: %v", err)
	}

	_, err := UpdateAuto(db, created.ID, `"0"`, &models.Auto{Fgnr: "2-0004-4", Preis: decimal.NewFromInt(2)})
	var outdated *VersionOutdatedError
	if !errors.As(err, &outdated) {
		t.Fatalf("Expected VersionOutdatedError, got %v", err)
	}
}

func TestUpdateAutoNewerVersionAccepted(t *testing.T) {
	db := setupTestDB(t)
	created := seedAuto(t, db, "2-0005-5", "Passat", models.ArtKombi, 30000, nil)

	// A token ahead of the stored version passes the staleness check.
	newVersion, err := UpdateAuto(db, created.ID, `"7"`, &models.Auto{Fgnr: "2-0005-5", Preis: decimal.NewFromInt(3)})
	if err != nil {
		t.Fatalf("UpdateAuto failed: %v", err)
	}
	if newVersion != 1 {
		t.Errorf("Expected new version 1, got %d", newVersion)
	}
}

func TestUpdateAutoMalformedToken(t *testing.T) {
	db := setupTestDB(t)
	created := seedAuto(t, db, "2-0006-6", "Tiguan", models.ArtKombi, 35000, nil)

	for _, token := range []string{"0", `"1234"`, "kaputt"} {
		_, err := UpdateAuto(db, created.ID, token, &models.Auto{Fgnr: "2-0006-6", Preis: decimal.NewFromInt(1)})
		var invalid *VersionInvalidError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected VersionInvalidError for token %q, got %v", token, err)
		}
	}
}

func TestUpdateAutoNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateAuto(db, 4711, `"0"`, &models.Auto{Fgnr: "2-0007-7", Preis: decimal.NewFromInt(1)})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestAddFileReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	created := seedAuto(t, db, "2-0008-8", "Touareg", models.ArtKombi, 60000, nil)

	if _, err := AddFile(db, created.ID, "a.png", "image/png", []byte{1, 2, 3}); err != nil {
		t.Fatalf("First AddFile failed: %v", err)
	}
	if _, err := AddFile(db, created.ID, "b.jpg", "image/jpeg", []byte{4, 5}); err != nil {
		t.Fatalf("Second AddFile failed: %v", err)
	}

	var count int64
	db.Model(&models.AutoFile{}).Where("auto_id = ?", created.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly one file row, got %d", count)
	}

	file, err := FindFileByAutoID(db, created.ID)
	if err != nil {
		t.Fatalf("FindFileByAutoID failed: %v", err)
	}
	if file == nil || file.Filename != "b.jpg" {
		t.Errorf("Expected replacement file b.jpg, got %+v", file)
	}
}

func TestAddFileAutoNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddFile(db, 4711, "x.png", "image/png", []byte{1})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestDeleteAutoCascades(t *testing.T) {
	db := setupTestDB(t)

	auto := &models.Auto{
		Fgnr:   "2-0009-9",
		Preis:  decimal.NewFromInt(50000),
		Modell: &models.Modell{Modell: "Cayenne"},
		Bilder: []models.Bild{
			{Beschriftung: "Front", ContentType: "image/png"},
			{Beschriftung: "Heck", ContentType: "image/png"},
		},
	}
	id, err := CreateAuto(db, nil, auto)
	if err != nil {
		t.Fatalf("CreateAuto failed: %v", err)
	}
	if _, err := AddFile(db, id, "datei.pdf", "application/pdf", []byte{1}); err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	deleted, err := DeleteAuto(db, id)
	if err != nil {
		t.Fatalf("DeleteAuto failed: %v", err)
	}
	if !deleted {
		t.Fatal("Expected deletion to report an affected row")
	}

	for table, model := range map[string]interface{}{
		"modelle":    &models.Modell{},
		"bilder":     &models.Bild{},
		"auto_files": &models.AutoFile{},
	} {
		var count int64
		db.Model(model).Where("auto_id = ?", id).Count(&count)
		if count != 0 {
			t.Errorf("Expected no %s rows after delete, got %d", table, count)
		}
	}

	var autoCount int64
	db.Model(&models.Auto{}).Where("id = ?", id).Count(&autoCount)
	if autoCount != 0 {
		t.Error("Expected auto row to be gone")
	}
}

func TestDeleteAutoRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)

	auto := &models.Auto{
		Fgnr:   "2-0011-1",
		Preis:  decimal.NewFromInt(50000),
		Modell: &models.Modell{Modell: "Macan"},
		Bilder: []models.Bild{
			{Beschriftung: "Front", ContentType: "image/png"},
			{Beschriftung: "Heck", ContentType: "image/png"},
		},
	}
	id, err := CreateAuto(db, nil, auto)
	if err != nil {
		t.Fatalf("CreateAuto failed: %v", err)
	}

	// Make the auto_files delete step fail mid-transaction.
	if err := db.Migrator().DropTable(&models.AutoFile{}); err != nil {
		t.Fatalf("DropTable failed: %v", err)
	}

	deleted, err := DeleteAuto(db, id)
	if err == nil {
		t.Fatal("Expected the transaction to fail")
	}
	if deleted {
		t.Error("Expected no deletion to be reported")
	}

	for table, count := range map[string]int64{"autos": 1, "modelle": 1, "bilder": 2} {
		var got int64
		db.Table(table).Count(&got)
		if got != count {
			t.Errorf("Expected %d %s rows after rollback, got %d", count, table, got)
		}
	}
}

func TestDeleteAutoNotFound(t *testing.T) {
	db := setupTestDB(t)

	deleted, err := DeleteAuto(db, 4711)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if deleted {
		t.Error("Expected no affected rows for missing record")
	}
}
