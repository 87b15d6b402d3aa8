package services

import (
	"errors"

	"github.com/autohaus/autohaus/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// CreateAuto persists a new record together with its model name and
// images. The vehicle identification number must be unused. On success a
// notification mail is sent in the background.
func CreateAuto(db *gorm.DB, mailer *Mailer, auto *models.Auto) (uint64, error) {
	exists, err := fgnrExists(db, auto.Fgnr)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, &FgnrExistsError{Fgnr: auto.Fgnr}
	}

	auto.ID = 0
	auto.Version = 0
	if auto.Schlagwoerter == nil {
		auto.Schlagwoerter = []string{}
	}

	if err := db.Create(auto).Error; err != nil {
		return 0, err
	}

	if mailer != nil {
		modell := ""
		if auto.Modell != nil {
			modell = auto.Modell.Modell
		}
		mailer.SendNeuesAuto(auto.ID, modell)
	}

	return auto.ID, nil
}

// fgnrExists probes for an existing record with the given vehicle
// identification number. The unique index on fgnr backs the lookup.
func fgnrExists(db *gorm.DB, fgnr string) (bool, error) {
	query := db.Model(&models.Auto{})
	if db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("idx_autos_fgnr"))
	}

	var count int64
	if err := query.Where("fgnr = ?", fgnr).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddFile attaches a binary file to an existing record, replacing any
// previously stored file.
func AddFile(db *gorm.DB, autoID uint64, filename, mimetype string, data []byte) (*models.AutoFile, error) {
	var auto models.Auto
	if err := db.Select("id").First(&auto, autoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: autoID}
		}
		return nil, err
	}

	file := &models.AutoFile{
		Filename: filename,
		Mimetype: mimetype,
		Data:     data,
		AutoID:   autoID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("auto_id = ?", autoID).Delete(&models.AutoFile{}).Error; err != nil {
			return err
		}
		return tx.Create(file).Error
	})
	if err != nil {
		return nil, err
	}

	return file, nil
}

// UpdateAuto applies the given changes under optimistic concurrency
// control. The version token must match the stored version or be newer;
// a stale token is rejected. Returns the incremented version.
func UpdateAuto(db *gorm.DB, id uint64, versionToken string, auto *models.Auto) (int, error) {
	version, err := ParseVersionToken(versionToken)
	if err != nil {
		return 0, err
	}

	newVersion := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		var stored models.Auto
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&stored, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{ID: id}
		}
		if err != nil {
			return err
		}

		if version < stored.Version {
			return &VersionOutdatedError{Version: version}
		}

		newVersion = stored.Version + 1
		updates := map[string]interface{}{
			"version":       newVersion,
			"fgnr":          auto.Fgnr,
			"art":           auto.Art,
			"preis":         auto.Preis,
			"rabatt":        auto.Rabatt,
			"lieferbar":     auto.Lieferbar,
			"datum":         auto.Datum,
			"schlagwoerter": auto.Schlagwoerter,
		}

		result := tx.Model(&models.Auto{}).
			Where("id = ? AND version = ?", id, stored.Version).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &VersionOutdatedError{Version: version}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newVersion, nil
}

// DeleteAuto removes a record with all dependent rows in one transaction.
// A missing id yields a NotFoundError. Returns whether the final row
// deletion actually affected a record.
func DeleteAuto(db *gorm.DB, id uint64) (bool, error) {
	if _, err := FindAutoByID(db, id, true); err != nil {
		return false, err
	}

	deleted := false
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("auto_id = ?", id).Delete(&models.Modell{}).Error; err != nil {
			return err
		}
		if err := tx.Where("auto_id = ?", id).Delete(&models.Bild{}).Error; err != nil {
			return err
		}
		if err := tx.Where("auto_id = ?", id).Delete(&models.AutoFile{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Auto{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
