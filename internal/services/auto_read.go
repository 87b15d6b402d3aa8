package services

import (
	"errors"

	"github.com/autohaus/autohaus/internal/models"
	"gorm.io/gorm"
)

// FindAutoByID reads a single record including its model name. Images are
// loaded only on request.
func FindAutoByID(db *gorm.DB, id uint64, withBilder bool) (*models.Auto, error) {
	query := db.Preload("Modell")
	if withBilder {
		query = query.Preload("Bilder")
	}

	var auto models.Auto
	if err := query.First(&auto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	normalizeAuto(&auto)
	return &auto, nil
}

// FindFileByAutoID reads the binary file attached to a record. A missing
// file is not an error: the result is nil, so callers can distinguish
// "no file" from a failed lookup.
func FindFileByAutoID(db *gorm.DB, autoID uint64) (*models.AutoFile, error) {
	var file models.AutoFile
	err := db.Where("auto_id = ?", autoID).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// FindAutos searches with the given criteria and returns the requested
// page plus the total across all pages. Empty criteria return all records.
func FindAutos(db *gorm.DB, kriterien Suchkriterien, pageable Pageable) (Slice[models.Auto], error) {
	empty := Slice[models.Auto]{Pageable: pageable}

	if err := ValidateSuchkriterien(kriterien); err != nil {
		return empty, err
	}

	scope := BuildQuery(kriterien)

	var total int64
	if err := db.Model(&models.Auto{}).Scopes(scope).Count(&total).Error; err != nil {
		return empty, err
	}
	if total == 0 {
		return empty, &NotFoundError{Suchkriterien: kriterien}
	}

	var autos []models.Auto
	err := db.Model(&models.Auto{}).
		Select("autos.*").
		Scopes(scope, Paginate(pageable)).
		Preload("Modell").
		Find(&autos).Error
	if err != nil {
		return empty, err
	}
	if len(autos) == 0 {
		return empty, &NotFoundError{Suchkriterien: kriterien}
	}

	for i := range autos {
		normalizeAuto(&autos[i])
	}

	return Slice[models.Auto]{
		Content:       autos,
		TotalElements: total,
		Pageable:      pageable,
	}, nil
}

// normalizeAuto replaces a nil tag list with an empty one so clients
// always see a JSON array.
func normalizeAuto(auto *models.Auto) {
	if auto.Schlagwoerter == nil {
		auto.Schlagwoerter = []string{}
	}
}
