package services

import (
	"strings"

	"github.com/autohaus/autohaus/internal/models"
)

// Suchkriterien maps query keys to their raw string values as received
// on the wire.
type Suchkriterien map[string]string

// Column-backed criteria keys. The value of a key listed here is matched
// against the corresponding column.
var columnKeys = map[string]bool{
	"id":            true,
	"version":       true,
	"fgnr":          true,
	"art":           true,
	"preis":         true,
	"rabatt":        true,
	"lieferbar":     true,
	"datum":         true,
	"schlagwoerter": true,
	"erzeugt":       true,
	"aktualisiert":  true,
	"modell":        true,
}

// Pseudo keys that select by a single tag, e.g. sport=true. The key itself
// names the tag; the value only toggles it.
var tagKeys = map[string]bool{
	"sport":    true,
	"komfort":  true,
	"gelaende": true,
	"python":   true,
}

// ValidateSuchkriterien checks every key against the allowed set and
// enum-typed values against their domains. An empty map is valid.
func ValidateSuchkriterien(kriterien Suchkriterien) error {
	for key, value := range kriterien {
		if !columnKeys[key] && !tagKeys[key] {
			return &InvalidKeyError{Key: key}
		}
		if key == "art" && !validArt(value) {
			return &InvalidValueError{Key: key, Value: value}
		}
	}
	return nil
}

func validArt(value string) bool {
	switch strings.ToUpper(value) {
	case models.ArtCoupe, models.ArtLimo, models.ArtKombi:
		return true
	}
	return false
}
