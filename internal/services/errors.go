package services

import "fmt"

// NotFoundError signals that no record (or no record matching the given
// criteria) exists. Carries the offending criteria when a search produced it.
type NotFoundError struct {
	ID            uint64
	Suchkriterien Suchkriterien
}

func (e *NotFoundError) Error() string {
	if e.Suchkriterien != nil {
		return fmt.Sprintf("keine Autos gefunden: %v", e.Suchkriterien)
	}
	if e.ID > 0 {
		return fmt.Sprintf("kein Auto mit der ID %d gefunden", e.ID)
	}
	return "keine Autos gefunden"
}

// FgnrExistsError signals a create with an already-assigned vehicle
// identification number.
type FgnrExistsError struct {
	Fgnr string
}

func (e *FgnrExistsError) Error() string {
	return fmt.Sprintf("die Fahrgestellnummer %s existiert bereits", e.Fgnr)
}

// VersionInvalidError signals a version token that does not match the
// expected format `"<1-3 digits>"`.
type VersionInvalidError struct {
	Version string
}

func (e *VersionInvalidError) Error() string {
	return fmt.Sprintf("die Versionsnummer %s ist ungueltig", e.Version)
}

// VersionOutdatedError signals an update with a stale version number.
type VersionOutdatedError struct {
	Version int
}

func (e *VersionOutdatedError) Error() string {
	return fmt.Sprintf("die Versionsnummer %d ist veraltet", e.Version)
}

// InvalidKeyError signals a search criteria key outside the allowed set.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("ungueltiges Suchkriterium: %s", e.Key)
}

// InvalidValueError signals a well-known criteria key with a value that
// cannot be interpreted, e.g. an unknown art.
type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("ungueltiger Wert %q fuer Suchkriterium %s", e.Value, e.Key)
}
