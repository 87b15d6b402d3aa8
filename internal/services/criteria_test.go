package services

import (
	"errors"
	"testing"
)

func TestValidateSuchkriterienAllowsKnownKeys(t *testing.T) {
	kriterien := Suchkriterien{
		"modell":    "BMW",
		"art":       "COUPE",
		"preis":     "40000",
		"lieferbar": "true",
		"sport":     "true",
		"komfort":   "true",
		"gelaende":  "false",
	}

	if err := ValidateSuchkriterien(kriterien); err != nil {
		t.Errorf("Expected valid criteria, got error: %v", err)
	}
}

func TestValidateSuchkriterienEmptyIsValid(t *testing.T) {
	if err := ValidateSuchkriterien(Suchkriterien{}); err != nil {
		t.Errorf("Expected empty criteria to be valid, got error: %v", err)
	}
}

func TestValidateSuchkriterienRejectsUnknownKey(t *testing.T) {
	err := ValidateSuchkriterien(Suchkriterien{"farbe": "rot"})
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}

	var invalidKey *InvalidKeyError
	if !errors.As(err, &invalidKey) {
		t.Fatalf("Expected InvalidKeyError, got %T", err)
	}
	if invalidKey.Key != "farbe" {
		t.Errorf("Expected key 'farbe', got %q", invalidKey.Key)
	}
}

func TestValidateSuchkriterienRejectsUnknownArt(t *testing.T) {
	err := ValidateSuchkriterien(Suchkriterien{"art": "CABRIO"})
	if err == nil {
		t.Fatal("Expected error for unknown art")
	}

	var invalidValue *InvalidValueError
	if !errors.As(err, &invalidValue) {
		t.Fatalf("Expected InvalidValueError, got %T", err)
	}
}

func TestValidateSuchkriterienArtCaseInsensitive(t *testing.T) {
	if err := ValidateSuchkriterien(Suchkriterien{"art": "kombi"}); err != nil {
		t.Errorf("Expected lowercase art to be accepted, got error: %v", err)
	}
}

func TestParseVersionToken(t *testing.T) {
	version, err := ParseVersionToken(`"0"`)
	if err != nil {
		t.Fatalf("Expected valid token, got error: %v", err)
	}
	if version != 0 {
		t.Errorf("Expected version 0, got %d", version)
	}

	version, err = ParseVersionToken(`"123"`)
	if err != nil {
		t.Fatalf("Expected valid token, got error: %v", err)
	}
	if version != 123 {
		t.Errorf("Expected version 123, got %d", version)
	}
}

func TestParseVersionTokenMalformed(t *testing.T) {
	for _, token := range []string{"0", `"1234"`, `""`, `"abc"`, `'1'`, ` "1"`} {
		if _, err := ParseVersionToken(token); err == nil {
			t.Errorf("Expected error for token %q", token)
		} else {
			var invalid *VersionInvalidError
			if !errors.As(err, &invalid) {
				t.Errorf("Expected VersionInvalidError for %q, got %T", token, err)
			}
		}
	}
}

func TestCreatePageableDefaults(t *testing.T) {
	pageable := CreatePageable("", "")
	if pageable.Number != 0 {
		t.Errorf("Expected page number 0, got %d", pageable.Number)
	}
	if pageable.Size != 5 {
		t.Errorf("Expected page size 5, got %d", pageable.Size)
	}
}

func TestCreatePageableExplicitZeroSize(t *testing.T) {
	pageable := CreatePageable("1", "0")
	if pageable.Size != 0 {
		t.Errorf("Expected size 0 to be preserved, got %d", pageable.Size)
	}
}

func TestCreatePageableClampsSize(t *testing.T) {
	pageable := CreatePageable("2", "5000")
	if pageable.Size != 100 {
		t.Errorf("Expected size clamped to 100, got %d", pageable.Size)
	}
	if pageable.Number != 1 {
		t.Errorf("Expected wire page 2 to map to number 1, got %d", pageable.Number)
	}
}

func TestCreatePageableIgnoresGarbage(t *testing.T) {
	pageable := CreatePageable("abc", "-3")
	if pageable.Number != 0 || pageable.Size != 5 {
		t.Errorf("Expected defaults for garbage input, got %+v", pageable)
	}
}

func TestSliceTotalPages(t *testing.T) {
	slice := Slice[int]{TotalElements: 11, Pageable: Pageable{Size: 5}}
	if slice.TotalPages() != 3 {
		t.Errorf("Expected 3 pages, got %d", slice.TotalPages())
	}

	unpaginated := Slice[int]{TotalElements: 11, Pageable: Pageable{Size: 0}}
	if unpaginated.TotalPages() != 1 {
		t.Errorf("Expected 1 page for unpaginated result, got %d", unpaginated.TotalPages())
	}
}
