package services

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// versionTokenRegex matches a quoted version token as sent in If-Match
// headers, e.g. `"0"`.
var versionTokenRegex = regexp.MustCompile(`^"\d{1,3}"$`)

// ParseVersionToken extracts the numeric version from a quoted token.
func ParseVersionToken(token string) (int, error) {
	if !versionTokenRegex.MatchString(token) {
		return 0, &VersionInvalidError{Version: token}
	}
	version := 0
	for _, digit := range token[1 : len(token)-1] {
		version = version*10 + int(digit-'0')
	}
	return version, nil
}

// schlagwoerterExpr returns the SQL expression that exposes the serialized
// tag list as text for LIKE matching, per dialect.
func schlagwoerterExpr(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "postgres":
		return `"autos"."schlagwoerter"::text`
	case "mysql":
		return "CAST(`autos`.`schlagwoerter` AS CHAR)"
	default:
		return "autos.schlagwoerter"
	}
}

// BuildQuery translates validated search criteria into a GORM scope.
// Criteria must have passed ValidateSuchkriterien first.
func BuildQuery(kriterien Suchkriterien) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("INNER JOIN modelle ON modelle.auto_id = autos.id")

		if modell, ok := kriterien["modell"]; ok && modell != "" {
			pattern := "%" + modell + "%"
			if db.Dialector.Name() == "postgres" {
				db = db.Where("modelle.modell ILIKE ?", pattern)
			} else {
				db = db.Where("LOWER(modelle.modell) LIKE LOWER(?)", pattern)
			}
		}

		for key, value := range kriterien {
			switch key {
			case "modell":
				// handled above

			case "preis":
				db = db.Where("autos.preis <= ?", value)

			case "schlagwoerter":
				for _, tag := range strings.Split(value, ",") {
					tag = strings.TrimSpace(tag)
					if tag == "" {
						continue
					}
					db = tagPredicate(db, strings.ToUpper(tag))
				}

			case "sport", "gelaende", "python":
				if isTruthy(value) {
					db = tagPredicate(db, strings.ToUpper(key))
				}

			case "komfort":
				// KOMFORT must not be satisfied by the GELAENDE substring,
				// so GELAENDE is blanked out before matching.
				if isTruthy(value) {
					expr := schlagwoerterExpr(db)
					db = db.Where(
						fmt.Sprintf("REPLACE(%s, 'GELAENDE', '') LIKE ?", expr),
						"%KOMFORT%",
					)
				}

			case "art":
				db = db.Where("autos.art = ?", strings.ToUpper(value))

			case "lieferbar":
				db = db.Where("autos.lieferbar = ?", isTruthy(value))

			default:
				db = db.Where(fmt.Sprintf("autos.%s = ?", key), value)
			}
		}

		return db
	}
}

func tagPredicate(db *gorm.DB, tag string) *gorm.DB {
	expr := schlagwoerterExpr(db)
	return db.Where(fmt.Sprintf("%s LIKE ?", expr), "%"+tag+"%")
}

func isTruthy(value string) bool {
	return value == "true"
}
