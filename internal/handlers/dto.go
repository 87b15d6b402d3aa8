package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/autohaus/autohaus/internal/models"
	"github.com/shopspring/decimal"
)

var (
	fgnrRegex   = regexp.MustCompile(`^\d-\d{4}-\d$`)
	modellRegex = regexp.MustCompile(`^\w`)
)

// ModellDTO is the wire representation of a model name.
type ModellDTO struct {
	Modell string `json:"modell"`
}

// BildDTO is the wire representation of an image reference.
type BildDTO struct {
	Beschriftung string `json:"beschriftung"`
	ContentType  string `json:"contentType"`
}

// AutoDTO is the wire representation of a record for create and update
// requests. Update requests omit modell and bilder.
type AutoDTO struct {
	Fgnr          string          `json:"fgnr"`
	Art           string          `json:"art"`
	Preis         decimal.Decimal `json:"preis"`
	Rabatt        decimal.Decimal `json:"rabatt"`
	Lieferbar     bool            `json:"lieferbar"`
	Datum         string          `json:"datum"`
	Schlagwoerter []string        `json:"schlagwoerter"`
	Modell        *ModellDTO      `json:"modell,omitempty"`
	Bilder        []BildDTO       `json:"bilder,omitempty"`
}

// Validate checks the payload constraints. withRefs additionally requires
// and checks the nested modell and bilder.
func (dto *AutoDTO) Validate(withRefs bool) []string {
	var problems []string

	if !fgnrRegex.MatchString(dto.Fgnr) {
		problems = append(problems, "fgnr muss dem Muster 1-2345-6 entsprechen")
	}
	if dto.Art != "" {
		switch strings.ToUpper(dto.Art) {
		case models.ArtCoupe, models.ArtLimo, models.ArtKombi:
		default:
			problems = append(problems, "art muss COUPE, LIMO oder KOMBI sein")
		}
	}
	if dto.Preis.IsNegative() {
		problems = append(problems, "preis muss positiv sein")
	}
	if dto.Rabatt.IsNegative() || dto.Rabatt.GreaterThan(decimal.NewFromInt(1)) {
		problems = append(problems, "rabatt muss zwischen 0 und 1 liegen")
	}
	if dto.Datum != "" {
		if _, err := time.Parse("2006-01-02", dto.Datum); err != nil {
			problems = append(problems, "datum muss ein ISO-8601 Datum sein")
		}
	}
	seen := make(map[string]bool, len(dto.Schlagwoerter))
	for _, tag := range dto.Schlagwoerter {
		if seen[tag] {
			problems = append(problems, fmt.Sprintf("schlagwort %s ist mehrfach angegeben", tag))
		}
		seen[tag] = true
	}

	if withRefs {
		if dto.Modell == nil {
			problems = append(problems, "modell fehlt")
		} else {
			if !modellRegex.MatchString(dto.Modell.Modell) {
				problems = append(problems, "modell muss mit einem Buchstaben oder einer Ziffer beginnen")
			}
			if len(dto.Modell.Modell) > 40 {
				problems = append(problems, "modell darf hoechstens 40 Zeichen lang sein")
			}
		}
		for _, bild := range dto.Bilder {
			if len(bild.Beschriftung) > 32 {
				problems = append(problems, "beschriftung darf hoechstens 32 Zeichen lang sein")
			}
			if len(bild.ContentType) > 16 {
				problems = append(problems, "contentType darf hoechstens 16 Zeichen lang sein")
			}
		}
	}

	return problems
}

// ToModel converts the payload into the persistence model. withRefs
// includes the nested modell and bilder.
func (dto *AutoDTO) ToModel(withRefs bool) *models.Auto {
	auto := &models.Auto{
		Fgnr:          dto.Fgnr,
		Art:           strings.ToUpper(dto.Art),
		Preis:         dto.Preis,
		Rabatt:        dto.Rabatt,
		Lieferbar:     dto.Lieferbar,
		Schlagwoerter: dto.Schlagwoerter,
	}
	if dto.Datum != "" {
		if t, err := time.Parse("2006-01-02", dto.Datum); err == nil {
			auto.Datum = models.NewDate(t)
		}
	}

	if withRefs {
		if dto.Modell != nil {
			auto.Modell = &models.Modell{Modell: dto.Modell.Modell}
		}
		for _, bild := range dto.Bilder {
			auto.Bilder = append(auto.Bilder, models.Bild{
				Beschriftung: bild.Beschriftung,
				ContentType:  bild.ContentType,
			})
		}
	}

	return auto
}
