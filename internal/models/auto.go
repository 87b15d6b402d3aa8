package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AutoArt enumerates the permitted body types.
const (
	ArtCoupe = "COUPE"
	ArtLimo  = "LIMO"
	ArtKombi = "KOMBI"
)

// Auto is the aggregate root for a vehicle record. Modell, Bilder and File
// are owned by it and never outlive it.
type Auto struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Version int    `gorm:"not null;default:0" json:"version"`
	Fgnr    string `gorm:"uniqueIndex:idx_autos_fgnr;size:16;not null" json:"fgnr"`
	Art     string `gorm:"size:12" json:"art"`
	// Monetary columns use exact decimals, never floats.
	Preis         decimal.Decimal             `gorm:"type:decimal(8,2)" json:"preis"`
	Rabatt        decimal.Decimal             `gorm:"type:decimal(4,3)" json:"rabatt"`
	Lieferbar     bool                        `json:"lieferbar"`
	Datum         Date                        `gorm:"type:date" json:"datum"`
	Schlagwoerter datatypes.JSONSlice[string] `json:"schlagwoerter"`
	Erzeugt       time.Time                   `gorm:"autoCreateTime" json:"erzeugt"`
	Aktualisiert  time.Time                   `gorm:"autoUpdateTime" json:"aktualisiert"`

	Modell *Modell   `gorm:"foreignKey:AutoID" json:"modell,omitempty"`
	Bilder []Bild    `gorm:"foreignKey:AutoID" json:"bilder,omitempty"`
	File   *AutoFile `gorm:"foreignKey:AutoID" json:"-"`
}

// Modell is the display model of an Auto, exactly one per vehicle.
type Modell struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Modell string `gorm:"size:40;not null" json:"modell"`
	AutoID uint64 `gorm:"index;not null" json:"-"`
}

// Bild is a captioned image reference, zero or more per Auto.
type Bild struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Beschriftung string `gorm:"size:32" json:"beschriftung"`
	ContentType  string `gorm:"size:16" json:"contentType"`
	AutoID       uint64 `gorm:"index;not null" json:"-"`
}

// AutoFile holds the binary payload attached to an Auto, at most one per
// vehicle. Replacing a file removes the previous row, no history is kept.
type AutoFile struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename string `gorm:"size:255" json:"filename"`
	Mimetype string `gorm:"size:64" json:"mimetype"`
	Data     []byte `json:"-"`
	AutoID   uint64 `gorm:"uniqueIndex;not null" json:"-"`
}

// TableName overrides the table name for Auto
func (Auto) TableName() string {
	return "autos"
}

// TableName overrides the table name for Modell
func (Modell) TableName() string {
	return "modelle"
}

// TableName overrides the table name for Bild
func (Bild) TableName() string {
	return "bilder"
}

// TableName overrides the table name for AutoFile
func (AutoFile) TableName() string {
	return "auto_files"
}
