package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Date is a wrapper around gorm.io/datatypes.Date that renders as an
// ISO-8601 calendar date ("2006-01-02") in JSON.
type Date struct {
	datatypes.Date
}

// NewDate builds a Date from a time value, truncated to the day.
func NewDate(t time.Time) Date {
	return Date{Date: datatypes.Date(t)}
}

// Time converts the Date back to a time.Time.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// Value promotes the embedded Date's Value method
func (d Date) Value() (driver.Value, error) {
	return d.Date.Value()
}

// Scan promotes the embedded Date's Scan method
func (d *Date) Scan(value interface{}) error {
	return d.Date.Scan(value)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d.Date).Format("2006-01-02"))
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a
// calendar date or a full RFC 3339 timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("date: invalid value %q", s)
		}
	}
	*d = NewDate(t)
	return nil
}
