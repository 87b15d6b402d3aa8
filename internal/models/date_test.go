package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshalJSON(t *testing.T) {
	date := NewDate(time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC))

	out, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `"2024-03-01"` {
		t.Errorf("Expected date-only JSON, got %s", out)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	for _, input := range []string{`"2024-03-01"`, `"2024-03-01T00:00:00Z"`} {
		var date Date
		if err := json.Unmarshal([]byte(input), &date); err != nil {
			t.Fatalf("Unmarshal %s failed: %v", input, err)
		}
		if got := date.Time().Format("2006-01-02"); got != "2024-03-01" {
			t.Errorf("Expected 2024-03-01 from %s, got %s", input, got)
		}
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var date Date
	if err := json.Unmarshal([]byte(`"gestern"`), &date); err == nil {
		t.Error("Expected error for non-date input")
	}
}
