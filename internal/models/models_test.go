package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestCategoryKeys(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q) error = %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), parsed, c)
		}
		if c.DisplayName() == "" || c.Color() == "" {
			t.Errorf("%v: missing display metadata", c)
		}
	}

	if _, err := ParseCategory("souvenirs"); err == nil {
		t.Error("expected error for unknown category key")
	}
}

func TestBudgetJSONUsesCategoryKeys(t *testing.T) {
	b := Budget{Total: 1000, Categories: map[Category]float64{CategoryTouristPlaces: 250}}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"total":1000,"categories":{"tourist-places":250}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded Budget
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.ForCategory(CategoryTouristPlaces) != 250 {
		t.Errorf("tourist-places budget = %v, want 250", decoded.ForCategory(CategoryTouristPlaces))
	}
}

func TestUnknownCategoryIsMalformed(t *testing.T) {
	var e GroupExpense
	err := json.Unmarshal([]byte(`{"id":"e1","category":"casino"}`), &e)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestTripValidate(t *testing.T) {
	valid := Trip{
		ID:        "t1",
		Name:      "Goa",
		ShareCode: "AB12CD",
		Members:   []Member{{ID: "m1", Name: "You", JoinedAt: time.Now()}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Trip)
		field  string
	}{
		{"missing id", func(t *Trip) { t.ID = "" }, "id"},
		{"short share code", func(t *Trip) { t.ShareCode = "AB1" }, "shareCode"},
		{"no members", func(t *Trip) { t.Members = nil }, "members"},
		{"duplicate member", func(t *Trip) { t.Members = append(t.Members, t.Members[0]) }, "members.id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := valid
			trip.Members = append([]Member(nil), valid.Members...)
			tt.mutate(&trip)

			err := trip.Validate()
			var mre *MalformedRecordError
			if !errors.As(err, &mre) {
				t.Fatalf("expected *MalformedRecordError, got %v", err)
			}
			if mre.Field != tt.field {
				t.Errorf("Field = %q, want %q", mre.Field, tt.field)
			}
		})
	}
}

func TestHasMemberNamedIgnoresCase(t *testing.T) {
	trip := Trip{Members: []Member{{ID: "m1", Name: "Alice"}}}
	if !trip.HasMemberNamed("aLiCe") {
		t.Error("expected case-insensitive match")
	}
	if trip.HasMemberNamed("Bob") {
		t.Error("unexpected match for Bob")
	}
}
