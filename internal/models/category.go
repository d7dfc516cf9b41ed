package models

import (
	"fmt"
)

// Category is the closed set of expense categories.
type Category int

const (
	CategoryFood Category = iota + 1
	CategoryTravel
	CategoryAccommodation
	CategoryActivities
	CategoryShopping
	CategoryGuide
	CategoryTouristPlaces
	CategoryLocalVehicles
)

// categoryInfo is the display metadata carried by each Category variant.
type categoryInfo struct {
	key           string
	name          string
	color         string
	subcategories []string
}

var categoryTable = map[Category]categoryInfo{
	CategoryFood: {
		key: "food", name: "Food & Dining", color: "#D12318",
		subcategories: []string{"Restaurant", "Street Food", "Groceries", "Snacks", "Beverages", "Fine Dining"},
	},
	CategoryTravel: {
		key: "travel", name: "Transportation", color: "#3E1F0D",
		subcategories: []string{"Flight", "Train", "Bus", "Car Rental", "Taxi/Uber", "Bike", "Walking", "Other"},
	},
	CategoryAccommodation: {
		key: "accommodation", name: "Accommodation", color: "#B9B04A",
		subcategories: []string{"Hotel", "Hostel", "Airbnb", "Resort", "Guesthouse", "Camping"},
	},
	CategoryActivities: {
		key: "activities", name: "Activities", color: "#6366f1",
		subcategories: []string{"Swimming", "Hiking", "Boating", "Trekking", "Campfire", "Tours", "Museums", "Entertainment"},
	},
	CategoryShopping: {
		key: "shopping", name: "Shopping", color: "#8B5CF6",
		subcategories: []string{"Souvenirs", "Clothing", "Electronics", "Local Crafts", "Gifts", "Personal Items"},
	},
	CategoryGuide: {
		key: "guide", name: "Guide Services", color: "#10B981",
		subcategories: []string{"Tour Guide", "Local Guide", "Audio Guide", "Group Tour", "Private Tour"},
	},
	CategoryTouristPlaces: {
		key: "tourist-places", name: "Tourist Places", color: "#F59E0B",
		subcategories: []string{"Beaches", "Mountains", "Waterfalls", "Museums", "Monuments", "Parks", "Temples"},
	},
	CategoryLocalVehicles: {
		key: "local-vehicles", name: "Local Vehicles", color: "#EF4444",
		subcategories: []string{"Rickshaw", "Scooter", "Bicycle", "Local Bus", "Metro", "Ferry"},
	},
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryAccommodation,
		CategoryActivities,
		CategoryShopping,
		CategoryGuide,
		CategoryTouristPlaces,
		CategoryLocalVehicles,
	}
}

// ParseCategory resolves a persisted category key such as "tourist-places".
func ParseCategory(key string) (Category, error) {
	for c, info := range categoryTable {
		if info.key == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", key)
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// String returns the persisted key of the category.
func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.key
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// DisplayName returns the human-readable name, e.g. "Food & Dining".
func (c Category) DisplayName() string {
	return categoryTable[c].name
}

// Color returns the chart color for the category.
func (c Category) Color() string {
	return categoryTable[c].color
}

// Subcategories returns the suggested subcategories for the category.
func (c Category) Subcategories() []string {
	return append([]string(nil), categoryTable[c].subcategories...)
}

// MarshalText encodes the category as its key. It is also used for JSON
// values and map keys.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category key.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return &MalformedRecordError{Record: "category", Field: "category", Reason: err.Error()}
	}
	*c = parsed
	return nil
}
