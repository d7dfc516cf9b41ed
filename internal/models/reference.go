package models

// TouristPlace is a catalog entry from the "touristplaces" collection.
type TouristPlace struct {
	ID               string  `json:"_id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	EntryTicketPrice float64 `json:"entryTicketPrice"`
	Image            string  `json:"image,omitempty"`
}

// AdventureActivity is a catalog entry from the "adventureactivities" collection.
type AdventureActivity struct {
	ID              string  `json:"_id"`
	ActivityName    string  `json:"activityName"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	EstimatedCost   float64 `json:"estimatedCost"`
	RequiresBooking bool    `json:"requiresBooking"`
	ActivityImage   string  `json:"activityImage,omitempty"`
}

// TravelMode is a catalog entry from the "travelmodes" collection.
type TravelMode struct {
	ID            string  `json:"_id"`
	ModeName      string  `json:"modeName"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Image         string  `json:"image,omitempty"`
}
