package models

import (
	"strings"
	"time"
)

// ShareCodeLength is the number of characters in a trip share code.
const ShareCodeLength = 6

// Trip is a shared expense-tracking context with members and a share code.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// Currency is the default currency code for the trip's expenses.
	Currency string `json:"currency"`

	// Members is ordered by join time. The first member created the trip.
	Members []Member `json:"members"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`

	// ShareCode is the join credential handed out to other travellers.
	ShareCode string `json:"shareCode"`

	// TotalExpenses caches the sum of the trip's expense amounts.
	// It is recomputed whenever the expense set changes.
	TotalExpenses float64 `json:"totalExpenses"`
}

// Member is a participant in a Trip.
type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`

	// TotalPaid and TotalOwed are derived from the trip's expenses.
	TotalPaid float64 `json:"totalPaid"`
	TotalOwed float64 `json:"totalOwed"`
}

// FindMember returns the member with the given ID.
func (t *Trip) FindMember(id string) (*Member, bool) {
	for i := range t.Members {
		if t.Members[i].ID == id {
			return &t.Members[i], true
		}
	}
	return nil, false
}

// HasMemberNamed reports whether a member with the given name exists,
// ignoring case.
func (t *Trip) HasMemberNamed(name string) bool {
	for _, m := range t.Members {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}

// MemberIDs returns the member IDs in insertion order.
func (t *Trip) MemberIDs() []string {
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.ID
	}
	return ids
}

// Creator returns the first member of the trip.
func (t *Trip) Creator() (*Member, bool) {
	if len(t.Members) == 0 {
		return nil, false
	}
	return &t.Members[0], true
}

// Validate checks the structural invariants of a decoded trip.
func (t *Trip) Validate() error {
	if t.ID == "" {
		return malformed("trip", "", "id", "must not be empty")
	}
	if strings.TrimSpace(t.Name) == "" {
		return malformed("trip", t.ID, "name", "must not be empty")
	}
	if len(t.ShareCode) != ShareCodeLength {
		return malformed("trip", t.ID, "shareCode", "must be 6 characters")
	}
	if len(t.Members) == 0 {
		return malformed("trip", t.ID, "members", "must contain the creator")
	}
	seen := make(map[string]bool, len(t.Members))
	for _, m := range t.Members {
		if m.ID == "" {
			return malformed("trip", t.ID, "members.id", "must not be empty")
		}
		if seen[m.ID] {
			return malformed("trip", t.ID, "members.id", "duplicate member "+m.ID)
		}
		seen[m.ID] = true
	}
	if !finite(t.TotalExpenses) {
		return malformed("trip", t.ID, "totalExpenses", "must be a finite number")
	}
	return nil
}
