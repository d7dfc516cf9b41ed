package refdata

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/tripsplit/internal/models"
)

const highlightCount = 3

func (c *Client) TouristPlaces(ctx context.Context) ([]models.TouristPlace, error) {
	return FetchAll[models.TouristPlace](ctx, c, CollectionTouristPlaces)
}

func (c *Client) AdventureActivities(ctx context.Context) ([]models.AdventureActivity, error) {
	return FetchAll[models.AdventureActivity](ctx, c, CollectionAdventureActivities)
}

func (c *Client) TravelModes(ctx context.Context) ([]models.TravelMode, error) {
	return FetchAll[models.TravelMode](ctx, c, CollectionTravelModes)
}

// Highlights is the first few entries of each catalog collection.
type Highlights struct {
	Places     []models.TouristPlace
	Activities []models.AdventureActivity
	Modes      []models.TravelMode
}

// Highlights fetches the three catalog collections concurrently.
func (c *Client) Highlights(ctx context.Context) (*Highlights, error) {
	var h Highlights
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		places, err := c.TouristPlaces(ctx)
		h.Places = firstN(places, highlightCount)
		return err
	})
	g.Go(func() error {
		activities, err := c.AdventureActivities(ctx)
		h.Activities = firstN(activities, highlightCount)
		return err
	})
	g.Go(func() error {
		modes, err := c.TravelModes(ctx)
		h.Modes = firstN(modes, highlightCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &h, nil
}

// PriceBand buckets catalog entries by cost.
type PriceBand string

const (
	PriceAny    PriceBand = ""
	PriceFree   PriceBand = "free"
	PriceLow    PriceBand = "low"
	PriceMedium PriceBand = "medium"
	PriceHigh   PriceBand = "high"
)

// ParsePriceBand accepts "", "all" and the named bands.
func ParsePriceBand(s string) (PriceBand, error) {
	switch b := PriceBand(s); b {
	case "", "all":
		return PriceAny, nil
	case PriceFree, PriceLow, PriceMedium, PriceHigh:
		return b, nil
	default:
		return "", fmt.Errorf("unknown price band %q", s)
	}
}

// match reports whether price falls in the band. lowMax and mediumMax are
// the inclusive upper bounds of the low and medium bands.
func (b PriceBand) match(price, lowMax, mediumMax float64) bool {
	switch b {
	case PriceFree:
		return price == 0
	case PriceLow:
		return price > 0 && price <= lowMax
	case PriceMedium:
		return price > lowMax && price <= mediumMax
	case PriceHigh:
		return price > mediumMax
	default:
		return true
	}
}

// PlaceFilter narrows a list of tourist places. Zero values match everything.
type PlaceFilter struct {
	Search   string
	Category string
	Price    PriceBand
}

// FilterPlaces applies f. Price bands for places: low up to 20, medium up to 50.
func FilterPlaces(places []models.TouristPlace, f PlaceFilter) []models.TouristPlace {
	var out []models.TouristPlace
	for _, p := range places {
		if !containsFold(f.Search, p.Name, p.Location, p.Description) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if !f.Price.match(p.EntryTicketPrice, 20, 50) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// BookingFilter selects activities by booking requirement.
type BookingFilter string

const (
	BookingAny         BookingFilter = ""
	BookingRequired    BookingFilter = "required"
	BookingNotRequired BookingFilter = "not-required"
)

// ActivityFilter narrows a list of activities. Zero values match everything.
type ActivityFilter struct {
	Search   string
	Category string
	Price    PriceBand
	Booking  BookingFilter
}

// FilterActivities applies f. Price bands for activities: low up to 50,
// medium up to 150.
func FilterActivities(activities []models.AdventureActivity, f ActivityFilter) []models.AdventureActivity {
	var out []models.AdventureActivity
	for _, a := range activities {
		if !containsFold(f.Search, a.ActivityName, a.Category, a.Description) {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if !f.Price.match(a.EstimatedCost, 50, 150) {
			continue
		}
		if f.Booking == BookingRequired && !a.RequiresBooking {
			continue
		}
		if f.Booking == BookingNotRequired && a.RequiresBooking {
			continue
		}
		out = append(out, a)
	}
	return out
}

// PlaceCategories returns the distinct non-empty categories in first-seen order.
func PlaceCategories(places []models.TouristPlace) []string {
	cats := make([]string, len(places))
	for i, p := range places {
		cats[i] = p.Category
	}
	return distinct(cats)
}

// ActivityCategories returns the distinct non-empty categories in first-seen order.
func ActivityCategories(activities []models.AdventureActivity) []string {
	cats := make([]string, len(activities))
	for i, a := range activities {
		cats[i] = a.Category
	}
	return distinct(cats)
}

func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
