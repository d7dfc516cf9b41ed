package main

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/refdata"
)

var errNoCMS = errors.New("reference catalog is not configured")

// unavailableCatalog serves the catalog procedures when no CMS is configured.
type unavailableCatalog struct{}

func (unavailableCatalog) TouristPlaces(context.Context) ([]models.TouristPlace, error) {
	return nil, connect.NewError(connect.CodeUnavailable, errNoCMS)
}

func (unavailableCatalog) AdventureActivities(context.Context) ([]models.AdventureActivity, error) {
	return nil, connect.NewError(connect.CodeUnavailable, errNoCMS)
}

func (unavailableCatalog) TravelModes(context.Context) ([]models.TravelMode, error) {
	return nil, connect.NewError(connect.CodeUnavailable, errNoCMS)
}

func (unavailableCatalog) Highlights(context.Context) (*refdata.Highlights, error) {
	return nil, connect.NewError(connect.CodeUnavailable, errNoCMS)
}
