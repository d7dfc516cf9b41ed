package api

import (
	"context"
	"fmt"

	"github.com/mmynk/tripsplit/internal/refdata"
	"github.com/mmynk/tripsplit/internal/service"
)

func (s *Server) listPlaces(ctx context.Context, req *ListPlacesRequest) (*ListPlacesResponse, error) {
	band, err := refdata.ParsePriceBand(req.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidArgument, err)
	}

	places, err := s.Catalog.TouristPlaces(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch tourist places", "error", err)
		return nil, err
	}

	return &ListPlacesResponse{
		Places: refdata.FilterPlaces(places, refdata.PlaceFilter{
			Search:   req.Search,
			Category: req.Category,
			Price:    band,
		}),
		Categories: refdata.PlaceCategories(places),
	}, nil
}

func (s *Server) listActivities(ctx context.Context, req *ListActivitiesRequest) (*ListActivitiesResponse, error) {
	band, err := refdata.ParsePriceBand(req.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidArgument, err)
	}
	booking := refdata.BookingFilter(req.Booking)
	switch booking {
	case refdata.BookingAny, refdata.BookingRequired, refdata.BookingNotRequired:
	case "all":
		booking = refdata.BookingAny
	default:
		return nil, fmt.Errorf("%w: unknown booking filter %q", service.ErrInvalidArgument, req.Booking)
	}

	activities, err := s.Catalog.AdventureActivities(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch activities", "error", err)
		return nil, err
	}

	return &ListActivitiesResponse{
		Activities: refdata.FilterActivities(activities, refdata.ActivityFilter{
			Search:   req.Search,
			Category: req.Category,
			Price:    band,
			Booking:  booking,
		}),
		Categories: refdata.ActivityCategories(activities),
	}, nil
}

func (s *Server) listTravelModes(ctx context.Context, _ *ListTravelModesRequest) (*ListTravelModesResponse, error) {
	modes, err := s.Catalog.TravelModes(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch travel modes", "error", err)
		return nil, err
	}
	return &ListTravelModesResponse{Modes: modes}, nil
}

func (s *Server) getHighlights(ctx context.Context, _ *GetHighlightsRequest) (*GetHighlightsResponse, error) {
	h, err := s.Catalog.Highlights(ctx)
	if err != nil {
		s.Logger.Error("Failed to fetch highlights", "error", err)
		return nil, err
	}
	return toHighlightsResponse(h), nil
}
