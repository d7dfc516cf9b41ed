package api

import (
	"context"
	"fmt"
	"slices"

	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/service"
)

func (s *Server) createTrip(ctx context.Context, req *CreateTripRequest) (*CreateTripResponse, error) {
	s.Logger.Info("CreateTrip request received", "name", req.Name, "currency", req.Currency)

	trip, err := s.Trips.CreateTrip(ctx, service.CreateTripParams{
		Name:        req.Name,
		Description: req.Description,
		Currency:    req.Currency,
		CreatorName: req.CreatorName,
	})
	if err != nil {
		s.Logger.Error("CreateTrip failed", "error", err)
		return nil, err
	}

	token, err := s.Tokens.Generate(trip.ID, &trip.Members[0])
	if err != nil {
		return nil, err
	}
	return &CreateTripResponse{Trip: trip, MemberToken: token}, nil
}

func (s *Server) joinTrip(ctx context.Context, req *JoinTripRequest) (*JoinTripResponse, error) {
	s.Logger.Info("JoinTrip request received", "share_code", req.ShareCode)

	trip, member, err := s.Trips.JoinTrip(ctx, req.ShareCode, req.Name)
	if err != nil {
		s.Logger.Warn("JoinTrip rejected", "share_code", req.ShareCode, "error", err)
		return nil, err
	}

	token, err := s.Tokens.Generate(trip.ID, member)
	if err != nil {
		return nil, err
	}
	return &JoinTripResponse{Trip: trip, Member: member, MemberToken: token}, nil
}

func (s *Server) getTrip(ctx context.Context, req *GetTripRequest) (*GetTripResponse, error) {
	if err := authorizeTrip(ctx, req.TripID); err != nil {
		return nil, err
	}
	trip, err := s.Trips.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	return &GetTripResponse{Trip: trip}, nil
}

// listTrips returns the trips the caller's token grants access to.
func (s *Server) listTrips(ctx context.Context, _ *ListTripsRequest) (*ListTripsResponse, error) {
	claims := middleware.ClaimsFromContext(ctx)
	trips, err := s.Trips.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	visible := slices.DeleteFunc(trips, func(t models.Trip) bool {
		return claims.Authorize(t.ID) != nil
	})
	return &ListTripsResponse{Trips: visible}, nil
}

func (s *Server) addGroupExpense(ctx context.Context, req *AddGroupExpenseRequest) (*AddGroupExpenseResponse, error) {
	if err := authorizeTrip(ctx, req.TripID); err != nil {
		return nil, err
	}
	s.Logger.Info("AddExpense request received",
		"trip_id", req.TripID,
		"amount", req.Amount,
		"split_count", len(req.SplitAmong),
	)

	expense, err := s.Trips.AddExpense(ctx, service.AddExpenseParams{
		TripID:      req.TripID,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		PaidBy:      req.PaidBy,
		SplitAmong:  req.SplitAmong,
		Category:    req.Category,
		Date:        req.Date,
		Receipt:     req.Receipt,
	})
	if err != nil {
		return nil, err
	}
	return &AddGroupExpenseResponse{Expense: expense}, nil
}

func (s *Server) deleteGroupExpense(ctx context.Context, req *DeleteGroupExpenseRequest) (*DeleteGroupExpenseResponse, error) {
	if err := authorizeTrip(ctx, req.TripID); err != nil {
		return nil, err
	}
	s.Logger.Info("DeleteExpense request received", "trip_id", req.TripID, "expense_id", req.ExpenseID)

	if err := s.Trips.DeleteExpense(ctx, req.TripID, req.ExpenseID); err != nil {
		return nil, err
	}
	return &DeleteGroupExpenseResponse{}, nil
}

func (s *Server) listGroupExpenses(ctx context.Context, req *ListGroupExpensesRequest) (*ListGroupExpensesResponse, error) {
	if err := authorizeTrip(ctx, req.TripID); err != nil {
		return nil, err
	}
	expenses, err := s.Trips.ListExpenses(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	return &ListGroupExpensesResponse{Expenses: expenses}, nil
}

func (s *Server) getBalances(ctx context.Context, req *GetBalancesRequest) (*GetBalancesResponse, error) {
	if req.TripID == "" {
		return nil, fmt.Errorf("%w: tripId required", service.ErrInvalidArgument)
	}
	if err := authorizeTrip(ctx, req.TripID); err != nil {
		return nil, err
	}
	s.Logger.Info("GetBalances request received", "trip_id", req.TripID)

	settlement, err := s.Trips.Balances(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	return toBalancesResponse(settlement), nil
}

func (s *Server) shareTrip(ctx context.Context, req *ShareTripRequest) (*ShareTripResponse, error) {
	if err := authorizeTrip(ctx, req.TripID); err != nil {
		return nil, err
	}
	info, err := s.Trips.Share(ctx, req.TripID, s.BaseURL, req.IncludeQRCode)
	if err != nil {
		return nil, err
	}
	return &ShareTripResponse{
		ShareCode: info.Code,
		URL:       info.URL,
		Text:      info.Text,
		QRCodePNG: info.QRCode,
	}, nil
}

// authorizeTrip checks that the caller's member token covers tripID.
func authorizeTrip(ctx context.Context, tripID string) error {
	return middleware.ClaimsFromContext(ctx).Authorize(tripID)
}
