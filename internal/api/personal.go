package api

import (
	"context"
	"fmt"

	"github.com/mmynk/tripsplit/internal/analytics"
	"github.com/mmynk/tripsplit/internal/service"
)

func (s *Server) addTravelExpense(ctx context.Context, req *AddTravelExpenseRequest) (*AddTravelExpenseResponse, error) {
	s.Logger.Info("AddTravelExpense request received", "category", req.Category, "amount", req.Amount)

	expense, err := s.Expenses.Add(ctx, service.AddTravelExpenseParams{
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	})
	if err != nil {
		return nil, err
	}
	return &AddTravelExpenseResponse{Expense: expense}, nil
}

func (s *Server) listTravelExpenses(ctx context.Context, _ *ListTravelExpensesRequest) (*ListTravelExpensesResponse, error) {
	expenses, err := s.Expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListTravelExpensesResponse{Expenses: expenses}, nil
}

func (s *Server) deleteTravelExpense(ctx context.Context, req *DeleteTravelExpenseRequest) (*DeleteTravelExpenseResponse, error) {
	if err := s.Expenses.Delete(ctx, req.ExpenseID); err != nil {
		return nil, err
	}
	return &DeleteTravelExpenseResponse{}, nil
}

func (s *Server) getBudget(ctx context.Context, _ *GetBudgetRequest) (*GetBudgetResponse, error) {
	b, err := s.Budget.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &GetBudgetResponse{Budget: b, Currency: s.Budget.ReportingCurrency()}, nil
}

func (s *Server) setBudget(ctx context.Context, req *SetBudgetRequest) (*SetBudgetResponse, error) {
	s.Logger.Info("SetBudget request received", "total", req.Budget.Total)

	if err := s.Budget.Set(ctx, req.Budget); err != nil {
		return nil, err
	}
	return &SetBudgetResponse{}, nil
}

func (s *Server) getBudgetSummary(ctx context.Context, _ *GetBudgetSummaryRequest) (*GetBudgetSummaryResponse, error) {
	summary, err := s.Budget.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaryResponse(summary), nil
}

func (s *Server) getAnalytics(ctx context.Context, req *GetAnalyticsRequest) (*GetAnalyticsResponse, error) {
	r, err := analytics.ParseTimeRange(req.Range)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidArgument, err)
	}

	report, err := s.Budget.Analytics(ctx, r)
	if err != nil {
		return nil, err
	}
	return toAnalyticsResponse(report), nil
}
