package api

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/auth"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/refdata"
	"github.com/mmynk/tripsplit/internal/service"
)

// PathPrefix is the common prefix of every procedure.
const PathPrefix = "/tripsplit.v1."

// Procedure names.
const (
	CreateTripProcedure         = "/tripsplit.v1.TripService/CreateTrip"
	JoinTripProcedure           = "/tripsplit.v1.TripService/JoinTrip"
	GetTripProcedure            = "/tripsplit.v1.TripService/GetTrip"
	ListTripsProcedure          = "/tripsplit.v1.TripService/ListTrips"
	AddGroupExpenseProcedure    = "/tripsplit.v1.TripService/AddExpense"
	DeleteGroupExpenseProcedure = "/tripsplit.v1.TripService/DeleteExpense"
	ListGroupExpensesProcedure  = "/tripsplit.v1.TripService/ListExpenses"
	GetBalancesProcedure        = "/tripsplit.v1.TripService/GetBalances"
	ShareTripProcedure          = "/tripsplit.v1.TripService/ShareTrip"

	AddTravelExpenseProcedure    = "/tripsplit.v1.ExpenseService/AddExpense"
	ListTravelExpensesProcedure  = "/tripsplit.v1.ExpenseService/ListExpenses"
	DeleteTravelExpenseProcedure = "/tripsplit.v1.ExpenseService/DeleteExpense"

	GetBudgetProcedure        = "/tripsplit.v1.BudgetService/GetBudget"
	SetBudgetProcedure        = "/tripsplit.v1.BudgetService/SetBudget"
	GetBudgetSummaryProcedure = "/tripsplit.v1.BudgetService/GetSummary"
	GetAnalyticsProcedure     = "/tripsplit.v1.BudgetService/GetAnalytics"

	ListCurrenciesProcedure = "/tripsplit.v1.CurrencyService/ListCurrencies"
	ConvertProcedure        = "/tripsplit.v1.CurrencyService/Convert"
	GetHistoryProcedure     = "/tripsplit.v1.CurrencyService/GetHistory"
	ClearHistoryProcedure   = "/tripsplit.v1.CurrencyService/ClearHistory"

	ListPlacesProcedure      = "/tripsplit.v1.CatalogService/ListPlaces"
	ListActivitiesProcedure  = "/tripsplit.v1.CatalogService/ListActivities"
	ListTravelModesProcedure = "/tripsplit.v1.CatalogService/ListTravelModes"
	GetHighlightsProcedure   = "/tripsplit.v1.CatalogService/GetHighlights"
)

// Catalog is the reference-data source behind the catalog procedures.
type Catalog interface {
	TouristPlaces(ctx context.Context) ([]models.TouristPlace, error)
	AdventureActivities(ctx context.Context) ([]models.AdventureActivity, error)
	TravelModes(ctx context.Context) ([]models.TravelMode, error)
	Highlights(ctx context.Context) (*refdata.Highlights, error)
}

// Server wires the services to Connect handlers.
type Server struct {
	Trips     *service.TripService
	Expenses  *service.ExpenseService
	Budget    *service.BudgetService
	Converter *service.ConverterService
	Catalog   Catalog
	Tokens    *auth.JWTManager

	// BaseURL is the public address used in join links.
	BaseURL string
	Logger  *slog.Logger
}

// Register mounts every procedure on mux. Interceptors apply to all
// procedures. Everything on an existing trip requires a member token, which
// is checked before the given interceptors run so they see the caller.
func (s *Server) Register(mux *http.ServeMux, interceptors ...connect.Interceptor) {
	opts := []connect.HandlerOption{
		connect.WithCodec(JSONCodec{}),
		connect.WithInterceptors(interceptors...),
	}
	member := []connect.HandlerOption{
		connect.WithCodec(JSONCodec{}),
		connect.WithInterceptors(middleware.RequireMember(s.Tokens)),
		connect.WithInterceptors(interceptors...),
	}

	handle(mux, CreateTripProcedure, s.createTrip, opts...)
	handle(mux, JoinTripProcedure, s.joinTrip, opts...)
	handle(mux, GetTripProcedure, s.getTrip, member...)
	handle(mux, ListTripsProcedure, s.listTrips, member...)
	handle(mux, AddGroupExpenseProcedure, s.addGroupExpense, member...)
	handle(mux, DeleteGroupExpenseProcedure, s.deleteGroupExpense, member...)
	handle(mux, ListGroupExpensesProcedure, s.listGroupExpenses, member...)
	handle(mux, GetBalancesProcedure, s.getBalances, member...)
	handle(mux, ShareTripProcedure, s.shareTrip, member...)

	handle(mux, AddTravelExpenseProcedure, s.addTravelExpense, opts...)
	handle(mux, ListTravelExpensesProcedure, s.listTravelExpenses, opts...)
	handle(mux, DeleteTravelExpenseProcedure, s.deleteTravelExpense, opts...)

	handle(mux, GetBudgetProcedure, s.getBudget, opts...)
	handle(mux, SetBudgetProcedure, s.setBudget, opts...)
	handle(mux, GetBudgetSummaryProcedure, s.getBudgetSummary, opts...)
	handle(mux, GetAnalyticsProcedure, s.getAnalytics, opts...)

	handle(mux, ListCurrenciesProcedure, s.listCurrencies, opts...)
	handle(mux, ConvertProcedure, s.convert, opts...)
	handle(mux, GetHistoryProcedure, s.getHistory, opts...)
	handle(mux, ClearHistoryProcedure, s.clearHistory, opts...)

	handle(mux, ListPlacesProcedure, s.listPlaces, opts...)
	handle(mux, ListActivitiesProcedure, s.listActivities, opts...)
	handle(mux, ListTravelModesProcedure, s.listTravelModes, opts...)
	handle(mux, GetHighlightsProcedure, s.getHighlights, opts...)
}

// handle mounts a unary procedure whose handler works on plain messages.
func handle[Req, Res any](mux *http.ServeMux, procedure string, fn func(context.Context, *Req) (*Res, error), opts ...connect.HandlerOption) {
	mux.Handle(procedure, connect.NewUnaryHandler(procedure,
		func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
			res, err := fn(ctx, req.Msg)
			if err != nil {
				return nil, toConnectError(err)
			}
			return connect.NewResponse(res), nil
		},
		opts...,
	))
}
