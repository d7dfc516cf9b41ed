package api

import (
	"time"

	"github.com/mmynk/tripsplit/internal/analytics"
	"github.com/mmynk/tripsplit/internal/budget"
	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/refdata"
	"github.com/mmynk/tripsplit/internal/service"
)

// Group trips

type CreateTripRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	CreatorName string `json:"creatorName"`
}

type CreateTripResponse struct {
	Trip        *models.Trip `json:"trip"`
	MemberToken string       `json:"memberToken"`
}

type JoinTripRequest struct {
	ShareCode string `json:"shareCode"`
	Name      string `json:"name"`
}

type JoinTripResponse struct {
	Trip        *models.Trip   `json:"trip"`
	Member      *models.Member `json:"member"`
	MemberToken string         `json:"memberToken"`
}

type GetTripRequest struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip *models.Trip `json:"trip"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []models.Trip `json:"trips"`
}

type AddGroupExpenseRequest struct {
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	PaidBy      string          `json:"paidBy"`
	SplitAmong  []string        `json:"splitAmong"`
	Category    models.Category `json:"category"`
	Date        time.Time       `json:"date,omitzero"`
	Receipt     string          `json:"receipt,omitempty"`
}

type AddGroupExpenseResponse struct {
	Expense *models.GroupExpense `json:"expense"`
}

type DeleteGroupExpenseRequest struct {
	TripID    string `json:"tripId"`
	ExpenseID string `json:"expenseId"`
}

type DeleteGroupExpenseResponse struct{}

type ListGroupExpensesRequest struct {
	TripID string `json:"tripId"`
}

type ListGroupExpensesResponse struct {
	Expenses []models.GroupExpense `json:"expenses"`
}

type GetBalancesRequest struct {
	TripID string `json:"tripId"`
}

type Balance struct {
	MemberID   string  `json:"memberId"`
	MemberName string  `json:"memberName"`
	TotalPaid  float64 `json:"totalPaid"`
	TotalOwed  float64 `json:"totalOwed"`
	Balance    float64 `json:"balance"`
}

type Transfer struct {
	FromID   string  `json:"fromId"`
	FromName string  `json:"fromName"`
	ToID     string  `json:"toId"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

type GetBalancesResponse struct {
	TripID        string     `json:"tripId"`
	Currency      string     `json:"currency"`
	TotalExpenses float64    `json:"totalExpenses"`
	Balances      []Balance  `json:"balances"`
	Transfers     []Transfer `json:"transfers"`
	// SkippedReferences counts expense references to non-members.
	SkippedReferences int `json:"skippedReferences"`
}

type ShareTripRequest struct {
	TripID        string `json:"tripId"`
	IncludeQRCode bool   `json:"includeQrCode"`
}

type ShareTripResponse struct {
	ShareCode string `json:"shareCode"`
	URL       string `json:"url"`
	Text      string `json:"text"`
	QRCodePNG []byte `json:"qrCodePng,omitempty"`
}

// Personal expenses and budget

type AddTravelExpenseRequest struct {
	Category    models.Category `json:"category"`
	Subcategory string          `json:"subcategory"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date,omitzero"`
	Location    string          `json:"location,omitempty"`
}

type AddTravelExpenseResponse struct {
	Expense *models.TravelExpense `json:"expense"`
}

type ListTravelExpensesRequest struct{}

type ListTravelExpensesResponse struct {
	Expenses []models.TravelExpense `json:"expenses"`
}

type DeleteTravelExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteTravelExpenseResponse struct{}

type GetBudgetRequest struct{}

type GetBudgetResponse struct {
	Budget   models.Budget `json:"budget"`
	Currency string        `json:"currency"`
}

type SetBudgetRequest struct {
	Budget models.Budget `json:"budget"`
}

type SetBudgetResponse struct{}

type GetBudgetSummaryRequest struct{}

type CategoryStatus struct {
	Category    models.Category `json:"category"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Spent       float64         `json:"spent"`
	Budgeted    float64         `json:"budgeted"`
	Remaining   float64         `json:"remaining"`
	PercentUsed float64         `json:"percentUsed"`
}

type GetBudgetSummaryResponse struct {
	Currency    string           `json:"currency"`
	Spent       float64          `json:"spent"`
	Budget      float64          `json:"budget"`
	Remaining   float64          `json:"remaining"`
	PercentUsed float64          `json:"percentUsed"`
	OverBudget  bool             `json:"overBudget"`
	Categories  []CategoryStatus `json:"categories"`
}

type GetAnalyticsRequest struct {
	Range string `json:"range"`
}

type CategoryShare struct {
	Category   models.Category `json:"category"`
	Name       string          `json:"name"`
	Amount     float64         `json:"amount"`
	Percentage float64         `json:"percentage"`
}

type DailyPoint struct {
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
}

type Insight struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GetAnalyticsResponse struct {
	Range         string          `json:"range"`
	Currency      string          `json:"currency"`
	Total         float64         `json:"total"`
	AverageDaily  float64         `json:"averageDaily"`
	Categories    []CategoryShare `json:"categories"`
	TopCategories []CategoryShare `json:"topCategories"`
	Trend         []DailyPoint    `json:"trend"`
	BudgetUsed    float64         `json:"budgetUsed"`
	Remaining     float64         `json:"remaining"`
	OverBudget    bool            `json:"overBudget"`
	Insights      []Insight       `json:"insights"`
}

// Currency

type ListCurrenciesRequest struct{}

type ListCurrenciesResponse struct {
	Currencies []models.Currency `json:"currencies"`
}

type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type ConvertResponse struct {
	Conversion *models.Conversion `json:"conversion"`
	Display    string             `json:"display"`
}

type GetHistoryRequest struct{}

type GetHistoryResponse struct {
	Conversions []models.Conversion `json:"conversions"`
}

type ClearHistoryRequest struct{}

type ClearHistoryResponse struct{}

// Catalog

type ListPlacesRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

type ListPlacesResponse struct {
	Places     []models.TouristPlace `json:"places"`
	Categories []string              `json:"categories"`
}

type ListActivitiesRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Booking  string `json:"booking"`
}

type ListActivitiesResponse struct {
	Activities []models.AdventureActivity `json:"activities"`
	Categories []string                   `json:"categories"`
}

type ListTravelModesRequest struct{}

type ListTravelModesResponse struct {
	Modes []models.TravelMode `json:"modes"`
}

type GetHighlightsRequest struct{}

type GetHighlightsResponse struct {
	Places     []models.TouristPlace      `json:"places"`
	Activities []models.AdventureActivity `json:"activities"`
	Modes      []models.TravelMode        `json:"modes"`
}

func toBalancesResponse(s *service.Settlement) *GetBalancesResponse {
	resp := &GetBalancesResponse{
		TripID:            s.Trip.ID,
		Currency:          s.Trip.Currency,
		TotalExpenses:     s.Total,
		Balances:          make([]Balance, len(s.Balances)),
		Transfers:         make([]Transfer, len(s.Transfers)),
		SkippedReferences: len(s.Orphans),
	}
	for i, b := range s.Balances {
		resp.Balances[i] = toBalance(b)
	}
	for i, t := range s.Transfers {
		resp.Transfers[i] = Transfer{FromID: t.FromID, FromName: t.FromName, ToID: t.ToID, ToName: t.ToName, Amount: t.Amount}
	}
	return resp
}

func toBalance(b calculator.MemberBalance) Balance {
	return Balance{
		MemberID:   b.MemberID,
		MemberName: b.MemberName,
		TotalPaid:  b.TotalPaid,
		TotalOwed:  b.TotalOwed,
		Balance:    b.Balance,
	}
}

func toSummaryResponse(s *budget.Summary) *GetBudgetSummaryResponse {
	resp := &GetBudgetSummaryResponse{
		Currency:    s.Currency,
		Spent:       s.Spent,
		Budget:      s.Budget,
		Remaining:   s.Remaining,
		PercentUsed: s.PercentUsed,
		OverBudget:  s.OverBudget,
		Categories:  make([]CategoryStatus, len(s.Categories)),
	}
	for i, c := range s.Categories {
		resp.Categories[i] = CategoryStatus{
			Category:    c.Category,
			Name:        c.Category.DisplayName(),
			Color:       c.Category.Color(),
			Spent:       c.Spent,
			Budgeted:    c.Budgeted,
			Remaining:   c.Remaining,
			PercentUsed: c.PercentUsed,
		}
	}
	return resp
}

func toAnalyticsResponse(r *analytics.Report) *GetAnalyticsResponse {
	resp := &GetAnalyticsResponse{
		Range:         string(r.Range),
		Currency:      r.Currency,
		Total:         r.Total,
		AverageDaily:  r.AverageDaily,
		Categories:    toCategoryShares(r.Categories),
		TopCategories: toCategoryShares(r.TopCategories),
		Trend:         make([]DailyPoint, len(r.Trend)),
		BudgetUsed:    r.BudgetUsed,
		Remaining:     r.Remaining,
		OverBudget:    r.OverBudget,
		Insights:      make([]Insight, len(r.Insights)),
	}
	for i, p := range r.Trend {
		resp.Trend[i] = DailyPoint{Date: p.Date, Amount: p.Amount, Cumulative: p.Cumulative}
	}
	for i, in := range r.Insights {
		resp.Insights[i] = Insight{Kind: string(in.Kind), Title: in.Title, Description: in.Description}
	}
	return resp
}

func toCategoryShares(shares []analytics.CategoryShare) []CategoryShare {
	out := make([]CategoryShare, len(shares))
	for i, s := range shares {
		out[i] = CategoryShare{
			Category:   s.Category,
			Name:       s.Category.DisplayName(),
			Amount:     s.Amount,
			Percentage: s.Percentage,
		}
	}
	return out
}

func toHighlightsResponse(h *refdata.Highlights) *GetHighlightsResponse {
	return &GetHighlightsResponse{Places: h.Places, Activities: h.Activities, Modes: h.Modes}
}
