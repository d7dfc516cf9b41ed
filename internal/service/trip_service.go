package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/share"
	"github.com/mmynk/tripsplit/internal/storage"
)

const (
	// DefaultCreatorName is used when a trip is created without a creator name.
	DefaultCreatorName = "You"
	// DefaultTripCurrency is used when a trip is created without a currency.
	DefaultTripCurrency = "INR"

	maxCodeAttempts = 10
)

// TripService manages group trips, their members and their expenses.
type TripService struct {
	mu       sync.Mutex
	trips    *storage.Repository[[]models.Trip]
	expenses *storage.Repository[[]models.GroupExpense]
	logger   *slog.Logger

	now       func() time.Time
	newCode   func() (string, error)
	onOrphans func(n int)
}

// TripOption configures a TripService.
type TripOption func(*TripService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) TripOption {
	return func(s *TripService) { s.now = now }
}

// WithCodeGenerator overrides share code generation.
func WithCodeGenerator(gen func() (string, error)) TripOption {
	return func(s *TripService) { s.newCode = gen }
}

// WithOrphanHook registers fn to be told how many references settlement skipped.
func WithOrphanHook(fn func(n int)) TripOption {
	return func(s *TripService) { s.onOrphans = fn }
}

// NewTripService creates a TripService over the given repositories.
func NewTripService(repos *storage.Repositories, logger *slog.Logger, opts ...TripOption) *TripService {
	s := &TripService{
		trips:    repos.Trips,
		expenses: repos.GroupExpenses,
		logger:   logger,
		now:      time.Now,
		newCode:  share.GenerateCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTripParams are the inputs for CreateTrip.
type CreateTripParams struct {
	Name        string
	Description string
	Currency    string
	CreatorName string
}

// CreateTrip creates a trip whose only member is its creator.
func (s *TripService) CreateTrip(ctx context.Context, p CreateTripParams) (*models.Trip, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: trip name is required", ErrInvalidArgument)
	}
	creatorName := strings.TrimSpace(p.CreatorName)
	if creatorName == "" {
		creatorName = DefaultCreatorName
	}
	code := strings.ToUpper(strings.TrimSpace(p.Currency))
	if code == "" {
		code = DefaultTripCurrency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.trips.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}

	shareCode, err := s.uniqueCode(trips)
	if err != nil {
		return nil, err
	}

	now := s.now()
	creator := models.Member{
		ID:       uuid.New().String(),
		Name:     creatorName,
		JoinedAt: now,
	}
	trip := models.Trip{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(p.Description),
		Currency:    code,
		Members:     []models.Member{creator},
		CreatedBy:   creator.ID,
		CreatedAt:   now,
		ShareCode:   shareCode,
	}

	if err := s.trips.Save(ctx, append(trips, trip)); err != nil {
		return nil, err
	}

	s.logger.Info("Trip created", "trip_id", trip.ID, "share_code", trip.ShareCode)
	return &trip, nil
}

// JoinTrip adds a member named name to the trip with the given share code.
// It returns the trip and the new member. Nothing is stored on rejection.
func (s *TripService) JoinTrip(ctx context.Context, code, name string) (*models.Trip, *models.Member, error) {
	code = share.NormalizeCode(code)
	name = strings.TrimSpace(name)
	if code == "" || name == "" {
		return nil, nil, fmt.Errorf("%w: share code and name are required", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.trips.LoadOr(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	idx := slices.IndexFunc(trips, func(t models.Trip) bool { return t.ShareCode == code })
	if idx < 0 {
		return nil, nil, ErrInvalidShareCode
	}
	trip := &trips[idx]
	if trip.HasMemberNamed(name) {
		return nil, nil, ErrDuplicateMember
	}

	member := models.Member{
		ID:       uuid.New().String(),
		Name:     name,
		JoinedAt: s.now(),
	}
	trip.Members = append(trip.Members, member)

	if err := s.trips.Save(ctx, trips); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Member joined trip", "trip_id", trip.ID, "member_id", member.ID)
	joined := *trip
	return &joined, &member, nil
}

// GetTrip returns the trip with the given ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trips, err := s.trips.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].ID == tripID {
			return &trips[i], nil
		}
	}
	return nil, ErrTripNotFound
}

// ListTrips returns every trip in creation order.
func (s *TripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.trips.LoadOr(ctx, nil)
}

// AddExpenseParams are the inputs for AddExpense.
type AddExpenseParams struct {
	TripID      string
	Description string
	Amount      float64
	Currency    string
	PaidBy      string
	SplitAmong  []string
	Category    models.Category
	Date        time.Time
	Receipt     string
}

// AddExpense records an expense against a trip. The payer and every split
// member must belong to the trip. An empty split is stored as the list of
// current members.
func (s *TripService) AddExpense(ctx context.Context, p AddExpenseParams) (*models.GroupExpense, error) {
	description := strings.TrimSpace(p.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidArgument)
	}
	if !(p.Amount > 0) || math.IsInf(p.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	if !p.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.trips.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(trips, func(t models.Trip) bool { return t.ID == p.TripID })
	if idx < 0 {
		return nil, ErrTripNotFound
	}
	trip := &trips[idx]

	code := strings.ToUpper(strings.TrimSpace(p.Currency))
	if code == "" {
		code = trip.Currency
	}
	if code != trip.Currency {
		return nil, fmt.Errorf("%w: expenses must be in the trip currency %s", ErrInvalidArgument, trip.Currency)
	}

	if _, ok := trip.FindMember(p.PaidBy); !ok {
		return nil, fmt.Errorf("%w: payer %s", ErrUnknownMember, p.PaidBy)
	}
	split := slices.Clone(p.SplitAmong)
	if len(split) == 0 {
		split = trip.MemberIDs()
	}
	seen := make(map[string]bool, len(split))
	for _, id := range split {
		if _, ok := trip.FindMember(id); !ok {
			return nil, fmt.Errorf("%w: split member %s", ErrUnknownMember, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: member %s listed twice in split", ErrInvalidArgument, id)
		}
		seen[id] = true
	}

	date := p.Date
	if date.IsZero() {
		date = s.now()
	}
	expense := models.GroupExpense{
		ID:          uuid.New().String(),
		TripID:      trip.ID,
		Description: description,
		Amount:      p.Amount,
		Currency:    code,
		PaidBy:      p.PaidBy,
		SplitAmong:  split,
		Category:    p.Category,
		Date:        date,
		Receipt:     p.Receipt,
	}

	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := s.saveExpenses(ctx, trips, idx, all, append(slices.Clip(all), expense)); err != nil {
		return nil, err
	}

	s.logger.Info("Expense added", "trip_id", trip.ID, "expense_id", expense.ID, "amount", expense.Amount)
	return &expense, nil
}

// DeleteExpense removes an expense from a trip. Balances are recomputed from
// the remaining expenses on the next read.
func (s *TripService) DeleteExpense(ctx context.Context, tripID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips, err := s.trips.LoadOr(ctx, nil)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(trips, func(t models.Trip) bool { return t.ID == tripID })
	if idx < 0 {
		return ErrTripNotFound
	}

	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(slices.Clone(all), func(e models.GroupExpense) bool {
		return e.ID == expenseID && e.TripID == tripID
	})
	if len(kept) == len(all) {
		return ErrExpenseNotFound
	}
	if err := s.saveExpenses(ctx, trips, idx, all, kept); err != nil {
		return err
	}

	s.logger.Info("Expense deleted", "trip_id", tripID, "expense_id", expenseID)
	return nil
}

// ListExpenses returns the expenses of a trip in the order they were added.
func (s *TripService) ListExpenses(ctx context.Context, tripID string) ([]models.GroupExpense, error) {
	if _, err := s.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}
	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	return expensesOf(all, tripID), nil
}

// Settlement is the balance sheet of a trip.
type Settlement struct {
	Trip      *models.Trip
	Balances  []calculator.MemberBalance
	Transfers []calculator.Transfer
	Total     float64
	// Orphans lists expense references to people who are no longer members.
	Orphans []calculator.OrphanRef
}

// Balances computes every member's balance and the transfers that settle them.
func (s *TripService) Balances(ctx context.Context, tripID string) (*Settlement, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	expenses := expensesOf(all, tripID)

	balances, orphans := calculator.ComputeBalancesAudited(trip, expenses)
	for _, o := range orphans {
		s.logger.Warn("Skipped reference to non-member",
			"trip_id", tripID,
			"expense_id", o.ExpenseID,
			"member_id", o.MemberID,
			"role", o.Role,
		)
	}
	if len(orphans) > 0 && s.onOrphans != nil {
		s.onOrphans(len(orphans))
	}

	return &Settlement{
		Trip:      trip,
		Balances:  balances,
		Transfers: calculator.SuggestTransfers(balances),
		Total:     calculator.TotalAmount(expenses),
		Orphans:   orphans,
	}, nil
}

// ShareInfo is everything needed to invite someone into a trip.
type ShareInfo struct {
	Code   string
	URL    string
	Text   string
	QRCode []byte // PNG
}

// Share builds the invitation for a trip. baseURL is the public address of
// the application.
func (s *TripService) Share(ctx context.Context, tripID, baseURL string, withQR bool) (*ShareInfo, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	info := &ShareInfo{
		Code: trip.ShareCode,
		URL:  share.JoinURL(baseURL, trip.ShareCode),
		Text: share.Text(trip, baseURL),
	}
	if withQR {
		png, err := share.QRCode(info.URL)
		if err != nil {
			return nil, err
		}
		info.QRCode = png
	}
	return info, nil
}

// saveExpenses replaces the expense list prev with next and refreshes the
// cached total of trips[idx]. If the trip cannot be saved, prev is restored.
func (s *TripService) saveExpenses(ctx context.Context, trips []models.Trip, idx int, prev, next []models.GroupExpense) error {
	if err := s.expenses.Save(ctx, next); err != nil {
		return err
	}
	trips[idx].TotalExpenses = calculator.TotalAmount(expensesOf(next, trips[idx].ID))
	if err := s.trips.Save(ctx, trips); err != nil {
		if rerr := s.expenses.Save(ctx, prev); rerr != nil {
			s.logger.Error("Failed to restore expenses", "trip_id", trips[idx].ID, "error", rerr)
		}
		return err
	}
	return nil
}

func (s *TripService) uniqueCode(trips []models.Trip) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := s.newCode()
		if err != nil {
			return "", err
		}
		taken := slices.ContainsFunc(trips, func(t models.Trip) bool { return t.ShareCode == code })
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique share code after %d attempts", maxCodeAttempts)
}

func expensesOf(all []models.GroupExpense, tripID string) []models.GroupExpense {
	var out []models.GroupExpense
	for _, e := range all {
		if e.TripID == tripID {
			out = append(out, e)
		}
	}
	return out
}
