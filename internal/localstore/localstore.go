// Package localstore is the offline persistence shim: it re-implements
// the transaction, goal, and profile stores over a flat key-value backend
// so the app can run with no database at all. It mirrors the server-side
// contracts, including category population with an Uncategorized fallback
// and the versioned backup format.
package localstore

import (
	"encoding/json"
	"sort"
	"time"

	"finsense/internal/analytics"
	apperrors "finsense/internal/errors"
	"finsense/internal/kvstore"
	"finsense/internal/models"
	"finsense/internal/uuid"
)

// Storage keys. keySessionUser is the legacy key the session layer reads;
// imports mirror the user there so a restored identity is recognized
// without re-registration.
const (
	keySchemaVersion = "finsense_schema_version"
	keyUser          = "finsense_user"
	keyTransactions  = "finsense_expenses"
	keyGoals         = "finsense_goals"
	keySessionUser   = "user"
)

// defaultCategories are the fixed offline category set. IDs are stable
// small strings so stored transactions survive upgrades.
var defaultCategories = []models.Category{
	{Base: models.Base{ID: "1"}, Name: "Food", Type: models.CategoryTypeExpense, Color: "#EF4444", Icon: "Utensils"},
	{Base: models.Base{ID: "2"}, Name: "Travel", Type: models.CategoryTypeExpense, Color: "#F59E0B", Icon: "Car"},
	{Base: models.Base{ID: "3"}, Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#8B5CF6", Icon: "Film"},
	{Base: models.Base{ID: "4"}, Name: "Bills", Type: models.CategoryTypeExpense, Color: "#3B82F6", Icon: "Receipt"},
	{Base: models.Base{ID: "5"}, Name: "Shopping", Type: models.CategoryTypeExpense, Color: "#EC4899", Icon: "ShoppingBag"},
	{Base: models.Base{ID: "6"}, Name: "Health", Type: models.CategoryTypeExpense, Color: "#10B981", Icon: "Activity"},
	{Base: models.Base{ID: "7"}, Name: "Salary", Type: models.CategoryTypeIncome, Color: "#22C55E", Icon: "Banknote"},
	{Base: models.Base{ID: "8"}, Name: "Investment", Type: models.CategoryTypeIncome, Color: "#6366F1", Icon: "TrendingUp"},
}

// Store is the offline data layer. All operations are synchronous reads
// and rewrites of whole keys; concurrent writers are last-write-wins.
type Store struct {
	kv  kvstore.Store
	now func() time.Time
}

// Open wraps a key-value backend and applies any pending schema
// migrations.
func Open(kv kvstore.Store) (*Store, error) {
	s := &Store{kv: kv, now: time.Now}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// User returns the stored profile, or nil when none exists.
func (s *Store) User() (*models.User, error) {
	var user *models.User
	if err := s.read(keyUser, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// SaveUser overwrites the stored profile.
func (s *Store) SaveUser(user *models.User) error {
	return s.write(keyUser, user)
}

// Categories returns the fixed offline category set.
func (s *Store) Categories() []models.Category {
	out := make([]models.Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// Transactions returns all stored transactions, newest first, with
// categories resolved. Unknown category IDs fall back to Uncategorized.
func (s *Store) Transactions() ([]models.Transaction, error) {
	txns, err := s.readTransactions()
	if err != nil {
		return nil, err
	}
	for i := range txns {
		txns[i].Category = s.resolveCategory(txns[i].CategoryID)
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns, nil
}

// AddTransaction stores a new transaction and returns it with the
// category resolved.
func (s *Store) AddTransaction(t models.Transaction) (*models.Transaction, error) {
	if t.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if t.IsRecurring && t.RecurringFrequency == "" {
		return nil, apperrors.ErrRecurringNeedsFreq
	}
	if !t.IsRecurring && t.RecurringFrequency != "" {
		return nil, apperrors.ErrFrequencyNotAllowed
	}

	if t.ID == "" {
		t.ID = uuid.New()
	}
	if t.Type == "" {
		t.Type = models.TransactionTypeExpense
	}
	if t.Date.IsZero() {
		t.Date = s.now()
	}
	t.CreatedAt = s.now()
	t.Category = nil

	txns, err := s.readTransactions()
	if err != nil {
		return nil, err
	}
	txns = append([]models.Transaction{t}, txns...)
	if err := s.write(keyTransactions, txns); err != nil {
		return nil, err
	}

	t.Category = s.resolveCategory(t.CategoryID)
	return &t, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(id string) error {
	txns, err := s.readTransactions()
	if err != nil {
		return err
	}
	kept := txns[:0]
	found := false
	for _, t := range txns {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return apperrors.ErrTransactionNotFound
	}
	return s.write(keyTransactions, kept)
}

// Goals returns all stored goals.
func (s *Store) Goals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.read(keyGoals, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

// AddGoal stores a new savings goal.
func (s *Store) AddGoal(g models.Goal) (*models.Goal, error) {
	if g.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}
	if g.SavedAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "saved amount cannot be negative")
	}
	if g.ID == "" {
		g.ID = uuid.New()
	}
	g.CreatedAt = s.now()

	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}
	goals = append(goals, g)
	if err := s.write(keyGoals, goals); err != nil {
		return nil, err
	}
	return &g, nil
}

// GoalUpdate holds the settable goal fields. Nil fields are untouched.
type GoalUpdate struct {
	Name         *string
	TargetAmount *float64
	SavedAmount  *float64
	Deadline     *time.Time
}

// UpdateGoal applies updates to a goal by ID. SavedAmount is free-form:
// it may decrease or exceed the target, but not go negative.
func (s *Store) UpdateGoal(id string, updates GoalUpdate) (*models.Goal, error) {
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		if updates.Name != nil {
			goals[i].Name = *updates.Name
		}
		if updates.TargetAmount != nil {
			goals[i].TargetAmount = *updates.TargetAmount
		}
		if updates.SavedAmount != nil {
			if *updates.SavedAmount < 0 {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "saved amount cannot be negative")
			}
			goals[i].SavedAmount = *updates.SavedAmount
		}
		if updates.Deadline != nil {
			goals[i].Deadline = updates.Deadline
		}
		goals[i].UpdatedAt = s.now()
		if err := s.write(keyGoals, goals); err != nil {
			return nil, err
		}
		g := goals[i]
		return &g, nil
	}
	return nil, apperrors.ErrGoalNotFound
}

// DeleteGoal removes a goal by ID.
func (s *Store) DeleteGoal(id string) error {
	goals, err := s.Goals()
	if err != nil {
		return err
	}
	kept := goals[:0]
	found := false
	for _, g := range goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return apperrors.ErrGoalNotFound
	}
	return s.write(keyGoals, kept)
}

// Summary recomputes totals and the category breakdown over all stored
// transactions.
func (s *Store) Summary() (*analytics.SummaryResult, error) {
	txns, err := s.readTransactions()
	if err != nil {
		return nil, err
	}
	result := analytics.Summary(txns, func(categoryID string) string {
		return s.resolveCategory(categoryID).Name
	})
	return &result, nil
}

// CumulativeTrend returns the running-balance trend over the full history.
func (s *Store) CumulativeTrend() ([]analytics.TrendPoint, error) {
	txns, err := s.readTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.CumulativeTrend(txns, s.now()), nil
}

func (s *Store) resolveCategory(id string) *models.Category {
	for i := range defaultCategories {
		if defaultCategories[i].ID == id {
			c := defaultCategories[i]
			return &c
		}
	}
	return models.UncategorizedCategory()
}

func (s *Store) readTransactions() ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.read(keyTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// read unmarshals the value at key into out, leaving out untouched when
// the key is absent.
func (s *Store) read(key string, out interface{}) error {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *Store) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
