package services

import (
	"time"

	"finsense/internal/analytics"
	"finsense/internal/backup"
	"finsense/internal/models"
	"finsense/internal/pagination"
)

// UserServicer defines the contract for profile-related business logic.
type UserServicer interface {
	EnsureDefaultUser() (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(userID string, updates ProfileUpdate) (*models.User, error)
}

// ProfileUpdate holds the settable profile fields. Nil fields are untouched.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Currency *string
	Password *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(userID string) ([]models.Category, error)
	CreateCategory(userID, name string, categoryType models.CategoryType, color, icon string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionInput holds the fields for a new transaction.
type TransactionInput struct {
	CategoryID         string
	Type               models.TransactionType
	Amount             float64
	Date               time.Time
	PaymentMethod      models.PaymentMethod
	TransactionRef     string
	Payee              string
	Notes              string
	IsRecurring        bool
	RecurringFrequency models.RecurringFrequency
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetStatus pairs a budget with its month-to-date progress.
type BudgetStatus struct {
	Budget     models.Budget `json:"budget"`
	Spent      float64       `json:"spent"`
	Percentage float64       `json:"percentage"`
	IsOver     bool          `json:"is_over"`
	Status     string        `json:"status"`
}

// BudgetServicer defines the contract for budget-related business logic.
// Budgets upsert by category: posting a budget for a category that
// already has one updates the amount in place.
type BudgetServicer interface {
	ListBudgets(userID string, asOf time.Time) ([]BudgetStatus, error)
	UpsertBudget(userID, categoryID string, amount float64) (*models.Budget, bool, error)
}

// GoalInput holds the fields for a new savings goal.
type GoalInput struct {
	Name         string
	TargetAmount float64
	SavedAmount  float64
	Color        string
	Icon         string
	Deadline     *time.Time
}

// GoalUpdate holds the settable goal fields. Nil fields are untouched.
type GoalUpdate struct {
	Name         *string
	TargetAmount *float64
	SavedAmount  *float64
	Color        *string
	Icon         *string
	Deadline     *time.Time
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	ListGoals(userID string) ([]models.Goal, error)
	CreateGoal(userID string, input GoalInput) (*models.Goal, error)
	UpdateGoal(userID, goalID string, updates GoalUpdate) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
}

// AnalyticsServicer defines the contract for derived views. Everything is
// recomputed from the transaction store on each call.
type AnalyticsServicer interface {
	Trends(userID string, windowDays int, asOf time.Time) ([]analytics.TrendPoint, error)
	Insights(userID string) ([]analytics.Insight, error)
	Summary(userID string) (*analytics.SummaryResult, error)
}

// BackupServicer defines the contract for snapshot export/import.
type BackupServicer interface {
	Export(userID string) (*backup.Snapshot, error)
	Import(userID string, snap *backup.Snapshot) error
}
