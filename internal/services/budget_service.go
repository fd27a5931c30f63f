package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"finsense/internal/analytics"
	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// UpsertBudget sets the monthly cap for a category. If a budget already
// exists for the (user, category) pair its amount is updated in place;
// the returned bool reports whether a new budget was created.
func (s *budgetService) UpsertBudget(userID, categoryID string, amount float64) (*models.Budget, bool, error) {
	if amount <= 0 {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be positive")
	}

	var category models.Category
	if err := s.db.
		Where("id = ? AND (owner_id IS NULL OR owner_id = ?)", categoryID, userID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.ErrCategoryNotFound
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budget models.Budget
	err := s.db.Where("owner_id = ? AND category_id = ?", userID, categoryID).First(&budget).Error
	switch {
	case err == nil:
		if err := s.db.Model(&budget).Update("amount", amount).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		budget.Amount = amount
		budget.Category = &category
		return &budget, false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{
			OwnerID:    userID,
			CategoryID: categoryID,
			Amount:     amount,
			Period:     models.BudgetPeriodMonth,
		}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		budget.Category = &category
		return &budget, true, nil

	default:
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// ListBudgets returns the user's budgets with categories resolved and
// month-to-date progress computed against asOf.
func (s *budgetService) ListBudgets(userID string, asOf time.Time) ([]BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("owner_id = ?", userID).Order("created_at ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ids := make([]string, 0, len(budgets))
	for _, b := range budgets {
		ids = append(ids, b.CategoryID)
	}
	byID, err := loadCategoryMap(s.db, ids)
	if err != nil {
		return nil, err
	}

	// One month-window query feeds every budget's calculator.
	monthStart := time.Date(asOf.UTC().Year(), asOf.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	var monthTxns []models.Transaction
	if err := s.db.
		Where("owner_id = ? AND type = ? AND date >= ? AND date <= ?",
			userID, models.TransactionTypeExpense, monthStart, asOf).
		Find(&monthTxns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		if c, ok := byID[b.CategoryID]; ok {
			b.Category = c
		} else {
			b.Category = models.UncategorizedCategory()
		}

		spent := analytics.MonthToDateSpent(monthTxns, b.CategoryID, asOf)
		progress := analytics.Progress(b.Amount, spent)
		statuses = append(statuses, BudgetStatus{
			Budget:     b,
			Spent:      progress.Spent,
			Percentage: progress.Percentage,
			IsOver:     progress.IsOver,
			Status:     analytics.ProgressStatus(progress.Percentage),
		})
	}
	return statuses, nil
}
