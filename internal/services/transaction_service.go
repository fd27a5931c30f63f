package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finsense/internal/errors"
	"finsense/internal/models"
	"finsense/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions returns the user's transactions newest first, with
// categories resolved at the response boundary.
func (s *transactionService) ListTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("owner_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := populateTransactionCategories(s.db, txns); err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(txns, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// CreateTransaction records a new expense or income entry. The referenced
// category must be a global default or owned by the user, and the
// recurring frequency must be set exactly when the transaction recurs.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if input.IsRecurring && input.RecurringFrequency == "" {
		return nil, apperrors.ErrRecurringNeedsFreq
	}
	if !input.IsRecurring && input.RecurringFrequency != "" {
		return nil, apperrors.ErrFrequencyNotAllowed
	}

	var category models.Category
	if err := s.db.
		Where("id = ? AND (owner_id IS NULL OR owner_id = ?)", input.CategoryID, userID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	txn := &models.Transaction{
		OwnerID:            userID,
		CategoryID:         input.CategoryID,
		Type:               input.Type,
		Amount:             input.Amount,
		Date:               input.Date,
		PaymentMethod:      input.PaymentMethod,
		TransactionRef:     input.TransactionRef,
		Payee:              input.Payee,
		Notes:              input.Notes,
		IsRecurring:        input.IsRecurring,
		RecurringFrequency: input.RecurringFrequency,
	}
	if txn.Type == "" {
		txn.Type = models.TransactionTypeExpense
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}
	if txn.PaymentMethod == "" {
		txn.PaymentMethod = models.PaymentMethodUPI
	}

	if err := s.db.Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	txn.Category = &category
	return txn, nil
}

// DeleteTransaction removes a transaction owned by the user. A foreign
// transaction is indistinguishable from a missing one.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	var txn models.Transaction
	if err := s.db.Where("id = ? AND owner_id = ?", transactionID, userID).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&txn).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
