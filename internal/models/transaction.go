package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodCard       PaymentMethod = "Card"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "NetBanking"
	PaymentMethodOther      PaymentMethod = "Other"
)

// RecurringFrequency represents how often a recurring transaction repeats.
type RecurringFrequency string

const (
	RecurringDaily   RecurringFrequency = "daily"
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
	RecurringYearly  RecurringFrequency = "yearly"
)

// Transaction represents a single expense or income record. Transactions
// are never edited in place; they are created once and deleted by their
// owner. RecurringFrequency must be set exactly when IsRecurring is true.
type Transaction struct {
	Base
	OwnerID            string             `gorm:"type:uuid;not null;index" json:"owner_id"`
	CategoryID         string             `gorm:"type:uuid;not null" json:"category_id"`
	Type               TransactionType    `gorm:"not null;default:'expense'" json:"type"`
	Amount             float64            `gorm:"not null" json:"amount"`
	Date               time.Time          `gorm:"not null;index" json:"date"`
	PaymentMethod      PaymentMethod      `gorm:"default:'UPI'" json:"payment_method"`
	TransactionRef     string             `json:"transaction_ref,omitempty"`
	Payee              string             `json:"payee,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	IsRecurring        bool               `gorm:"default:false" json:"is_recurring"`
	RecurringFrequency RecurringFrequency `json:"recurring_frequency,omitempty"`

	// Resolved at the response boundary; not a GORM association so that
	// deleting a category leaves rows untouched.
	Category *Category `gorm:"-" json:"category,omitempty"`
}
