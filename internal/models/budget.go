package models

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

// BudgetPeriodMonth is the only supported period.
const BudgetPeriodMonth BudgetPeriod = "month"

// Budget caps spending for one category. At most one budget exists per
// (owner, category) pair; posting again updates the amount in place.
type Budget struct {
	Base
	OwnerID    string       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_owner_category" json:"owner_id"`
	CategoryID string       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_owner_category" json:"category_id"`
	Amount     float64      `gorm:"not null" json:"amount"`
	Period     BudgetPeriod `gorm:"not null;default:'month'" json:"period"`

	Category *Category `gorm:"-" json:"category,omitempty"`
}
