package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. Categories with a nil
// OwnerID are global defaults shared by every profile and cannot be
// deleted; user-owned categories may be deleted freely.
type Category struct {
	Base
	OwnerID *string      `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Name    string       `gorm:"not null" json:"name"`
	Type    CategoryType `gorm:"not null;default:'expense'" json:"type"`
	Color   string       `gorm:"default:'#6366F1'" json:"color"`
	Icon    string       `gorm:"default:'Tag'" json:"icon"`
}

// IsDefault reports whether the category is an ownerless global default.
func (c *Category) IsDefault() bool {
	return c.OwnerID == nil
}

// UncategorizedCategory is the placeholder resolved for transactions whose
// category has been deleted.
func UncategorizedCategory() *Category {
	return &Category{
		Name:  "Uncategorized",
		Type:  CategoryTypeExpense,
		Color: "#94a3b8",
		Icon:  "Wallet",
	}
}
