package models

import "time"

// Goal represents a savings target. SavedAmount is a free-form running
// total set directly by the caller; there is no contribution ledger. It
// may decrease or exceed TargetAmount, but never goes negative.
type Goal struct {
	Base
	OwnerID      string     `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name         string     `gorm:"not null" json:"name"`
	TargetAmount float64    `gorm:"not null" json:"target_amount"`
	SavedAmount  float64    `gorm:"default:0" json:"saved_amount"`
	Color        string     `gorm:"default:'#10B981'" json:"color"`
	Icon         string     `gorm:"default:'Target'" json:"icon"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}
