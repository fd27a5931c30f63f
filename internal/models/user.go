package models

// DefaultUserEmail identifies the single implicit identity every request
// operates as. It is ensured at startup and never registered interactively.
const DefaultUserEmail = "default@finsense.local"

// User represents a profile in the system. There is exactly one in a
// standard deployment, but every store operation still takes an explicit
// user ID rather than reading a global.
type User struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Currency     string `gorm:"default:'₹'" json:"currency"`
}
