package analytics

import (
	"time"

	"finsense/internal/models"
)

// ProgressResult is month-to-date spend measured against a budget cap.
type ProgressResult struct {
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
	IsOver     bool    `json:"is_over"`
}

// Progress measures spent against cap. Percentage is clamped to 100;
// IsOver compares the unclamped values. A zero cap counts as fully used
// the moment anything is spent.
func Progress(cap, spent float64) ProgressResult {
	var pct float64
	switch {
	case cap <= 0:
		if spent > 0 {
			pct = 100
		}
	default:
		pct = spent / cap * 100
		if pct > 100 {
			pct = 100
		}
	}
	return ProgressResult{
		Spent:      spent,
		Percentage: pct,
		IsOver:     spent > cap,
	}
}

// MonthToDateSpent sums expense transactions in the category from the
// first calendar day of ref's month through ref, inclusive, in UTC.
func MonthToDateSpent(txns []models.Transaction, categoryID string, ref time.Time) float64 {
	ref = ref.UTC()
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	var spent float64
	for _, t := range txns {
		if t.Type != models.TransactionTypeExpense || t.CategoryID != categoryID {
			continue
		}
		d := t.Date.UTC()
		if d.Before(monthStart) || d.After(ref) {
			continue
		}
		spent += t.Amount
	}
	return spent
}

// ProgressStatus maps a clamped percentage to the display tier used by
// budget consumers: under 80 is "ok", 80 up to 100 is "warning", and 100
// is "over".
func ProgressStatus(percentage float64) string {
	switch {
	case percentage < 80:
		return "ok"
	case percentage < 100:
		return "warning"
	default:
		return "over"
	}
}
