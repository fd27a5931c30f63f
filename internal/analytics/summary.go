package analytics

import (
	"math"
	"sort"

	"finsense/internal/models"
)

// CategorySummary is one category's share of total expenses.
type CategorySummary struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// SummaryResult holds overall totals plus a per-category expense breakdown.
type SummaryResult struct {
	TotalExpenses float64           `json:"total_expenses"`
	TotalIncome   float64           `json:"total_income"`
	Balance       float64           `json:"balance"`
	Categories    []CategorySummary `json:"categories"`
}

// Summary computes income/expense totals and the category breakdown over
// the full transaction history. resolveName maps a category ID to its
// display name; it should fall back to "Uncategorized" for unknown IDs.
func Summary(txns []models.Transaction, resolveName func(categoryID string) string) SummaryResult {
	var totalExpenses, totalIncome float64
	byCategory := make(map[string]float64)

	for _, t := range txns {
		if t.Type == models.TransactionTypeIncome {
			totalIncome += t.Amount
			continue
		}
		totalExpenses += t.Amount
		byCategory[resolveName(t.CategoryID)] += t.Amount
	}

	categories := make([]CategorySummary, 0, len(byCategory))
	for name, amount := range byCategory {
		pct := 0
		if totalExpenses > 0 {
			pct = int(math.Round(amount / totalExpenses * 100))
		}
		categories = append(categories, CategorySummary{Name: name, Amount: amount, Percentage: pct})
	}

	// Largest spend first; name breaks ties so output is deterministic.
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Amount != categories[j].Amount {
			return categories[i].Amount > categories[j].Amount
		}
		return categories[i].Name < categories[j].Name
	})

	return SummaryResult{
		TotalExpenses: totalExpenses,
		TotalIncome:   totalIncome,
		Balance:       totalIncome - totalExpenses,
		Categories:    categories,
	}
}
