package analytics

import (
	"fmt"
	"sort"
	"strconv"

	"finsense/internal/models"
)

// InsightKind classifies an insight's severity.
type InsightKind string

const (
	InsightWarning  InsightKind = "warning"
	InsightInfo     InsightKind = "info"
	InsightPositive InsightKind = "positive"
)

// Insight is a short rule-triggered observation about recent spending.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Message string      `json:"message"`
}

const (
	// insightWindow bounds how many recent transactions the rules inspect.
	insightWindow = 20

	highSpendThreshold = 5000
	foodSpendThreshold = 1000
)

// Insights evaluates the fixed rule table against the most recent
// transactions. Rules fire in declaration order; if none fire, exactly
// one positive insight is returned.
func Insights(txns []models.Transaction) []Insight {
	recent := mostRecent(txns, insightWindow)

	var hints []Insight

	var total float64
	for _, t := range recent {
		total += t.Amount
	}
	if total > highSpendThreshold {
		hints = append(hints, Insight{
			Kind:    InsightWarning,
			Message: fmt.Sprintf("High spending alert! You've spent %s recently.", formatAmount(total)),
		})
	}

	var foodSpend float64
	for _, t := range recent {
		if t.Category != nil && t.Category.Name == "Food" {
			foodSpend += t.Amount
		}
	}
	if foodSpend > foodSpendThreshold {
		hints = append(hints, Insight{
			Kind:    InsightInfo,
			Message: "Consider cooking at home to save on Food!",
		})
	}

	if len(hints) == 0 {
		hints = append(hints, Insight{
			Kind:    InsightPositive,
			Message: "Your spending seems controlled. Keep it up!",
		})
	}

	return hints
}

// mostRecent returns up to n transactions ordered newest first.
func mostRecent(txns []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
