// Package analytics contains the pure computation core: trend series,
// rule-based insights, budget progress, and summary breakdowns. Every
// function here is deterministic over its inputs so the service layer can
// recompute views on each read without caching.
package analytics

import (
	"sort"
	"time"

	"finsense/internal/models"
)

// TrendPoint is one day of aggregated activity.
type TrendPoint struct {
	Date    string  `json:"date"`  // YYYY-MM-DD, UTC
	Label   string  `json:"label"` // short weekday name, e.g. "Mon"
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

const dayFormat = "2006-01-02"

// Trend aggregates transactions into a fixed-length per-day series ending
// at asOf, oldest first. The series always has exactly windowDays entries;
// days with no transactions are explicit zero points. Balance is the
// day's income minus expense, not cumulative.
func Trend(txns []models.Transaction, windowDays int, asOf time.Time) []TrendPoint {
	if windowDays < 1 {
		windowDays = 1
	}

	type daySums struct {
		income  float64
		expense float64
	}
	byDay := make(map[string]daySums)
	for _, t := range txns {
		key := t.Date.UTC().Format(dayFormat)
		sums := byDay[key]
		if t.Type == models.TransactionTypeIncome {
			sums.income += t.Amount
		} else {
			sums.expense += t.Amount
		}
		byDay[key] = sums
	}

	end := asOf.UTC()
	points := make([]TrendPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		key := day.Format(dayFormat)
		sums := byDay[key]
		points = append(points, TrendPoint{
			Date:    key,
			Label:   day.Format("Mon"),
			Income:  sums.income,
			Expense: sums.expense,
			Balance: sums.income - sums.expense,
		})
	}
	return points
}

// CumulativeTrend aggregates the full history by day with a running
// balance across the series. A zero point is prepended one day before the
// first transaction so charts have a baseline; an empty history yields a
// single zero point for today.
func CumulativeTrend(txns []models.Transaction, now time.Time) []TrendPoint {
	type daySums struct {
		income  float64
		expense float64
	}
	byDay := make(map[string]daySums)
	for _, t := range txns {
		key := t.Date.UTC().Format(dayFormat)
		sums := byDay[key]
		if t.Type == models.TransactionTypeIncome {
			sums.income += t.Amount
		} else {
			sums.expense += t.Amount
		}
		byDay[key] = sums
	}

	if len(byDay) == 0 {
		return []TrendPoint{{Date: now.UTC().Format(dayFormat), Label: now.UTC().Format("Mon")}}
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	first, _ := time.Parse(dayFormat, keys[0])
	lead := first.AddDate(0, 0, -1)

	points := make([]TrendPoint, 0, len(keys)+1)
	points = append(points, TrendPoint{Date: lead.Format(dayFormat), Label: lead.Format("Mon")})

	balance := 0.0
	for _, k := range keys {
		day, _ := time.Parse(dayFormat, k)
		sums := byDay[k]
		balance += sums.income - sums.expense
		points = append(points, TrendPoint{
			Date:    k,
			Label:   day.Format("Mon"),
			Income:  sums.income,
			Expense: sums.expense,
			Balance: balance,
		})
	}
	return points
}
