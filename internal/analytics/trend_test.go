package analytics

import (
	"testing"
	"time"

	"finsense/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return parsed
}

func tx(txType models.TransactionType, amount float64, date time.Time) models.Transaction {
	return models.Transaction{Type: txType, Amount: amount, Date: date}
}

func TestTrend(t *testing.T) {
	asOf := day(t, "2025-06-15") // a Sunday

	t.Run("empty history yields explicit zero days", func(t *testing.T) {
		points := Trend(nil, 7, asOf)

		if len(points) != 7 {
			t.Fatalf("expected 7 points, got %d", len(points))
		}
		if points[0].Date != "2025-06-09" {
			t.Errorf("expected series to start at 2025-06-09, got %s", points[0].Date)
		}
		if points[6].Date != "2025-06-15" {
			t.Errorf("expected series to end at 2025-06-15, got %s", points[6].Date)
		}
		for _, p := range points {
			if p.Income != 0 || p.Expense != 0 || p.Balance != 0 {
				t.Errorf("expected zero point for %s, got %+v", p.Date, p)
			}
		}
	})

	t.Run("aggregates same-day transactions", func(t *testing.T) {
		txns := []models.Transaction{
			tx(models.TransactionTypeExpense, 100, day(t, "2025-06-14")),
			tx(models.TransactionTypeExpense, 50, day(t, "2025-06-14")),
			tx(models.TransactionTypeIncome, 500, day(t, "2025-06-14")),
		}

		points := Trend(txns, 7, asOf)

		p := points[5] // 2025-06-14
		if p.Date != "2025-06-14" {
			t.Fatalf("expected 2025-06-14 at index 5, got %s", p.Date)
		}
		if p.Income != 500 || p.Expense != 150 {
			t.Errorf("expected income 500 / expense 150, got %+v", p)
		}
		if p.Balance != 350 {
			t.Errorf("expected day balance 350, got %v", p.Balance)
		}
	})

	t.Run("transactions outside the window are ignored", func(t *testing.T) {
		txns := []models.Transaction{
			tx(models.TransactionTypeExpense, 999, day(t, "2025-06-01")),
			tx(models.TransactionTypeExpense, 10, day(t, "2025-06-15")),
		}

		points := Trend(txns, 7, asOf)

		var total float64
		for _, p := range points {
			total += p.Expense
		}
		if total != 10 {
			t.Errorf("expected only in-window expense 10, got %v", total)
		}
	})

	t.Run("labels are short weekday names", func(t *testing.T) {
		points := Trend(nil, 7, asOf)

		if points[6].Label != "Sun" {
			t.Errorf("expected Sun for 2025-06-15, got %s", points[6].Label)
		}
		if points[0].Label != "Mon" {
			t.Errorf("expected Mon for 2025-06-09, got %s", points[0].Label)
		}
	})

	t.Run("window below one is clamped", func(t *testing.T) {
		points := Trend(nil, 0, asOf)
		if len(points) != 1 {
			t.Errorf("expected 1 point, got %d", len(points))
		}
	})
}

func TestCumulativeTrend(t *testing.T) {
	now := day(t, "2025-06-15")

	t.Run("empty history yields single zero point for today", func(t *testing.T) {
		points := CumulativeTrend(nil, now)

		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
		if points[0].Date != "2025-06-15" || points[0].Balance != 0 {
			t.Errorf("expected zero point for today, got %+v", points[0])
		}
	})

	t.Run("prepends zero baseline and accumulates balance", func(t *testing.T) {
		txns := []models.Transaction{
			tx(models.TransactionTypeIncome, 1000, day(t, "2025-06-10")),
			tx(models.TransactionTypeExpense, 300, day(t, "2025-06-12")),
			tx(models.TransactionTypeExpense, 200, day(t, "2025-06-12")),
		}

		points := CumulativeTrend(txns, now)

		if len(points) != 3 {
			t.Fatalf("expected 3 points (baseline + 2 active days), got %d", len(points))
		}
		if points[0].Date != "2025-06-09" || points[0].Balance != 0 {
			t.Errorf("expected zero baseline on 2025-06-09, got %+v", points[0])
		}
		if points[1].Balance != 1000 {
			t.Errorf("expected running balance 1000 on first day, got %v", points[1].Balance)
		}
		if points[2].Balance != 500 {
			t.Errorf("expected running balance 500 on second day, got %v", points[2].Balance)
		}
		if points[2].Expense != 500 {
			t.Errorf("expected day expense 500, got %v", points[2].Expense)
		}
	})

	t.Run("days are ordered oldest first regardless of input order", func(t *testing.T) {
		txns := []models.Transaction{
			tx(models.TransactionTypeExpense, 1, day(t, "2025-06-14")),
			tx(models.TransactionTypeExpense, 1, day(t, "2025-06-10")),
			tx(models.TransactionTypeExpense, 1, day(t, "2025-06-12")),
		}

		points := CumulativeTrend(txns, now)

		for i := 1; i < len(points); i++ {
			if points[i].Date <= points[i-1].Date {
				t.Errorf("points out of order at %d: %s then %s", i, points[i-1].Date, points[i].Date)
			}
		}
	})
}
