package analytics

import (
	"testing"
	"time"

	"finsense/internal/models"
)

func TestSummary(t *testing.T) {
	names := map[string]string{
		"cat-food":   "Food",
		"cat-travel": "Travel",
	}
	resolve := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return "Uncategorized"
	}

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mkTx := func(txType models.TransactionType, categoryID string, amount float64) models.Transaction {
		return models.Transaction{Type: txType, CategoryID: categoryID, Amount: amount, Date: date}
	}

	t.Run("empty history", func(t *testing.T) {
		result := Summary(nil, resolve)

		if result.TotalExpenses != 0 || result.TotalIncome != 0 || result.Balance != 0 {
			t.Errorf("expected zero totals, got %+v", result)
		}
		if len(result.Categories) != 0 {
			t.Errorf("expected no categories, got %d", len(result.Categories))
		}
	})

	t.Run("totals and breakdown", func(t *testing.T) {
		txns := []models.Transaction{
			mkTx(models.TransactionTypeIncome, "cat-salary", 10000),
			mkTx(models.TransactionTypeExpense, "cat-food", 600),
			mkTx(models.TransactionTypeExpense, "cat-food", 150),
			mkTx(models.TransactionTypeExpense, "cat-travel", 250),
		}

		result := Summary(txns, resolve)

		if result.TotalIncome != 10000 {
			t.Errorf("expected income 10000, got %v", result.TotalIncome)
		}
		if result.TotalExpenses != 1000 {
			t.Errorf("expected expenses 1000, got %v", result.TotalExpenses)
		}
		if result.Balance != 9000 {
			t.Errorf("expected balance 9000, got %v", result.Balance)
		}

		if len(result.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(result.Categories))
		}
		if result.Categories[0].Name != "Food" || result.Categories[0].Amount != 750 {
			t.Errorf("expected Food 750 first, got %+v", result.Categories[0])
		}
		if result.Categories[0].Percentage != 75 {
			t.Errorf("expected Food at 75%%, got %d", result.Categories[0].Percentage)
		}
		if result.Categories[1].Percentage != 25 {
			t.Errorf("expected Travel at 25%%, got %d", result.Categories[1].Percentage)
		}
	})

	t.Run("unknown category folds into Uncategorized", func(t *testing.T) {
		txns := []models.Transaction{
			mkTx(models.TransactionTypeExpense, "deleted-cat", 100),
		}

		result := Summary(txns, resolve)

		if len(result.Categories) != 1 || result.Categories[0].Name != "Uncategorized" {
			t.Fatalf("expected Uncategorized bucket, got %+v", result.Categories)
		}
	})

	t.Run("equal amounts break ties by name", func(t *testing.T) {
		txns := []models.Transaction{
			mkTx(models.TransactionTypeExpense, "cat-travel", 100),
			mkTx(models.TransactionTypeExpense, "cat-food", 100),
		}

		result := Summary(txns, resolve)

		if result.Categories[0].Name != "Food" || result.Categories[1].Name != "Travel" {
			t.Errorf("expected alphabetical tie-break, got %+v", result.Categories)
		}
	})
}
