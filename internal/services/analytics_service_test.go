package services

import (
	"testing"
	"time"

	"finsense/internal/models"
	"finsense/internal/testutil"
)

func TestAnalyticsService_Trends(t *testing.T) {
	t.Run("seven-day window with explicit zero days", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		service := NewAnalyticsService(db)

		asOf := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionAt(t, db, user.ID, category.ID, models.TransactionTypeExpense, 120,
			time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC))
		testutil.CreateTestTransactionAt(t, db, user.ID, category.ID, models.TransactionTypeIncome, 1000,
			time.Date(2025, 6, 13, 10, 0, 0, 0, time.UTC))
		// Outside the window.
		testutil.CreateTestTransactionAt(t, db, user.ID, category.ID, models.TransactionTypeExpense, 999,
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

		points, err := service.Trends(user.ID, 7, asOf)
		testutil.AssertNoError(t, err)

		if len(points) != 7 {
			t.Fatalf("expected 7 points, got %d", len(points))
		}
		if points[0].Date != "2025-06-09" || points[6].Date != "2025-06-15" {
			t.Errorf("unexpected window bounds: %s .. %s", points[0].Date, points[6].Date)
		}

		active := points[4] // 2025-06-13
		if active.Income != 1000 || active.Expense != 120 || active.Balance != 880 {
			t.Errorf("unexpected active day: %+v", active)
		}
		for i, p := range points {
			if i == 4 {
				continue
			}
			if p.Income != 0 || p.Expense != 0 {
				t.Errorf("expected zero point for %s, got %+v", p.Date, p)
			}
		}
	})

	t.Run("other users' transactions never leak in", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)
		service := NewAnalyticsService(db)

		asOf := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		testutil.CreateTestTransactionAt(t, db, other.ID, category.ID, models.TransactionTypeExpense, 500,
			time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))

		points, err := service.Trends(user.ID, 7, asOf)
		testutil.AssertNoError(t, err)

		for _, p := range points {
			if p.Expense != 0 {
				t.Errorf("expected no spend from other users, got %+v", p)
			}
		}
	})
}

func TestAnalyticsService_Insights(t *testing.T) {
	t.Run("quiet history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		service := NewAnalyticsService(db)

		hints, err := service.Insights(user.ID)
		testutil.AssertNoError(t, err)

		if len(hints) != 1 || hints[0].Kind != "positive" {
			t.Errorf("expected a single positive insight, got %+v", hints)
		}
	})

	t.Run("food rule fires on the resolved category name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestDefaultCategory(t, db, "Food")
		service := NewAnalyticsService(db)

		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 1200)

		hints, err := service.Insights(user.ID)
		testutil.AssertNoError(t, err)

		if len(hints) != 1 || hints[0].Kind != "info" {
			t.Errorf("expected a single food insight, got %+v", hints)
		}
	})

	t.Run("high recent spend fires a warning", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		service := NewAnalyticsService(db)

		testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeExpense, 6000)

		hints, err := service.Insights(user.ID)
		testutil.AssertNoError(t, err)

		if len(hints) != 1 || hints[0].Kind != "warning" {
			t.Errorf("expected a warning, got %+v", hints)
		}
	})
}

func TestAnalyticsService_Summary(t *testing.T) {
	t.Run("totals and category breakdown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		food := testutil.CreateTestDefaultCategory(t, db, "Food")
		salary := testutil.CreateTestDefaultCategory(t, db, "Salary")
		service := NewAnalyticsService(db)

		testutil.CreateTestTransaction(t, db, user.ID, salary.ID, models.TransactionTypeIncome, 10000)
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 750)
		testutil.CreateTestTransaction(t, db, user.ID, food.ID, models.TransactionTypeExpense, 250)

		result, err := service.Summary(user.ID)
		testutil.AssertNoError(t, err)

		if result.TotalIncome != 10000 || result.TotalExpenses != 1000 || result.Balance != 9000 {
			t.Errorf("unexpected totals: %+v", result)
		}
		if len(result.Categories) != 1 {
			t.Fatalf("expected 1 expense category, got %d", len(result.Categories))
		}
		if result.Categories[0].Name != "Food" || result.Categories[0].Percentage != 100 {
			t.Errorf("unexpected breakdown: %+v", result.Categories[0])
		}
	})

	t.Run("deleted category folds into Uncategorized", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		service := NewAnalyticsService(db)

		testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeExpense, 100)
		if err := db.Delete(&models.Category{}, "id = ?", category.ID).Error; err != nil {
			t.Fatalf("failed to delete category: %v", err)
		}

		result, err := service.Summary(user.ID)
		testutil.AssertNoError(t, err)

		if len(result.Categories) != 1 || result.Categories[0].Name != "Uncategorized" {
			t.Errorf("expected Uncategorized bucket, got %+v", result.Categories)
		}
	})
}
