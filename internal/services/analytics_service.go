package services

import (
	"time"

	"gorm.io/gorm"

	"finsense/internal/analytics"
	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// analyticsService recomputes derived views from the transaction store on
// each call. There is no caching or incremental maintenance; at personal
// scale every read is a full O(n) pass.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// Trends returns the gap-filled per-day series for the window ending at
// asOf.
func (s *analyticsService) Trends(userID string, windowDays int, asOf time.Time) ([]analytics.TrendPoint, error) {
	if windowDays < 1 {
		windowDays = 1
	}

	end := asOf.UTC()
	windowStart := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(windowDays - 1))

	var txns []models.Transaction
	if err := s.db.
		Where("owner_id = ? AND date >= ? AND date <= ?", userID, windowStart, end).
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return analytics.Trend(txns, windowDays, asOf), nil
}

// Insights evaluates the rule table against the user's most recent
// transactions.
func (s *analyticsService) Insights(userID string) ([]analytics.Insight, error) {
	var txns []models.Transaction
	if err := s.db.
		Where("owner_id = ?", userID).
		Order("date DESC").
		Limit(20).
		Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := populateTransactionCategories(s.db, txns); err != nil {
		return nil, err
	}

	return analytics.Insights(txns), nil
}

// Summary computes overall totals and the category breakdown over the
// user's full history.
func (s *analyticsService) Summary(userID string) (*analytics.SummaryResult, error) {
	var txns []models.Transaction
	if err := s.db.Where("owner_id = ?", userID).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ids := make([]string, 0, len(txns))
	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		if !seen[t.CategoryID] {
			seen[t.CategoryID] = true
			ids = append(ids, t.CategoryID)
		}
	}
	byID, err := loadCategoryMap(s.db, ids)
	if err != nil {
		return nil, err
	}

	result := analytics.Summary(txns, func(categoryID string) string {
		if c, ok := byID[categoryID]; ok {
			return c.Name
		}
		return models.UncategorizedCategory().Name
	})
	return &result, nil
}
