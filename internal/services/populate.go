package services

import (
	"finsense/internal/errors"
	"finsense/internal/models"

	"gorm.io/gorm"
)

// loadCategoryMap fetches every category referenced by ids in one query.
func loadCategoryMap(db *gorm.DB, ids []string) (map[string]*models.Category, error) {
	byID := make(map[string]*models.Category, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, errors.Wrap(errors.ErrInternalServer, err)
	}
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	return byID, nil
}

// populateTransactionCategories resolves the category join for a slice of
// transactions in a single query. Transactions whose category has been
// deleted resolve to the Uncategorized placeholder; this is the only
// place the join is materialized.
func populateTransactionCategories(db *gorm.DB, txns []models.Transaction) error {
	ids := make([]string, 0, len(txns))
	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		if !seen[t.CategoryID] {
			seen[t.CategoryID] = true
			ids = append(ids, t.CategoryID)
		}
	}

	byID, err := loadCategoryMap(db, ids)
	if err != nil {
		return err
	}

	for i := range txns {
		if c, ok := byID[txns[i].CategoryID]; ok {
			txns[i].Category = c
		} else {
			txns[i].Category = models.UncategorizedCategory()
		}
	}
	return nil
}
