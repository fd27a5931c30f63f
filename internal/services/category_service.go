package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// defaultCategories are seeded as ownerless globals the first time any
// category list is read.
var defaultCategories = []models.Category{
	{Name: "Food", Type: models.CategoryTypeExpense, Color: "#EF4444", Icon: "Utensils"},
	{Name: "Travel", Type: models.CategoryTypeExpense, Color: "#F59E0B", Icon: "Car"},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#8B5CF6", Icon: "Film"},
	{Name: "Bills", Type: models.CategoryTypeExpense, Color: "#3B82F6", Icon: "Receipt"},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Color: "#EC4899", Icon: "ShoppingBag"},
	{Name: "Health", Type: models.CategoryTypeExpense, Color: "#10B981", Icon: "Activity"},
	{Name: "Salary", Type: models.CategoryTypeIncome, Color: "#22C55E", Icon: "Banknote"},
	{Name: "Investment", Type: models.CategoryTypeIncome, Color: "#6366F1", Icon: "TrendingUp"},
}

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns global defaults plus the user's own categories,
// seeding the defaults on first read if none exist.
func (s *categoryService) ListCategories(userID string) ([]models.Category, error) {
	var defaultCount int64
	if err := s.db.Model(&models.Category{}).Where("owner_id IS NULL").Count(&defaultCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if defaultCount == 0 {
		seed := make([]models.Category, len(defaultCategories))
		copy(seed, defaultCategories)
		if err := s.db.Create(&seed).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	var categories []models.Category
	if err := s.db.
		Where("owner_id IS NULL OR owner_id = ?", userID).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCategory creates a custom category owned by the user.
func (s *categoryService) CreateCategory(
	userID, name string,
	categoryType models.CategoryType,
	color, icon string,
) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("(owner_id IS NULL OR owner_id = ?) AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		OwnerID: &userID,
		Name:    name,
		Type:    categoryType,
		Color:   color,
		Icon:    icon,
	}
	if category.Color == "" {
		category.Color = "#6366F1"
	}
	if category.Icon == "" {
		category.Icon = "Tag"
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteCategory removes a user-owned category. Global defaults and other
// users' categories cannot be deleted. Referencing transactions are left
// untouched; they resolve to Uncategorized on next read.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if category.IsDefault() {
		return apperrors.ErrDefaultCategory
	}
	if *category.OwnerID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
