package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finsense/internal/errors"
	"finsense/internal/models"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// ListGoals returns the user's goals, oldest first.
func (s *goalService) ListGoals(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("owner_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// CreateGoal creates a new savings goal.
func (s *goalService) CreateGoal(userID string, input GoalInput) (*models.Goal, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if input.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}
	if input.SavedAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "saved amount cannot be negative")
	}

	goal := &models.Goal{
		OwnerID:      userID,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		SavedAmount:  input.SavedAmount,
		Color:        input.Color,
		Icon:         input.Icon,
		Deadline:     input.Deadline,
	}
	if goal.Color == "" {
		goal.Color = "#10B981"
	}
	if goal.Icon == "" {
		goal.Icon = "Target"
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// UpdateGoal applies updates to a goal owned by the user. SavedAmount is
// settable to any non-negative value, including below its previous value
// or above the target; the data layer never clamps.
func (s *goalService) UpdateGoal(userID, goalID string, updates GoalUpdate) (*models.Goal, error) {
	goal, err := s.getOwnedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if updates.Name != nil {
		if *updates.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
		}
		fields["name"] = *updates.Name
	}
	if updates.TargetAmount != nil {
		if *updates.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
		}
		fields["target_amount"] = *updates.TargetAmount
	}
	if updates.SavedAmount != nil {
		if *updates.SavedAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "saved amount cannot be negative")
		}
		fields["saved_amount"] = *updates.SavedAmount
	}
	if updates.Color != nil {
		fields["color"] = *updates.Color
	}
	if updates.Icon != nil {
		fields["icon"] = *updates.Icon
	}
	if updates.Deadline != nil {
		fields["deadline"] = updates.Deadline
	}

	if len(fields) > 0 {
		if err := s.db.Model(goal).Updates(fields).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return goal, nil
}

// DeleteGoal removes a goal owned by the user.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.getOwnedGoal(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *goalService) getOwnedGoal(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND owner_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}
