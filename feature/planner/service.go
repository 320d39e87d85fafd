package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pantry-manager/core/session"
	"pantry-manager/feature/planner/models"
	"pantry-manager/feature/recipes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidPlan is returned when the planner form fails validation.
	ErrInvalidPlan = errors.New("invalid meal plan")
	// ErrPlanNotFound is returned when the entry doesn't exist for this owner.
	ErrPlanNotFound = errors.New("planned recipe not found")
)

// Service handles meal planner operations.
type Service struct {
	db      *gorm.DB
	logger  *zap.Logger
	recipes *recipes.Service
}

// NewService creates a new planner service.
func NewService(db *gorm.DB, logger *zap.Logger, recipeService *recipes.Service) *Service {
	return &Service{db: db, logger: logger, recipes: recipeService}
}

// Plan schedules one of the owner's recipes on a date. Name and category are
// copied from the recipe at planning time.
func (s *Service) Plan(ctx context.Context, sess session.Session, req models.PlanRequest) (*models.PlannedRecipe, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be a YYYY-MM-DD date", ErrInvalidPlan)
	}
	if req.RecipeID == 0 {
		return nil, fmt.Errorf("%w: recipe is required", ErrInvalidPlan)
	}

	recipe, err := s.recipes.Get(ctx, sess, req.RecipeID)
	if err != nil {
		return nil, err
	}

	entry := models.PlannedRecipe{
		Owner:    sess.Username,
		Date:     date,
		RecipeID: recipe.ID,
		Name:     recipe.Name,
		Category: recipe.Category,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to plan recipe: %w", err)
	}
	return &entry, nil
}

// List returns the owner's planned recipes in date order, optionally limited
// to a from/to date window (inclusive).
func (s *Service) List(ctx context.Context, sess session.Session, from, to string) ([]models.View, error) {
	query := s.db.WithContext(ctx).Where("owner = ?", sess.Username)

	if from != "" {
		date, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, fmt.Errorf("%w: from must be a YYYY-MM-DD date", ErrInvalidPlan)
		}
		query = query.Where("date >= ?", date)
	}
	if to != "" {
		date, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, fmt.Errorf("%w: to must be a YYYY-MM-DD date", ErrInvalidPlan)
		}
		query = query.Where("date <= ?", date)
	}

	var entries []models.PlannedRecipe
	if err := query.Order("date, id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list planned recipes: %w", err)
	}

	views := make([]models.View, 0, len(entries))
	for _, entry := range entries {
		views = append(views, models.NewView(entry))
	}
	return views, nil
}

// Delete removes one of the owner's planned recipes.
func (s *Service) Delete(ctx context.Context, sess session.Session, id uint) error {
	result := s.db.WithContext(ctx).
		Where("owner = ? AND id = ?", sess.Username, id).
		Delete(&models.PlannedRecipe{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete planned recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
