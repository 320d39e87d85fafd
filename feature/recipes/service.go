package recipes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pantry-manager/core/logger"
	"pantry-manager/core/reconcile"
	"pantry-manager/core/session"
	invmodels "pantry-manager/feature/inventory/models"
	"pantry-manager/feature/recipes/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidRecipe is returned when the recipe form fails validation.
	ErrInvalidRecipe = errors.New("invalid recipe")
	// ErrRecipeNotFound is returned when the recipe doesn't exist for this owner.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrStaleInventory is returned by the transactional apply when an
	// inventory record changed between the decision snapshot and the write.
	ErrStaleInventory = errors.New("inventory changed while making the recipe")
)

// InventorySource provides the inventory reads the engine decisions run on.
type InventorySource interface {
	Snapshot(ctx context.Context, owner string) ([]reconcile.Item, error)
}

// ShoppingSink provides the shopping-list side of the shortfall merge.
type ShoppingSink interface {
	Snapshot(ctx context.Context, owner string) ([]reconcile.Line, error)
	ApplyMerge(ctx context.Context, owner string, ops []reconcile.LineOp) error
}

// Service handles recipe operations and drives the reconcile engine.
type Service struct {
	db        *gorm.DB
	logger    *zap.Logger
	cfg       reconcile.Config
	shopping  ShoppingSink
	snapshots *reconcile.SnapshotCache
	now       func() time.Time
}

// NewService creates a new recipes service. Inventory snapshots go through a
// cache whose TTL comes from the reconcile config; a zero TTL reads fresh on
// every decision.
func NewService(db *gorm.DB, logger *zap.Logger, cfg reconcile.Config, inv InventorySource, shop ShoppingSink) *Service {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return &Service{
		db:        db,
		logger:    logger,
		cfg:       cfg,
		shopping:  shop,
		snapshots: reconcile.NewSnapshotCache(ttl, inv.Snapshot),
		now:       time.Now,
	}
}

// Create validates the form payload and inserts a new recipe for the owner.
func (s *Service) Create(ctx context.Context, sess session.Session, req models.CreateRequest) (*models.Recipe, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRecipe)
	}
	if !models.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidRecipe, req.Category)
	}
	if req.Servings <= 0 {
		return nil, fmt.Errorf("%w: servings must be positive", ErrInvalidRecipe)
	}
	if !models.IsValidDifficulty(req.Difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRecipe, req.Difficulty)
	}

	ingredients, err := buildIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := buildSteps(req.Steps)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Owner:       sess.Username,
		Name:        name,
		NameKey:     reconcile.NormalizeName(name),
		Category:    req.Category,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
		Notes:       strings.TrimSpace(req.Notes),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Ingredients: ingredients,
		Steps:       steps,
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return &recipe, nil
}

// buildIngredients validates the ingredient rows. At least one complete row
// is required and every row must carry a name and a parseable quantity.
func buildIngredients(rows []models.IngredientRequest) ([]models.RecipeIngredient, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidRecipe)
	}

	ingredients := make([]models.RecipeIngredient, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		quantity := strings.TrimSpace(row.Quantity)
		if name == "" || quantity == "" {
			return nil, fmt.Errorf("%w: ingredient %d is incomplete", ErrInvalidRecipe, i+1)
		}
		if parsed, err := strconv.ParseFloat(quantity, 64); err != nil || parsed <= 0 {
			return nil, fmt.Errorf("%w: ingredient %d has an invalid quantity", ErrInvalidRecipe, i+1)
		}
		ingredients = append(ingredients, models.RecipeIngredient{
			Position: i,
			Name:     name,
			Quantity: quantity,
			Unit:     reconcile.NormalizeUnit(row.Unit),
		})
	}
	return ingredients, nil
}

// buildSteps validates the preparation steps. At least one non-empty step is
// required and blank steps are rejected rather than silently dropped.
func buildSteps(rows []string) ([]models.RecipeStep, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: at least one step is required", ErrInvalidRecipe)
	}

	steps := make([]models.RecipeStep, 0, len(rows))
	for i, row := range rows {
		text := strings.TrimSpace(row)
		if text == "" {
			return nil, fmt.Errorf("%w: step %d is empty", ErrInvalidRecipe, i+1)
		}
		steps = append(steps, models.RecipeStep{Position: i, Text: text})
	}
	return steps, nil
}

// List returns the owner's recipes with ingredients and steps, filtered by an
// optional case-insensitive search over name, category and ingredient names,
// plus exact category and difficulty filters.
func (s *Service) List(ctx context.Context, sess session.Session, search, category, difficulty string) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("owner = ?", sess.Username)

	if search != "" {
		pattern := "%" + reconcile.NormalizeName(search) + "%"
		query = query.Where(
			"name_key LIKE ? OR LOWER(category) LIKE ? OR EXISTS (SELECT 1 FROM recipe_ingredients WHERE recipe_ingredients.recipe_id = recipes.id AND LOWER(recipe_ingredients.name) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var recipes []models.Recipe
	if err := query.Order("id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Get loads one of the owner's recipes with its ingredients and steps.
func (s *Service) Get(ctx context.Context, sess session.Session, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("owner = ? AND id = ?", sess.Username, id).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &recipe, nil
}

// ToggleFavorite flips the recipe's favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, sess session.Session, id uint) (bool, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Where("owner = ? AND id = ?", sess.Username, id).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrRecipeNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to load recipe: %w", err)
	}

	favorite := !recipe.Favorite
	err = s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("owner = ? AND id = ?", sess.Username, id).
		Update("favorite", favorite).Error
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return favorite, nil
}

// Delete removes one of the owner's recipes. Ingredient and step rows go with
// it via the cascade constraint.
func (s *Service) Delete(ctx context.Context, sess session.Session, id uint) error {
	result := s.db.WithContext(ctx).
		Where("owner = ? AND id = ?", sess.Username, id).
		Delete(&models.Recipe{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// MakeRecipe checks the recipe against the current inventory snapshot and, if
// every ingredient is covered and fresh, applies the planned deductions. The
// returned plan carries the composite report either way.
func (s *Service) MakeRecipe(ctx context.Context, sess session.Session, id uint) (*reconcile.Plan, error) {
	recipe, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	inv, err := s.snapshots.Get(ctx, sess.Username)
	if err != nil {
		return nil, err
	}

	plan := reconcile.BuildConsumptionPlan(recipe.ToReconcile(), inv, s.now())
	if !plan.OK() {
		return plan, nil
	}

	if s.cfg.Transactional {
		err = s.applyTransactional(ctx, sess.Username, plan.Mutations)
	} else {
		err = s.applyIndependent(ctx, sess.Username, plan.Mutations)
	}
	s.snapshots.Invalidate(sess.Username)
	if err != nil {
		return nil, err
	}

	logger.WithOwner(s.logger, sess.Username).Info("Recipe made",
		zap.String("recipe", recipe.Name),
		zap.Int("mutations", len(plan.Mutations)))
	return plan, nil
}

// applyIndependent issues each planned write on its own. A failure surfaces
// immediately and writes already issued stay applied.
func (s *Service) applyIndependent(ctx context.Context, owner string, mutations []reconcile.Mutation) error {
	for _, m := range mutations {
		if err := s.applyMutation(s.db.WithContext(ctx), owner, m, false); err != nil {
			return err
		}
	}
	return nil
}

// applyTransactional issues every planned write in one transaction, each
// guarded by the quantity observed at decision time. A record that changed in
// between affects zero rows and fails the whole transaction.
func (s *Service) applyTransactional(ctx context.Context, owner string, mutations []reconcile.Mutation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range mutations {
			if err := s.applyMutation(tx, owner, m, true); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) applyMutation(db *gorm.DB, owner string, m reconcile.Mutation, guarded bool) error {
	id, err := strconv.ParseUint(m.ItemID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid inventory item id %q: %w", m.ItemID, err)
	}

	query := db.Where("owner = ? AND id = ?", owner, id)
	if guarded {
		query = query.Where("quantity = ?", m.SnapshotQuantity)
	}

	var result *gorm.DB
	switch m.Type {
	case reconcile.MutationUpdate:
		result = query.Model(&invmodels.InventoryItem{}).Update("quantity", m.Quantity)
	case reconcile.MutationDelete:
		result = query.Delete(&invmodels.InventoryItem{})
	default:
		return fmt.Errorf("unknown mutation type %q", m.Type)
	}

	if result.Error != nil {
		return fmt.Errorf("failed to apply %s for %q: %w", m.Type, m.Name, result.Error)
	}
	if guarded && result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrStaleInventory, m.Name)
	}
	return nil
}

// AddShortfallToShoppingList merges the recipe's uncovered demand into the
// owner's shopping list. Calling it again with an unchanged inventory merges
// the same amounts again, which models planning to cook the recipe twice.
func (s *Service) AddShortfallToShoppingList(ctx context.Context, sess session.Session, id uint) (*reconcile.Merge, error) {
	recipe, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	inv, err := s.snapshots.Get(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	list, err := s.shopping.Snapshot(ctx, sess.Username)
	if err != nil {
		return nil, err
	}

	merge := reconcile.MergeShortfall(recipe.ToReconcile().Ingredients, inv, list)
	if err := s.shopping.ApplyMerge(ctx, sess.Username, merge.Ops); err != nil {
		return nil, err
	}

	logger.WithOwner(s.logger, sess.Username).Info("Shortfall merged into shopping list",
		zap.String("recipe", recipe.Name),
		zap.Int("added", merge.Added))
	return merge, nil
}
