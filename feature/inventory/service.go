package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pantry-manager/core/expiry"
	"pantry-manager/core/reconcile"
	"pantry-manager/core/session"
	"pantry-manager/core/utils"
	"pantry-manager/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidItem is returned when the inventory form fails validation.
	ErrInvalidItem = errors.New("invalid inventory item")
	// ErrDuplicateItem is returned when the owner already tracks this
	// name+unit pair. Uniqueness is enforced here, at write time.
	ErrDuplicateItem = errors.New("an item with this name and unit already exists")
	// ErrItemNotFound is returned when the record doesn't exist for this owner.
	ErrItemNotFound = errors.New("inventory item not found")
)

// Service handles inventory operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create validates the form payload and inserts a new item for the owner.
func (s *Service) Create(ctx context.Context, sess session.Session, req models.CreateRequest) (*models.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if !models.IsValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidItem, req.Category)
	}
	if !models.IsValidUnit(req.Unit) {
		return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidItem, req.Unit)
	}

	quantity := utils.ToFloat(req.Quantity)
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidItem)
	}

	expiration, err := time.Parse("2006-01-02", strings.TrimSpace(req.Expiration))
	if err != nil {
		return nil, fmt.Errorf("%w: expiration must be a YYYY-MM-DD date", ErrInvalidItem)
	}

	item := models.InventoryItem{
		Owner:      sess.Username,
		Name:       name,
		NameKey:    reconcile.NormalizeName(name),
		Unit:       req.Unit,
		Category:   req.Category,
		Quantity:   quantity,
		Expiration: expiration,
	}

	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateItem
		}
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return &item, nil
}

// List returns the owner's items, optionally filtered by category and by a
// case-insensitive name substring.
func (s *Service) List(ctx context.Context, sess session.Session, category, search string) ([]models.InventoryItem, error) {
	query := s.db.WithContext(ctx).Where("owner = ?", sess.Username)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name_key LIKE ?", "%"+reconcile.NormalizeName(search)+"%")
	}

	var items []models.InventoryItem
	if err := query.Order("expiration, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// Delete removes one of the owner's items.
func (s *Service) Delete(ctx context.Context, sess session.Session, id uint) error {
	result := s.db.WithContext(ctx).
		Where("owner = ? AND id = ?", sess.Username, id).
		Delete(&models.InventoryItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Snapshot reads the owner's full inventory in the engine's record shape.
// This is the point-in-time basis for every reconciliation decision.
func (s *Service) Snapshot(ctx context.Context, owner string) ([]reconcile.Item, error) {
	var items []models.InventoryItem
	if err := s.db.WithContext(ctx).Where("owner = ?", owner).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot inventory: %w", err)
	}

	records := make([]reconcile.Item, 0, len(items))
	for _, item := range items {
		records = append(records, item.ToRecord())
	}
	return records, nil
}

// StatusSummary counts the owner's items per expiration tier, honoring the
// same category/search filters as List.
func (s *Service) StatusSummary(ctx context.Context, sess session.Session, category, search string, today time.Time) (*models.StatusSummary, error) {
	items, err := s.List(ctx, sess, category, search)
	if err != nil {
		return nil, err
	}

	var summary models.StatusSummary
	for _, item := range items {
		switch expiry.Classify(item.Expiration, today) {
		case expiry.StatusExpired:
			summary.Expired++
		case expiry.StatusExpiringSoon:
			summary.ExpiringSoon++
		default:
			summary.Good++
		}
	}
	return &summary, nil
}

// CalendarEvents renders the owner's items as calendar entries colored by
// expiration status.
func (s *Service) CalendarEvents(ctx context.Context, sess session.Session, today time.Time) ([]models.CalendarEvent, error) {
	items, err := s.List(ctx, sess, "", "")
	if err != nil {
		return nil, err
	}

	events := make([]models.CalendarEvent, 0, len(items))
	for _, item := range items {
		status := expiry.Classify(item.Expiration, today)
		events = append(events, models.CalendarEvent{
			Title:           item.Name,
			Date:            item.Expiration.Format("2006-01-02"),
			BackgroundColor: status.Color(),
		})
	}
	return events, nil
}
