package shopping

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pantry-manager/core/reconcile"
	"pantry-manager/core/session"
	"pantry-manager/feature/shopping/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrLineNotFound is returned when the line doesn't exist for this owner.
var ErrLineNotFound = errors.New("shopping list line not found")

// Service handles shopping list operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new shopping service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns the owner's shopping list.
func (s *Service) List(ctx context.Context, sess session.Session) ([]models.ShoppingListLine, error) {
	var lines []models.ShoppingListLine
	err := s.db.WithContext(ctx).Where("owner = ?", sess.Username).Order("id").Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping list: %w", err)
	}
	return lines, nil
}

// Delete removes one of the owner's lines.
func (s *Service) Delete(ctx context.Context, sess session.Session, id uint) error {
	result := s.db.WithContext(ctx).
		Where("owner = ? AND id = ?", sess.Username, id).
		Delete(&models.ShoppingListLine{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete shopping list line: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// Snapshot reads the owner's full shopping list in the engine's record shape.
func (s *Service) Snapshot(ctx context.Context, owner string) ([]reconcile.Line, error) {
	var lines []models.ShoppingListLine
	if err := s.db.WithContext(ctx).Where("owner = ?", owner).Order("id").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot shopping list: %w", err)
	}

	records := make([]reconcile.Line, 0, len(lines))
	for _, line := range lines {
		records = append(records, line.ToRecord())
	}
	return records, nil
}

// ApplyMerge persists the merge operations the engine planned for the owner.
// Each operation is an independent write; a failure surfaces immediately and
// earlier writes stay applied (no rollback, matching the engine's declared
// failure model). A line whose new quantity would be non-positive is removed
// instead of stored.
func (s *Service) ApplyMerge(ctx context.Context, owner string, ops []reconcile.LineOp) error {
	for _, op := range ops {
		if err := s.applyLineOp(ctx, owner, op); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) applyLineOp(ctx context.Context, owner string, op reconcile.LineOp) error {
	switch op.Type {
	case reconcile.LineInsert:
		if op.Quantity <= 0 {
			return nil
		}
		line := models.ShoppingListLine{
			Owner:    owner,
			Name:     op.Name,
			NameKey:  reconcile.NormalizeName(op.Name),
			Unit:     op.Unit,
			Quantity: op.Quantity,
		}
		if err := s.db.WithContext(ctx).Create(&line).Error; err != nil {
			return fmt.Errorf("failed to insert shopping list line %q: %w", op.Name, err)
		}
		return nil

	case reconcile.LineUpdate:
		id, err := strconv.ParseUint(op.LineID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid shopping list line id %q: %w", op.LineID, err)
		}
		if op.Quantity <= 0 {
			// Never persist a non-positive quantity; drop the line.
			err = s.db.WithContext(ctx).
				Where("owner = ? AND id = ?", owner, id).
				Delete(&models.ShoppingListLine{}).Error
			if err != nil {
				return fmt.Errorf("failed to remove shopping list line %q: %w", op.Name, err)
			}
			return nil
		}
		err = s.db.WithContext(ctx).
			Model(&models.ShoppingListLine{}).
			Where("owner = ? AND id = ?", owner, id).
			Update("quantity", op.Quantity).Error
		if err != nil {
			return fmt.Errorf("failed to update shopping list line %q: %w", op.Name, err)
		}
		return nil

	default:
		return fmt.Errorf("unknown line operation type %q", op.Type)
	}
}
