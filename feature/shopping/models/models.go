package models

import (
	"strconv"
	"time"

	"pantry-manager/core/reconcile"
)

// ShoppingListLine is one entry of a user's shopping list. Lines are created
// or raised by the shortfall merger and deleted explicitly by the user.
//
// NameKey mirrors the inventory convention: the composite unique index over
// owner+name_key+unit keeps one line per name+unit pair.
type ShoppingListLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Owner     string    `gorm:"size:64;uniqueIndex:idx_shopping_identity;index" json:"-"`
	Name      string    `gorm:"size:128" json:"name"`
	NameKey   string    `gorm:"size:128;uniqueIndex:idx_shopping_identity" json:"-"`
	Unit      string    `gorm:"size:16;uniqueIndex:idx_shopping_identity" json:"unit"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (ShoppingListLine) TableName() string {
	return "shopping_list_lines"
}

// ToRecord converts the persistence model into the engine's snapshot shape.
func (l ShoppingListLine) ToRecord() reconcile.Line {
	return reconcile.Line{
		ID:       strconv.FormatUint(uint64(l.ID), 10),
		Name:     l.Name,
		Quantity: l.Quantity,
		Unit:     l.Unit,
	}
}
