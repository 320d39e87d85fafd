package models

import (
	"strconv"
	"time"

	"pantry-manager/core/expiry"
	"pantry-manager/core/reconcile"
)

// formatID renders a database ID the way engine records carry it.
func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Categories are the valid inventory categories.
var Categories = []string{"Fruits", "Vegetables", "Dairy", "Meat", "Grains", "Others"}

// Units are the valid measurement units.
var Units = []string{"g", "kg", "ml", "l", "pcs"}

// IsValidCategory reports whether the category is one of the known ones.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidUnit reports whether the unit is one of the known ones.
func IsValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// InventoryItem is one perishable record owned by a user.
//
// NameKey holds the normalized (trimmed, lower-cased) name; the composite
// unique index over owner+name_key+unit enforces at write time that a
// name+unit pair resolves to at most one record, so the matcher's
// first-match rule never has to break a tie.
type InventoryItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Owner      string    `gorm:"size:64;uniqueIndex:idx_inventory_identity;index" json:"-"`
	Name       string    `gorm:"size:128" json:"name"`
	NameKey    string    `gorm:"size:128;uniqueIndex:idx_inventory_identity" json:"-"`
	Unit       string    `gorm:"size:16;uniqueIndex:idx_inventory_identity" json:"unit"`
	Category   string    `gorm:"size:32" json:"category"`
	Quantity   float64   `json:"quantity"`
	Expiration time.Time `json:"expiration"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// ToRecord converts the persistence model into the engine's snapshot shape.
func (i InventoryItem) ToRecord() reconcile.Item {
	return reconcile.Item{
		ID:         formatID(i.ID),
		Name:       i.Name,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		Expiration: i.Expiration,
	}
}

// ItemView is an inventory item decorated with its expiration status for
// display.
type ItemView struct {
	InventoryItem
	Status string `json:"status"`
	Color  string `json:"color"`
	Label  string `json:"label"`
}

// NewItemView classifies the item against today and attaches display fields.
func NewItemView(item InventoryItem, today time.Time) ItemView {
	status := expiry.Classify(item.Expiration, today)
	return ItemView{
		InventoryItem: item,
		Status:        string(status),
		Color:         status.Color(),
		Label:         status.Label(),
	}
}

// StatusSummary counts items per expiration tier, the data behind the
// status breakdown chart.
type StatusSummary struct {
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiring_soon"`
	Good         int `json:"good"`
}

// CalendarEvent is one entry of the expiration calendar feed.
type CalendarEvent struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	BackgroundColor string `json:"backgroundColor"`
}

// CreateRequest is the inventory form payload. Quantity arrives as the raw
// form string and is parsed on validation.
type CreateRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
	Expiration string `json:"expiration"`
}
