package models

import (
	"strconv"
	"time"

	"pantry-manager/core/reconcile"
)

// Categories are the valid recipe categories.
var Categories = []string{"appetizer", "mainCourse", "dessert", "beverage", "snack", "other"}

// Difficulties are the valid difficulty levels.
var Difficulties = []string{"easy", "medium", "hard"}

// IsValidCategory reports whether the category is one of the known ones.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidDifficulty reports whether the difficulty is one of the known levels.
func IsValidDifficulty(difficulty string) bool {
	for _, d := range Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}

// Recipe is one stored recipe with its ordered ingredients and steps.
type Recipe struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	Owner       string             `gorm:"size:64;index" json:"-"`
	Name        string             `gorm:"size:128" json:"name"`
	NameKey     string             `gorm:"size:128;index" json:"-"`
	Category    string             `gorm:"size:32" json:"category"`
	Servings    int                `json:"servings"`
	Difficulty  string             `gorm:"size:16" json:"difficulty"`
	Notes       string             `gorm:"type:text" json:"notes"`
	ImageURL    string             `gorm:"size:512" json:"image_url"`
	Favorite    bool               `json:"favorite"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps       []RecipeStep       `gorm:"constraint:OnDelete:CASCADE" json:"steps"`
	CreatedAt   time.Time          `json:"created_at"`
}

// TableName overrides the table name.
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is one demand entry of a recipe. Quantity keeps the raw
// decimal string the form captured; the engine parses it on use.
type RecipeIngredient struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RecipeID uint   `gorm:"index" json:"-"`
	Position int    `json:"-"`
	Name     string `gorm:"size:128" json:"name"`
	Quantity string `gorm:"size:32" json:"quantity"`
	Unit     string `gorm:"size:16" json:"unit"`
}

// TableName overrides the table name.
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// RecipeStep is one preparation step of a recipe.
type RecipeStep struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RecipeID uint   `gorm:"index" json:"-"`
	Position int    `json:"position"`
	Text     string `gorm:"type:text" json:"text"`
}

// TableName overrides the table name.
func (RecipeStep) TableName() string {
	return "recipe_steps"
}

// ToReconcile converts the recipe into the engine's demand shape.
func (r Recipe) ToReconcile() reconcile.Recipe {
	ingredients := make([]reconcile.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, reconcile.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return reconcile.Recipe{Name: r.Name, Ingredients: ingredients}
}

// FormatID renders the recipe ID the way references carry it.
func (r Recipe) FormatID() string {
	return strconv.FormatUint(uint64(r.ID), 10)
}

// IngredientRequest is one ingredient row of the recipe form.
type IngredientRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// CreateRequest is the recipe form payload.
type CreateRequest struct {
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Servings    int                 `json:"servings"`
	Difficulty  string              `json:"difficulty"`
	Notes       string              `json:"notes"`
	ImageURL    string              `json:"image_url"`
	Ingredients []IngredientRequest `json:"ingredients"`
	Steps       []string            `json:"steps"`
}
