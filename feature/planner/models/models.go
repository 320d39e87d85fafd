package models

import "time"

// PlannedRecipe schedules one recipe on one calendar day. Name and category
// are denormalized at planning time so the plan survives recipe deletion.
type PlannedRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Owner     string    `gorm:"size:64;index" json:"-"`
	Date      time.Time `gorm:"index" json:"-"`
	RecipeID  uint      `json:"recipe_id"`
	Name      string    `gorm:"size:128" json:"name"`
	Category  string    `gorm:"size:32" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (PlannedRecipe) TableName() string {
	return "planned_recipes"
}

// View is a planned recipe with the date rendered as the calendar shows it.
type View struct {
	PlannedRecipe
	Date string `json:"date"`
}

// NewView attaches the formatted date.
func NewView(p PlannedRecipe) View {
	return View{PlannedRecipe: p, Date: p.Date.Format("2006-01-02")}
}

// PlanRequest is the meal planner form payload.
type PlanRequest struct {
	Date     string `json:"date"`
	RecipeID uint   `json:"recipe_id"`
}
