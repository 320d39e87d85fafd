package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeShortfall_InsertNewLine(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "Eggs", Quantity: "1", Unit: "pcs"},
	}

	merge := MergeShortfall(ingredients, nil, nil)

	assert.Equal(t, 1, merge.Added)
	assert.Equal(t, []LineOp{{
		Type:     LineInsert,
		Name:     "Eggs",
		Unit:     "pcs",
		Quantity: 1,
	}}, merge.Ops)
	assert.Equal(t, "Ingredients added to shopping list!", merge.Report())
}

func TestMergeShortfall_CoveredIngredientSkipped(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "flour", Quantity: "200", Unit: "g"},
	}
	inventory := []Item{
		{ID: "1", Name: "Flour", Quantity: 500, Unit: "g", Expiration: time.Now().AddDate(0, 1, 0)},
	}

	merge := MergeShortfall(ingredients, inventory, nil)

	// Fully covered: no write, not counted.
	assert.Equal(t, 0, merge.Added)
	assert.Empty(t, merge.Ops)
	assert.Equal(t, "All ingredients are already covered by your inventory!", merge.Report())
}

func TestMergeShortfall_PartialShortfall(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "sugar", Quantity: "300", Unit: "g"},
	}
	inventory := []Item{
		{ID: "1", Name: "sugar", Quantity: 100, Unit: "g"},
	}

	merge := MergeShortfall(ingredients, inventory, nil)

	assert.Equal(t, 1, merge.Added)
	assert.Equal(t, 200.0, merge.Ops[0].Quantity)
}

func TestMergeShortfall_RaisesExistingLine(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "Milk", Quantity: "2", Unit: "l"},
	}
	list := []Line{
		{ID: "9", Name: "milk", Quantity: 1, Unit: "l"},
	}

	merge := MergeShortfall(ingredients, nil, list)

	assert.Equal(t, 1, merge.Added)
	assert.Equal(t, []LineOp{{
		Type:     LineUpdate,
		LineID:   "9",
		Name:     "milk",
		Unit:     "l",
		Quantity: 3,
	}}, merge.Ops)
}

func TestMergeShortfall_AdditiveAcrossCalls(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "eggs", Quantity: "1", Unit: "pcs"},
	}

	first := MergeShortfall(ingredients, nil, nil)
	assert.Equal(t, 1.0, first.Ops[0].Quantity)

	// The first merge landed as a list line; merging again with an
	// unchanged inventory doubles the quantity. That models wanting to
	// cook the recipe twice, not a bug.
	list := []Line{
		{ID: "1", Name: "eggs", Quantity: first.Ops[0].Quantity, Unit: "pcs"},
	}
	second := MergeShortfall(ingredients, nil, list)

	assert.Equal(t, 1, second.Added)
	assert.Equal(t, LineUpdate, second.Ops[0].Type)
	assert.Equal(t, 2.0, second.Ops[0].Quantity)
}

func TestMergeShortfall_RepeatedIngredientWithinOneCall(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "butter", Quantity: "50", Unit: "g"},
		{Name: "Butter", Quantity: "30", Unit: "g"},
	}

	merge := MergeShortfall(ingredients, nil, nil)

	// Both rows fold into one pending insert.
	assert.Equal(t, 2, merge.Added)
	assert.Len(t, merge.Ops, 1)
	assert.Equal(t, 80.0, merge.Ops[0].Quantity)
}

func TestMergeShortfall_UnitsKeptApart(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "flour", Quantity: "1", Unit: "kg"},
	}
	inventory := []Item{
		// Same name, different unit: no conversion, no coverage.
		{ID: "1", Name: "flour", Quantity: 5000, Unit: "g"},
	}

	merge := MergeShortfall(ingredients, inventory, nil)

	assert.Equal(t, 1, merge.Added)
	assert.Equal(t, LineInsert, merge.Ops[0].Type)
	assert.Equal(t, 1.0, merge.Ops[0].Quantity)
	assert.Equal(t, "kg", merge.Ops[0].Unit)
}
