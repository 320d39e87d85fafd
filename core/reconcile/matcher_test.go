package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMatch_CaseAndWhitespace(t *testing.T) {
	inventory := []Item{
		{ID: "1", Name: "Tomato", Quantity: 3, Unit: "g"},
	}

	item, ok := FindMatch("  tomato ", "g", inventory)
	assert.True(t, ok)
	assert.Equal(t, "1", item.ID)

	item, ok = FindMatch("TOMATO", " g ", inventory)
	assert.True(t, ok)
	assert.Equal(t, "Tomato", item.Name)
}

func TestFindMatch_UnitMismatch(t *testing.T) {
	inventory := []Item{
		{ID: "1", Name: "flour", Quantity: 500, Unit: "g"},
	}

	// Same ingredient in a different unit is a different record; no
	// conversion happens.
	_, ok := FindMatch("flour", "kg", inventory)
	assert.False(t, ok)

	_, ok = FindMatch("flour", "", inventory)
	assert.False(t, ok)
}

func TestFindMatch_EmptyUnit(t *testing.T) {
	inventory := []Item{
		{ID: "1", Name: "eggs", Quantity: 6, Unit: ""},
	}

	item, ok := FindMatch("Eggs", "  ", inventory)
	assert.True(t, ok)
	assert.Equal(t, "1", item.ID)
}

func TestFindMatch_FirstMatchWins(t *testing.T) {
	lines := []Line{
		{ID: "1", Name: "milk", Unit: "l", Quantity: 1},
		{ID: "2", Name: "Milk", Unit: "l", Quantity: 2},
	}

	line, ok := FindMatch("milk", "l", lines)
	assert.True(t, ok)
	assert.Equal(t, "1", line.ID)
}

func TestFindMatch_NoMatchIsZeroResult(t *testing.T) {
	item, ok := FindMatch("butter", "g", []Item{})
	assert.False(t, ok)
	assert.Zero(t, item)
}
