package reconcile

import (
	"fmt"
	"time"

	"pantry-manager/core/expiry"
)

// Recipe is the demand side of a consumption plan.
type Recipe struct {
	// Name is the recipe's display name, used in reports.
	Name string

	// Ingredients is the ordered demand list.
	Ingredients []Ingredient
}

// BuildConsumptionPlan decides whether the recipe can be cooked from the
// inventory snapshot and, if so, which inventory writes to apply.
//
// Per ingredient, exactly one of three things happens:
//   - no inventory match: the full needed amount is reported missing,
//   - a match that is expired (day-truncated expiration not after today):
//     the ingredient is reported expired, regardless of quantity,
//   - a fresh match with too little on hand: the shortfall is reported
//     missing.
//
// Expiry takes priority over the quantity check, so an ingredient never
// appears under both lists. Any missing or expired entry blocks the whole
// recipe and the plan carries no mutations: application is all-or-nothing at
// the decision level.
func BuildConsumptionPlan(recipe Recipe, inventory []Item, today time.Time) *Plan {
	plan := &Plan{
		RecipeName: recipe.Name,
		Missing:    []string{},
		Expired:    []string{},
	}

	for _, ing := range recipe.Ingredients {
		needed := ing.NeededQuantity()

		item, ok := FindMatch(ing.Name, ing.Unit, inventory)
		if !ok {
			plan.Missing = append(plan.Missing, describeNeed(needed, ing.Unit, ing.Name))
			continue
		}

		if expiry.IsExpired(item.Expiration, today) {
			plan.Expired = append(plan.Expired, fmt.Sprintf("%s (expired)", item.Name))
			continue
		}

		if item.Quantity < needed {
			plan.Missing = append(plan.Missing, describeNeed(needed-item.Quantity, ing.Unit, ing.Name))
		}
	}

	if !plan.OK() {
		return plan
	}

	// Every ingredient is covered and fresh; plan the deductions.
	for _, ing := range recipe.Ingredients {
		item, _ := FindMatch(ing.Name, ing.Unit, inventory)
		remaining := item.Quantity - ing.NeededQuantity()

		if remaining <= 0 {
			// A record never survives with a non-positive quantity.
			plan.Mutations = append(plan.Mutations, Mutation{
				Type:             MutationDelete,
				ItemID:           item.ID,
				Name:             item.Name,
				SnapshotQuantity: item.Quantity,
			})
			continue
		}

		plan.Mutations = append(plan.Mutations, Mutation{
			Type:             MutationUpdate,
			ItemID:           item.ID,
			Name:             item.Name,
			Quantity:         remaining,
			SnapshotQuantity: item.Quantity,
		})
	}

	return plan
}

// describeNeed renders a missing amount as "<qty> <unit> of <name>", or
// "<qty> of <name>" when the ingredient has no unit.
func describeNeed(qty float64, unit, name string) string {
	unit = NormalizeUnit(unit)
	if unit == "" {
		return fmt.Sprintf("%s of %s", FormatQuantity(qty), name)
	}
	return fmt.Sprintf("%s %s of %s", FormatQuantity(qty), unit, name)
}
