package reconcile

import "strings"

// MergeShortfall computes, per ingredient, the quantity not covered by the
// inventory snapshot and merges it into the shopping list.
//
// The shortfall is needed minus available (zero when the ingredient is
// unmatched in inventory), floored at zero. Fully covered ingredients are
// skipped entirely: they produce no write and do not count as added. An
// uncovered ingredient either raises an existing matching line by the
// shortfall or inserts a new line carrying it.
//
// Calling this twice with an unchanged inventory doubles the merged
// quantities. That is intended: it models wanting to cook the recipe twice.
func MergeShortfall(ingredients []Ingredient, inventory []Item, list []Line) *Merge {
	merge := &Merge{Ops: []LineOp{}}

	// Inserts within one merge target lines that don't exist yet, so track
	// them locally to keep repeated ingredients in one recipe additive too.
	pending := make(map[string]int)

	for _, ing := range ingredients {
		available := 0.0
		if item, ok := FindMatch(ing.Name, ing.Unit, inventory); ok {
			available = item.Quantity
		}

		shortfall := ing.NeededQuantity() - available
		if shortfall <= 0 {
			continue
		}

		key := NormalizeName(ing.Name) + "|" + NormalizeUnit(ing.Unit)

		if idx, ok := pending[key]; ok {
			merge.Ops[idx].Quantity += shortfall
			merge.Added++
			continue
		}

		if line, ok := FindMatch(ing.Name, ing.Unit, list); ok {
			merge.Ops = append(merge.Ops, LineOp{
				Type:     LineUpdate,
				LineID:   line.ID,
				Name:     line.Name,
				Unit:     line.Unit,
				Quantity: line.Quantity + shortfall,
			})
			pending[key] = len(merge.Ops) - 1
			merge.Added++
			continue
		}

		merge.Ops = append(merge.Ops, LineOp{
			Type:     LineInsert,
			Name:     strings.TrimSpace(ing.Name),
			Unit:     NormalizeUnit(ing.Unit),
			Quantity: shortfall,
		})
		pending[key] = len(merge.Ops) - 1
		merge.Added++
	}

	return merge
}
