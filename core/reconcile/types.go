package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Item is an inventory record as seen by the engine. Feature packages convert
// their persistence models into this shape before calling in.
type Item struct {
	// ID is the persistence identifier of the record.
	ID string

	// Name is the raw ingredient name as entered by the user.
	Name string

	// Quantity is the on-hand amount, in Unit.
	Quantity float64

	// Unit is the measurement unit (g, kg, ml, l, pcs). May be empty.
	Unit string

	// Expiration is the item's expiration date.
	Expiration time.Time
}

// RecordName returns the raw name for matching.
func (i Item) RecordName() string { return i.Name }

// RecordUnit returns the raw unit for matching.
func (i Item) RecordUnit() string { return i.Unit }

// Ingredient is a single demand entry from a recipe. Quantity is kept as the
// raw decimal string the form captured and parsed on use.
type Ingredient struct {
	// Name is the ingredient name as written in the recipe.
	Name string

	// Quantity is the needed amount as a decimal string (e.g. "2", "0.5").
	Quantity string

	// Unit is the measurement unit. May be empty.
	Unit string
}

// NeededQuantity parses the ingredient quantity as a float. Unparseable
// values read as zero, matching how the forms treat blank input.
func (g Ingredient) NeededQuantity() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(g.Quantity), 64)
	return f
}

// Line is a shopping-list record as seen by the engine.
type Line struct {
	// ID is the persistence identifier of the line.
	ID string

	// Name is the raw ingredient name.
	Name string

	// Quantity is the amount to buy, in Unit.
	Quantity float64

	// Unit is the measurement unit. May be empty.
	Unit string
}

// RecordName returns the raw name for matching.
func (l Line) RecordName() string { return l.Name }

// RecordUnit returns the raw unit for matching.
func (l Line) RecordUnit() string { return l.Unit }

// MutationType is the kind of inventory mutation a plan produces.
type MutationType string

const (
	// MutationUpdate sets an inventory record to its remaining quantity.
	MutationUpdate MutationType = "update"
	// MutationDelete removes an inventory record whose remainder is gone.
	MutationDelete MutationType = "delete"
)

// Mutation is one planned inventory write. Quantity carries the remaining
// amount for updates and the snapshot amount for deletes, so a transactional
// apply can verify the record is unchanged since the decision.
type Mutation struct {
	// Type specifies the write to perform.
	Type MutationType `json:"type"`

	// ItemID identifies the inventory record.
	ItemID string `json:"item_id"`

	// Name is the record's name, kept for reporting and logs.
	Name string `json:"name"`

	// Quantity is the remaining quantity for updates.
	Quantity float64 `json:"quantity"`

	// SnapshotQuantity is the quantity observed at decision time.
	SnapshotQuantity float64 `json:"snapshot_quantity"`
}

// Plan is the outcome of the consumption planner for one recipe.
type Plan struct {
	// RecipeName names the recipe the plan was computed for.
	RecipeName string `json:"recipe_name"`

	// Missing lists unmet demand, one human-readable entry per ingredient
	// (e.g. "1 g of flour" for a shortfall, "2 pcs of eggs" when absent).
	Missing []string `json:"missing"`

	// Expired lists matched-but-expired blockers (e.g. "milk (expired)").
	Expired []string `json:"expired"`

	// Mutations holds the inventory writes to apply. Empty unless OK.
	Mutations []Mutation `json:"mutations"`
}

// OK reports whether the recipe can be cooked from the snapshot.
func (p *Plan) OK() bool {
	return len(p.Missing) == 0 && len(p.Expired) == 0
}

// Report renders the plan as a single user-facing message: a success line
// naming the recipe, or one composite message listing every problem at once.
func (p *Plan) Report() string {
	if p.OK() {
		return fmt.Sprintf("Recipe %q has been made! Ingredients removed from inventory.", p.RecipeName)
	}
	var parts []string
	if len(p.Missing) > 0 {
		parts = append(parts, "Missing ingredients: "+strings.Join(p.Missing, ", "))
	}
	if len(p.Expired) > 0 {
		parts = append(parts, "Expired ingredients: "+strings.Join(p.Expired, ", "))
	}
	return strings.Join(parts, ". ")
}

// LineOpType is the kind of shopping-list write a merge produces.
type LineOpType string

const (
	// LineInsert creates a new shopping-list line.
	LineInsert LineOpType = "insert"
	// LineUpdate raises the quantity of an existing line.
	LineUpdate LineOpType = "update"
)

// LineOp is one planned shopping-list write.
type LineOp struct {
	// Type specifies the write to perform.
	Type LineOpType `json:"type"`

	// LineID identifies the existing line for updates.
	LineID string `json:"line_id,omitempty"`

	// Name is the line name. Inserts keep the recipe's original casing.
	Name string `json:"name"`

	// Unit is the line unit.
	Unit string `json:"unit"`

	// Quantity is the new total for updates, or the initial amount for inserts.
	Quantity float64 `json:"quantity"`
}

// Merge is the outcome of the shortfall merger.
type Merge struct {
	// Added counts ingredients actually inserted or merged.
	Added int `json:"added"`

	// Ops holds the shopping-list writes to apply.
	Ops []LineOp `json:"ops"`
}

// Report renders the merge as a single user-facing message.
func (m *Merge) Report() string {
	if m.Added > 0 {
		return "Ingredients added to shopping list!"
	}
	return "All ingredients are already covered by your inventory!"
}

// FormatQuantity renders a quantity the way reports show it: the shortest
// decimal representation, no trailing zeros.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'g', -1, 64)
}
