package reconcile

import "strings"

// Record is anything the matcher can resolve an ingredient against:
// inventory items and shopping-list lines both qualify.
type Record interface {
	RecordName() string
	RecordUnit() string
}

// NormalizeName prepares an ingredient name for comparison: surrounding
// whitespace is trimmed and the name is lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeUnit prepares a unit for comparison. Units compare exactly after
// trimming; an absent unit normalizes to the empty string. "flour/g" and
// "flour/kg" are therefore distinct records.
func NormalizeUnit(unit string) string {
	return strings.TrimSpace(unit)
}

// FindMatch resolves an ingredient reference to the first record whose
// normalized name and unit both match, in collection order. The boolean is
// false when nothing matches; that is a valid zero result, not an error.
//
// Duplicate name+unit records would make the result order-dependent, so the
// write paths enforce uniqueness per owner instead.
func FindMatch[R Record](name, unit string, records []R) (R, bool) {
	wantName := NormalizeName(name)
	wantUnit := NormalizeUnit(unit)
	for _, r := range records {
		if NormalizeName(r.RecordName()) == wantName && NormalizeUnit(r.RecordUnit()) == wantUnit {
			return r, true
		}
	}
	var zero R
	return zero, false
}
