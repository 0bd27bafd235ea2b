// Package branch implements the organizational partition model of
// La Maison Marvelous: every business record is tagged with the
// succursale (France or Cameroun) that owns it, and the UI exposes a
// selector that is either one of those branches or the synthetic
// "Global" value meaning the consolidated group view.
package branch

// Branch identifies a concrete succursale. "Global" is never a valid
// stored value; it exists only as a Selector.
type Branch string

const (
	France   Branch = "France"
	Cameroun Branch = "Cameroun"
)

// Branches lists every concrete branch, in display order.
func Branches() []Branch {
	return []Branch{France, Cameroun}
}

// Valid reports whether b is one of the concrete branches.
func (b Branch) Valid() bool {
	return b == France || b == Cameroun
}

// Selector is what the sidebar dropdown holds: a concrete Branch or
// the consolidated Global view.
type Selector string

// Global selects the union of all branches (identity filter).
const Global Selector = "Global"

// Selectors lists the selector cycle used by the UI.
func Selectors() []Selector {
	return []Selector{Global, Selector(France), Selector(Cameroun)}
}

// Concrete returns the branch a selector narrows to, and false for
// Global or unknown values.
func (s Selector) Concrete() (Branch, bool) {
	b := Branch(s)
	if b.Valid() {
		return b, true
	}
	return "", false
}

// Label returns the sidebar label for a selector.
func (s Selector) Label() string {
	if s == Global {
		return "Groupe Global"
	}
	if b, ok := s.Concrete(); ok {
		return "Succursale " + string(b)
	}
	return string(s)
}

// Regional is implemented by every branch-tagged record.
type Regional interface {
	BranchTag() Branch
}

// Filter returns the subsequence of records owned by the selected
// branch, preserving relative order. The Global selector is the
// identity transform. The input slice is never mutated.
func Filter[T Regional](records []T, sel Selector) []T {
	want, ok := sel.Concrete()
	if !ok {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.BranchTag() == want {
			out = append(out, r)
		}
	}
	return out
}
