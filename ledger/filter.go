package ledger

import "strings"

// All disables the type or category part of a Filter.
const All = "all"

// Filter narrows the displayed list. It never affects totals.
type Filter struct {
	// Type is "all", "income" or "expense".
	Type string
	// Category is "all" or an exact category.
	Category string
	// Search is matched case-insensitively against the description.
	Search string
}

// Matches reports whether t passes the type, category and search parts.
func (f Filter) Matches(t Transaction) bool {
	if f.Type != "" && f.Type != All && string(t.Type) != f.Type {
		return false
	}

	if f.Category != "" && f.Category != All && t.Category != f.Category {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search != "" && !strings.Contains(strings.ToLower(t.Text), search) {
		return false
	}

	return true
}

// IsZero reports whether the filter lets everything through.
func (f Filter) IsZero() bool {
	return (f.Type == "" || f.Type == All) &&
		(f.Category == "" || f.Category == All) &&
		strings.TrimSpace(f.Search) == ""
}
