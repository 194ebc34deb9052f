package entity

import (
	"fmt"
	"strings"
)

// AllToken is the boundary spelling of the ALL sentinel.
const AllToken = "all"

// Selector restricts one classification field to a single value, or leaves it
// unrestricted. The zero value is ALL.
type Selector struct {
	value string
	set   bool
}

// All returns the unrestricted selector.
func All() Selector {
	return Selector{}
}

// Only returns a selector matching exactly v.
func Only(v string) Selector {
	return Selector{value: v, set: true}
}

// ParseSelector maps "" and "all" (any case) to ALL and anything else to Only.
func ParseSelector(s string) Selector {
	if s == "" || strings.EqualFold(s, AllToken) {
		return All()
	}
	return Only(s)
}

// IsAll reports whether the selector is unrestricted.
func (s Selector) IsAll() bool {
	return !s.set
}

// Value returns the selected value; it is "" for ALL.
func (s Selector) Value() string {
	return s.value
}

// Matches reports whether v passes the selector.
func (s Selector) Matches(v string) bool {
	return !s.set || s.value == v
}

func (s Selector) String() string {
	if !s.set {
		return AllToken
	}
	return s.value
}

// FilterSpec is the category/sub-category restriction plus the table search term.
type FilterSpec struct {
	Category    Selector
	SubCategory Selector
	SearchTerm  string
}

// TableScope chooses which records the table view starts from.
type TableScope string

const (
	ScopeFiltered TableScope = "filtered"
	ScopeAll      TableScope = "all"
)

// ParseTableScope accepts "filtered" (the default for "") or "all".
func ParseTableScope(s string) (TableScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ScopeFiltered):
		return ScopeFiltered, nil
	case string(ScopeAll):
		return ScopeAll, nil
	default:
		return "", fmt.Errorf("unknown table scope %q", s)
	}
}

// Selection is the presentation-owned state of the dashboard controls.
type Selection struct {
	Filter        FilterSpec
	Metric        MetricKind
	SummaryPeriod Period
	TableScope    TableScope
	// Reset replaces the category filter with the reset filter: ALL/ALL and only rows
	// with activity in the latest period.
	Reset bool
}

// DefaultSelection is the state of a freshly opened dashboard.
func DefaultSelection() Selection {
	return Selection{
		Metric:        Volume,
		SummaryPeriod: LatestPeriod(),
		TableScope:    ScopeFiltered,
	}
}
