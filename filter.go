package finance

import (
	"fmt"
	"strings"

	"github.com/dev-sufyaan/personal-finance-manager/date"
)

// Criteria is the set of active filter constraints applied to a transaction
// sequence. The zero value of each field means "no constraint"; active
// constraints combine with logical AND.
type Criteria struct {
	Start    string // inclusive lower date bound, ISO-8601, "" for open
	End      string // inclusive upper date bound, ISO-8601, "" for open
	Type     Type   // "" for any
	Mode     Mode   // "" for any
	Category string // exact match, "" for any
	Search   string // case-insensitive substring over reason, category, notes
}

// IsZero reports whether no constraint is active.
func (c Criteria) IsZero() bool { return c == Criteria{} }

// Apply filters txs by c, preserving the original relative order. It is a
// stable filter, never a sort: the output is a subsequence of the input.
//
// An unparseable date bound does not abort the query: the whole date
// constraint is dropped for this call and a warning is returned so the
// caller can tell the user.
func Apply(txs []Transaction, c Criteria) (matches []Transaction, warnings []string) {
	filters := make([]func(Transaction) bool, 0, 4)

	if c.Start != "" || c.End != "" {
		r, err := c.dateRange()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%v; date filter ignored", err))
		} else {
			filters = append(filters, InRange(r))
		}
	}
	if c.Type != "" {
		filters = append(filters, ByType(c.Type))
	}
	if c.Mode != "" {
		filters = append(filters, ByMode(c.Mode))
	}
	if c.Category != "" {
		filters = append(filters, ByCategory(c.Category))
	}
	if c.Search != "" {
		filters = append(filters, MatchingText(c.Search))
	}

	matches = make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		accept := true
		for _, filter := range filters {
			if !filter(tx) {
				accept = false
				break
			}
		}
		if accept {
			matches = append(matches, tx)
		}
	}
	return matches, warnings
}

// dateRange parses the date bounds into an inclusive range, with zero
// boundaries left open.
func (c Criteria) dateRange() (date.Range, error) {
	var r date.Range
	var err error
	if c.Start != "" {
		if r.From, err = date.Parse(c.Start); err != nil {
			return date.Range{}, err
		}
	}
	if c.End != "" {
		if r.To, err = date.Parse(c.End); err != nil {
			return date.Range{}, err
		}
	}
	return r, nil
}

// AcceptAll is a predicate that accepts any transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a predicate that filters transactions by type.
func ByType(t Type) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByMode returns a predicate that filters transactions by payment mode.
func ByMode(m Mode) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Mode == m }
}

// ByCategory returns a predicate that filters transactions by exact category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// InRange returns a predicate that keeps transactions dated within r,
// boundaries included.
func InRange(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// MatchingText returns a predicate that keeps transactions whose reason,
// category, or notes contain the term, case-insensitively.
func MatchingText(term string) func(Transaction) bool {
	term = strings.ToLower(term)
	return func(tx Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Reason), term) ||
			strings.Contains(strings.ToLower(tx.Category), term) ||
			strings.Contains(strings.ToLower(tx.Notes), term)
	}
}
