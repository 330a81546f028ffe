package services

import (
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// filter returns clones of the items keep accepts, in their original order.
func filter[T any](items []T, clone func(T) T, keep func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, clone(item))
		}
	}
	return out
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	return filter(items, clone, func(T) bool { return true })
}

// matcher does case-insensitive substring matching against a fixed query.
type matcher struct {
	fold  cases.Caser
	query string
}

// newMatcher returns a matcher for query. ok is false when query is blank.
func newMatcher(query string) (m *matcher, ok bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, false
	}
	fold := cases.Fold()
	return &matcher{fold: fold, query: fold.String(q)}, true
}

func (m *matcher) match(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.query) {
			return true
		}
	}
	return false
}

// sortedUnique returns the distinct non-empty values in lexicographic order.
func sortedUnique(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// average rounds total/n to the nearest integer and is 0 when n is 0.
func average(total, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(n)))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
