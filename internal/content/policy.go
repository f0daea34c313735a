package content

import (
	"cmp"
	"slices"
)

// Row is a member of an ordered collection.
type Row interface {
	Order() int
	Visible() bool
}

// Present applies the ordering and activation policy shared by every collection
// read path: inactive rows are dropped when activeOnly is set, and the rest are
// sorted by display order. The sort is stable, so rows with equal display order
// keep the order they were given in.
func Present[T Row](rows []T, activeOnly bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if activeOnly && !row.Visible() {
			continue
		}
		out = append(out, row)
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(a.Order(), b.Order())
	})
	return out
}
