package query

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bastiangx/arena/pkg/catalog"
)

// SortPolicy is the user-selected ordering of the result list.
type SortPolicy string

const (
	SortNone SortPolicy = ""
	SortAsc  SortPolicy = "asc"
	SortDesc SortPolicy = "desc"
)

// ErrSortPolicy is returned for a policy other than "", "asc" or "desc".
var ErrSortPolicy = errors.New("query: unknown sort policy")

// ParseSortPolicy validates s as a sort policy.
func ParseSortPolicy(s string) (SortPolicy, error) {
	switch p := SortPolicy(s); p {
	case SortNone, SortAsc, SortDesc:
		return p, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrSortPolicy, s)
	}
}

// Next cycles none -> asc -> desc -> none, the order of the sort selector.
func (p SortPolicy) Next() SortPolicy {
	switch p {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// Label is the selector caption for p.
func (p SortPolicy) Label() string {
	switch p {
	case SortAsc:
		return "Ascending"
	case SortDesc:
		return "Descending"
	default:
		return "Sort by score"
	}
}

// Sort returns games ordered by policy. The input is never modified and
// ties keep their relative order.
func Sort(games []catalog.GroupedGame, policy SortPolicy) []catalog.GroupedGame {
	out := make([]catalog.GroupedGame, len(games))
	copy(out, games)

	switch policy {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score < out[j].Score
		})
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score > out[j].Score
		})
	}
	return out
}
