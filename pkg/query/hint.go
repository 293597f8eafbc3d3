package query

import (
	"github.com/agnivade/levenshtein"
	"github.com/bastiangx/arena/internal/utils"
	"github.com/bastiangx/arena/pkg/catalog"
)

// DidYouMean returns the title closest to term by edit distance on folded
// forms, if that distance is at most maxDistance. The earliest title wins ties.
// It is only a hint and does not change what Filter or Suggestions return.
func DidYouMean(ds catalog.Dataset, term string, maxDistance int) (string, bool) {
	if term == "" || maxDistance <= 0 {
		return "", false
	}
	folded := utils.Fold(term)

	best, bestDist, found := "", maxDistance+1, false
	seen := make(map[string]struct{})
	for i := 0; i < ds.Len(); i++ {
		rec := ds.At(i)
		if rec.Untitled {
			continue
		}
		if _, ok := seen[rec.Title]; ok {
			continue
		}
		seen[rec.Title] = struct{}{}

		if d := levenshtein.ComputeDistance(utils.Fold(rec.Title), folded); d < bestDist {
			best, bestDist, found = rec.Title, d, true
		}
	}
	return best, found
}
