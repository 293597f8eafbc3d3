/*
Package query derives what the user sees from a dataset and a search term.

Both derivations filter records whose title contains the term, ignoring case,
then group them by exact title in first-occurrence order:

	suggestions := query.Suggestions(ds, "hal")
	games := query.View(ds, "hal", query.SortDesc)

Nothing is cached. Every call recomputes from the dataset, which is small and
held in memory. Engine does the same work through a prebuilt catalog.Index.
*/
package query

import (
	"strings"

	"github.com/bastiangx/arena/internal/utils"
	"github.com/bastiangx/arena/pkg/catalog"
)

// Matches reports whether rec's title contains term, ignoring case.
// Untitled records never match.
func Matches(rec catalog.GameRecord, term string) bool {
	if rec.Untitled {
		return false
	}
	return utils.StringContainsIgnoreCase(rec.Title, term)
}

// Suggestions groups the matching records by title, keeping only platforms.
func Suggestions(ds catalog.Dataset, term string) []catalog.Suggestion {
	return suggestionsAt(ds, scan(ds, term))
}

// Filter groups the matching records by title. Score, genre and editor's
// choice come from the first record of each title.
func Filter(ds catalog.Dataset, term string) []catalog.GroupedGame {
	return groupAt(ds, scan(ds, term))
}

// View is Filter followed by Sort.
func View(ds catalog.Dataset, term string, policy SortPolicy) []catalog.GroupedGame {
	return Sort(Filter(ds, term), policy)
}

func scan(ds catalog.Dataset, term string) []int {
	folded := utils.Fold(term)
	var out []int
	for i := 0; i < ds.Len(); i++ {
		rec := ds.At(i)
		if rec.Untitled {
			continue
		}
		if strings.Contains(utils.Fold(rec.Title), folded) {
			out = append(out, i)
		}
	}
	return out
}

func groupAt(ds catalog.Dataset, positions []int) []catalog.GroupedGame {
	groups := make([]catalog.GroupedGame, 0, len(positions))
	byTitle := make(map[string]int, len(positions))
	for _, i := range positions {
		rec := ds.At(i)
		if at, ok := byTitle[rec.Title]; ok {
			groups[at].Platforms = append(groups[at].Platforms, rec.Platform)
			continue
		}
		byTitle[rec.Title] = len(groups)
		groups = append(groups, catalog.GroupedGame{
			Title:         rec.Title,
			Platforms:     []string{rec.Platform},
			Score:         rec.Score,
			Genre:         rec.Genre,
			EditorsChoice: rec.EditorsChoice,
		})
	}
	return groups
}

func suggestionsAt(ds catalog.Dataset, positions []int) []catalog.Suggestion {
	out := make([]catalog.Suggestion, 0, len(positions))
	byTitle := make(map[string]int, len(positions))
	for _, i := range positions {
		rec := ds.At(i)
		if at, ok := byTitle[rec.Title]; ok {
			out[at].Platforms = append(out[at].Platforms, rec.Platform)
			continue
		}
		byTitle[rec.Title] = len(out)
		out = append(out, catalog.Suggestion{
			Title:     rec.Title,
			Platforms: []string{rec.Platform},
		})
	}
	return out
}
