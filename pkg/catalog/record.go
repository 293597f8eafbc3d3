/*
Package catalog holds the game dataset and the loader that fetches it.

The dataset is a flat list of GameRecord values, one per title+platform pair,
as served by the remote JSON resource. The first element of that resource is
never a game and is always dropped by ParseDataset.

	loader := catalog.NewLoader(catalog.DefaultSourceURL, catalog.DefaultTimeout)
	ds := catalog.LoadOrEmpty(ctx, loader, logger)

A Dataset is immutable once built. Everything shown to the user (GroupedGame,
Suggestion) is derived from it by the query package.
*/
package catalog

// GameRecord is one row of the source dataset, scoped to a single title and platform.
type GameRecord struct {
	Title         string
	Platform      string
	Score         float64
	Genre         string
	EditorsChoice string

	// Untitled marks a record whose title was absent, null or not a string.
	// Such records never match a search.
	Untitled bool
}

// GroupedGame merges all platform variants of one title.
// Score, Genre and EditorsChoice come from the first record seen for the title.
type GroupedGame struct {
	Title         string
	Platforms     []string
	Score         float64
	Genre         string
	EditorsChoice string
}

// IsEditorsChoice reports whether the game carries the "Y" marker.
func (g GroupedGame) IsEditorsChoice() bool {
	return g.EditorsChoice == "Y"
}

// Suggestion is a title with its platforms, used by the autocomplete panel.
type Suggestion struct {
	Title     string
	Platforms []string
}
