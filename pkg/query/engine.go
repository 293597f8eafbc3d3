package query

import "github.com/bastiangx/arena/pkg/catalog"

// Engine answers the same queries as the package functions, using a title
// index built once for its dataset.
type Engine struct {
	ds    catalog.Dataset
	index *catalog.Index
}

// NewEngine indexes ds.
func NewEngine(ds catalog.Dataset) *Engine {
	return &Engine{
		ds:    ds,
		index: catalog.NewIndex(ds),
	}
}

// Dataset returns the dataset the engine was built for.
func (e *Engine) Dataset() catalog.Dataset {
	return e.ds
}

// Suggestions is the indexed form of the package-level Suggestions.
func (e *Engine) Suggestions(term string) []catalog.Suggestion {
	return suggestionsAt(e.ds, e.index.Matching(term))
}

// Filter is the indexed form of the package-level Filter.
func (e *Engine) Filter(term string) []catalog.GroupedGame {
	return groupAt(e.ds, e.index.Matching(term))
}

// View is the indexed form of the package-level View.
func (e *Engine) View(term string, policy SortPolicy) []catalog.GroupedGame {
	return Sort(e.Filter(term), policy)
}

// DidYouMean is DidYouMean over the engine's dataset.
func (e *Engine) DidYouMean(term string, maxDistance int) (string, bool) {
	return DidYouMean(e.ds, term, maxDistance)
}
