package session

import (
	"github.com/bastiangx/arena/pkg/catalog"
	"github.com/bastiangx/arena/pkg/query"
)

// Event is an input to Reduce.
type Event interface {
	event()
}

// Loaded delivers the dataset once the loader finishes.
type Loaded struct {
	Dataset catalog.Dataset
}

// InputChanged carries the full new text of the search box.
type InputChanged struct {
	Text string
}

// Focused is sent when the search box gains focus.
type Focused struct{}

// Blurred is sent when the search box loses focus.
type Blurred struct{}

// SuggestionSelected is sent when the user picks a suggestion.
type SuggestionSelected struct {
	Title string
}

// SortChanged is sent when the sort selector changes.
type SortChanged struct {
	Policy query.SortPolicy
}

func (Loaded) event()             {}
func (InputChanged) event()       {}
func (Focused) event()            {}
func (Blurred) event()            {}
func (SuggestionSelected) event() {}
func (SortChanged) event()        {}
