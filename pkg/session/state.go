/*
Package session is the state container behind every front end.

A State holds the search text, the sort policy, the suggestion panel and the
loaded dataset. Reduce is the only way to change it:

	s := session.New(query.SortNone)
	s = session.Reduce(s, session.Loaded{Dataset: ds})
	s = session.Reduce(s, session.InputChanged{Text: "hal"})
	cards := s.Cards()

Panel transitions:

	InputChanged      -> Shown if the text is non-empty, else Hidden
	Focused           -> Shown
	Blurred           -> Hidden
	SuggestionSelected -> search text set to the title, Hidden

The result list is never stored. Games and Cards derive it from the current
state on every call.
*/
package session

import (
	"github.com/bastiangx/arena/pkg/catalog"
	"github.com/bastiangx/arena/pkg/query"
)

// Panel is the visibility of the suggestion panel.
type Panel int

const (
	PanelHidden Panel = iota
	PanelShown
)

func (p Panel) String() string {
	if p == PanelShown {
		return "shown"
	}
	return "hidden"
}

// State is a snapshot of one viewer session. Copying a State is cheap and
// safe: nothing reachable from it is mutated after construction.
type State struct {
	Search      string
	Sort        query.SortPolicy
	Panel       Panel
	Suggestions []catalog.Suggestion

	engine *query.Engine
}

// New returns the initial state: empty dataset, empty search, hidden panel.
func New(sort query.SortPolicy) State {
	return State{
		Sort:   sort,
		Panel:  PanelHidden,
		engine: query.NewEngine(catalog.Dataset{}),
	}
}

// Reduce applies ev to s and returns the next state.
func Reduce(s State, ev Event) State {
	if s.engine == nil {
		s.engine = query.NewEngine(catalog.Dataset{})
	}

	switch ev := ev.(type) {
	case Loaded:
		s.engine = query.NewEngine(ev.Dataset)
		s.Suggestions = s.engine.Suggestions(s.Search)
	case InputChanged:
		s.Search = ev.Text
		s.Suggestions = s.engine.Suggestions(ev.Text)
		if ev.Text != "" {
			s.Panel = PanelShown
		} else {
			s.Panel = PanelHidden
		}
	case Focused:
		s.Panel = PanelShown
	case Blurred:
		s.Panel = PanelHidden
	case SuggestionSelected:
		s.Search = ev.Title
		s.Panel = PanelHidden
	case SortChanged:
		s.Sort = ev.Policy
	}
	return s
}

// Dataset returns the loaded dataset.
func (s State) Dataset() catalog.Dataset {
	if s.engine == nil {
		return catalog.Dataset{}
	}
	return s.engine.Dataset()
}

// VisibleSuggestions returns the suggestions the panel shows, or nil when the
// search text is empty or the panel is hidden.
func (s State) VisibleSuggestions() []catalog.Suggestion {
	if s.Search == "" || s.Panel != PanelShown {
		return nil
	}
	return s.Suggestions
}

// Games derives the filtered and sorted result list.
func (s State) Games() []catalog.GroupedGame {
	if s.engine == nil {
		return nil
	}
	return s.engine.View(s.Search, s.Sort)
}

// Cards derives the result list in display form.
func (s State) Cards() []Card {
	games := s.Games()
	cards := make([]Card, len(games))
	for i, g := range games {
		cards[i] = NewCard(g)
	}
	return cards
}

// Hint offers a close title when a non-empty search finds nothing.
func (s State) Hint(maxDistance int) (string, bool) {
	if s.Search == "" || s.engine == nil || len(s.Games()) > 0 {
		return "", false
	}
	return s.engine.DidYouMean(s.Search, maxDistance)
}
