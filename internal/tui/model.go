// Package tui is the interactive terminal front end: a search box with a
// suggestion dropdown, a sort selector and the list of game cards.
package tui

import (
	"fmt"
	"strings"

	"github.com/bastiangx/arena/pkg/catalog"
	"github.com/bastiangx/arena/pkg/query"
	"github.com/bastiangx/arena/pkg/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cardHeight is the rendered height of one card including its border.
const cardHeight = 7

// Params configures a Model.
type Params struct {
	// Load performs the session's single dataset fetch. It runs off the
	// update loop and its result arrives as a message.
	Load           func() catalog.Dataset
	Sort           query.SortPolicy
	MaxSuggestions int
	HintDistance   int
	AltScreen      bool
}

type datasetLoadedMsg struct {
	ds catalog.Dataset
}

// Model is the bubbletea model of the viewer.
type Model struct {
	state session.State
	input textinput.Model
	help  help.Model

	load           func() catalog.Dataset
	loading        bool
	cursor         int
	offset         int
	maxSuggestions int
	hintDistance   int
	height         int
}

// NewModel creates the viewer with the search box focused.
func NewModel(p Params) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by title..."
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	maxSuggestions := p.MaxSuggestions
	if maxSuggestions < 1 {
		maxSuggestions = 8
	}

	return Model{
		state:          session.Reduce(session.New(p.Sort), session.Focused{}),
		input:          ti,
		help:           help.New(),
		load:           p.Load,
		loading:        p.Load != nil,
		maxSuggestions: maxSuggestions,
		hintDistance:   p.HintDistance,
	}
}

// State returns the session state behind the view.
func (m Model) State() session.State {
	return m.state
}

// Init starts the cursor blink and the dataset fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}
	load := m.load
	return func() tea.Msg {
		return datasetLoadedMsg{ds: load()}
	}
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datasetLoadedMsg:
		m.loading = false
		m.state = session.Reduce(m.state, session.Loaded{Dataset: msg.ds})
		m.cursor, m.offset = 0, 0
		return m, nil
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Focus):
		return m.toggleFocus()
	case key.Matches(msg, keys.Sort), !m.input.Focused() && key.Matches(msg, keys.SortIdle):
		m.state = session.Reduce(m.state, session.SortChanged{Policy: m.state.Sort.Next()})
		m.offset = 0
		return m, nil
	}

	if visible := m.visibleSuggestions(); len(visible) > 0 {
		switch {
		case key.Matches(msg, keys.Up):
			m.cursor = max(m.cursor-1, 0)
			return m, nil
		case key.Matches(msg, keys.Down):
			m.cursor = min(m.cursor+1, len(visible)-1)
			return m, nil
		case key.Matches(msg, keys.Select):
			return m.selectSuggestion(visible[m.cursor].Title), nil
		}
	}

	if !m.input.Focused() {
		switch {
		case key.Matches(msg, keys.Up):
			m.offset = max(m.offset-1, 0)
		case key.Matches(msg, keys.Down):
			m.offset = min(m.offset+1, max(len(m.state.Games())-1, 0))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != m.state.Search {
		m.state = session.Reduce(m.state, session.InputChanged{Text: text})
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		m.input.Blur()
		m.state = session.Reduce(m.state, session.Blurred{})
		return m, nil
	}
	cmd := m.input.Focus()
	m.state = session.Reduce(m.state, session.Focused{})
	m.cursor = 0
	return m, cmd
}

func (m Model) selectSuggestion(title string) Model {
	m.input.SetValue(title)
	m.input.CursorEnd()
	m.state = session.Reduce(m.state, session.SuggestionSelected{Title: title})
	m.cursor, m.offset = 0, 0
	return m
}

// visibleSuggestions caps the panel at maxSuggestions rows.
func (m Model) visibleSuggestions() []catalog.Suggestion {
	visible := m.state.VisibleSuggestions()
	if len(visible) > m.maxSuggestions {
		visible = visible[:m.maxSuggestions]
	}
	return visible
}

// View renders the whole screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Games Arena"))
	b.WriteString("\n")

	sort := sortStyle
	if m.state.Sort != query.SortNone {
		sort = sortActiveStyle
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", sort.Render(m.state.Sort.Label())))
	b.WriteString("\n")

	if visible := m.visibleSuggestions(); len(visible) > 0 {
		rows := make([]string, len(visible))
		for i, s := range visible {
			if i == m.cursor {
				rows[i] = suggestionActiveStyle.Render("› " + s.Title)
			} else {
				rows[i] = suggestionStyle.Render("  " + s.Title)
			}
		}
		b.WriteString(panelStyle.Render(strings.Join(rows, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.resultsView())
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(keys.help())))
	return b.String()
}

func (m Model) resultsView() string {
	if m.loading {
		return hintStyle.Render("Loading games...") + "\n"
	}

	cards := m.state.Cards()
	if len(cards) == 0 {
		msg := "No games found."
		if hint, ok := m.state.Hint(m.hintDistance); ok {
			msg = fmt.Sprintf("No games found. Did you mean %q?", hint)
		}
		return hintStyle.Render(msg) + "\n"
	}

	start := min(m.offset, len(cards)-1)
	end := len(cards)
	if m.height > 0 {
		fit := max((m.height-12)/cardHeight, 1)
		end = min(start+fit, len(cards))
	}

	var b strings.Builder
	b.WriteString(hintStyle.Render(fmt.Sprintf("%d games", len(cards))))
	b.WriteString("\n")
	for _, c := range cards[start:end] {
		b.WriteString(renderCard(c))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(c session.Card) string {
	lines := []string{
		cardTitleStyle.Render(c.Title),
		platformsStyle.Render(c.Platforms),
		"Rating: " + c.Rating,
		"Genre: " + c.Genre,
	}
	if c.EditorsChoice {
		lines = append(lines, editorsChoiceStyle.Render("Editor's Choice"))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Run starts the program and blocks until the user quits.
func Run(p Params) error {
	var opts []tea.ProgramOption
	if p.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(NewModel(p), opts...).Run()
	return err
}
