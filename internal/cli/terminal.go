package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/arena/pkg/session"
)

// render prints the panel and the cards for the current state.
func (h *InputHandler) render() {
	st := h.state

	if visible := st.VisibleSuggestions(); len(visible) > 0 {
		h.out.Printf("Suggestions for '%s':", st.Search)
		for i, s := range visible {
			if i == h.maxSuggestions {
				h.out.Printf("    ... %d more", len(visible)-i)
				break
			}
			h.out.Printf("%2d. %s", i+1, highlight(s.Title))
		}
	}

	cards := st.Cards()
	if len(cards) == 0 {
		if hint, ok := st.Hint(h.hintDistance); ok {
			h.out.Warnf("No games found for '%s'. Did you mean '%s'?", st.Search, hint)
		} else {
			h.out.Warnf("No games found for '%s'", st.Search)
		}
		return
	}

	h.out.Printf("%d games [%s]:", len(cards), st.Sort.Label())
	for _, c := range cards {
		h.out.Print(formatCard(c))
	}
}

// formatCard renders one card on a single line.
func formatCard(c session.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-40s %-30s Rating: %-7s Genre: %s", highlight(c.Title), c.Platforms, c.Rating, c.Genre)
	if c.EditorsChoice {
		b.WriteString("  * Editor's Choice")
	}
	return b.String()
}

func highlight(s string) string {
	return fmt.Sprintf("\033[38;5;75m%s\033[0m", s)
}
