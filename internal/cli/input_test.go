package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/arena/pkg/catalog"
	"github.com/bastiangx/arena/pkg/query"
	"github.com/bastiangx/arena/pkg/session"
	"github.com/charmbracelet/log"
)

func newHandler(input string) (*InputHandler, *bytes.Buffer) {
	ds := catalog.NewDataset([]catalog.GameRecord{
		{Title: "Halo", Platform: "Xbox", Score: 9, Genre: "FPS", EditorsChoice: "Y"},
		{Title: "Halo", Platform: "PC", Score: 9, Genre: "FPS", EditorsChoice: "Y"},
		{Title: "Hades", Platform: "Switch", Score: 8, Genre: "Roguelike"},
		{Title: "Portal", Platform: "PC", Score: 9.5, Genre: "Puzzle"},
	})
	st := session.Reduce(session.New(query.SortNone), session.Loaded{Dataset: ds})

	var buf bytes.Buffer
	out := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	return NewInputHandler(st, strings.NewReader(input), out, 8, 3), &buf
}

func TestSearchAndPick(t *testing.T) {
	h, buf := newHandler("ha\n:pick 2\n")
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	st := h.State()
	if st.Search != "Hades" || st.Panel != session.PanelHidden {
		t.Errorf("unexpected state: %+v", st)
	}
	out := buf.String()
	if !strings.Contains(out, "Suggestions for 'ha'") {
		t.Errorf("suggestions not printed:\n%s", out)
	}
	if !strings.Contains(out, "Editor's Choice") {
		t.Errorf("Halo card should carry the marker:\n%s", out)
	}
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	h, _ := newHandler("halo \r\n")
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	st := h.State()
	if st.Search != "halo " {
		t.Errorf("search = %q, want %q", st.Search, "halo ")
	}
	direct := session.Reduce(h.State(), session.InputChanged{Text: "halo "})
	if got, want := len(st.Games()), len(direct.Games()); got != want {
		t.Errorf("CLI found %d games, reducer finds %d", got, want)
	}
	if len(st.Games()) != 0 {
		t.Errorf("no title contains %q, got %d games", "halo ", len(st.Games()))
	}
}

func TestSortCommand(t *testing.T) {
	h, buf := newHandler(":sort desc\n:sort none\n:sort sideways\n")
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if h.State().Sort != query.SortNone {
		t.Errorf("invalid sort must not change state: %q", h.State().Sort)
	}
	out := buf.String()
	if !strings.Contains(out, "[Descending]") {
		t.Errorf("desc listing missing:\n%s", out)
	}
	if !strings.Contains(out, "unknown sort policy") {
		t.Errorf("invalid policy should be reported:\n%s", out)
	}
}

func TestQuitStopsReading(t *testing.T) {
	h, _ := newHandler(":quit\nportal\n")
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if h.State().Search != "" {
		t.Errorf("lines after :quit must be ignored, search = %q", h.State().Search)
	}
}

func TestNoResultsHint(t *testing.T) {
	h, buf := newHandler("prtal\n:pick 1\n:bogus\n")
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Did you mean 'Portal'?") {
		t.Errorf("hint missing:\n%s", out)
	}
	if !strings.Contains(out, "no suggestion") || !strings.Contains(out, "unknown command :bogus") {
		t.Errorf("errors not reported:\n%s", out)
	}
}

func TestFocusBlur(t *testing.T) {
	h, _ := newHandler("ha\n:blur\n")
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	if h.State().Panel != session.PanelHidden {
		t.Error("blur should hide the panel")
	}

	h, _ = newHandler(":focus\n")
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	if h.State().Panel != session.PanelShown {
		t.Error("focus should show the panel")
	}
}
