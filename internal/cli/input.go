// Package cli handles a line-based catalog session for DBG and testing query behavior
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/arena/pkg/query"
	"github.com/bastiangx/arena/pkg/session"
	"github.com/charmbracelet/log"
)

// InputHandler reads search text and commands line by line and prints the
// resulting suggestions and cards.
//
// A plain line replaces the search text. Lines starting with ':' are commands:
//
//	:sort asc|desc|none   change the sort policy
//	:pick N               select the N-th visible suggestion
//	:focus / :blur        toggle the suggestion panel like the search box would
//	:clear                empty the search text
//	:quit                 leave
type InputHandler struct {
	state          session.State
	reader         io.Reader
	out            *log.Logger
	maxSuggestions int
	hintDistance   int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(state session.State, r io.Reader, out *log.Logger, maxSuggestions, hintDistance int) *InputHandler {
	return &InputHandler{
		state:          state,
		reader:         r,
		out:            out,
		maxSuggestions: maxSuggestions,
		hintDistance:   hintDistance,
	}
}

// State returns the current session state.
func (h *InputHandler) State() session.State {
	return h.state
}

var errQuit = errors.New("quit")

// Start begins the interface loop.
// It returns nil on EOF or :quit.
func (h *InputHandler) Start() error {
	h.out.Print("Games Arena CLI [BETA]")
	h.out.Printf("%d records loaded. Type a title and press Enter (:quit to exit):", h.state.Dataset().Len())

	scanner := bufio.NewScanner(h.reader)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := h.handleInput(scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			h.out.Error(err.Error())
		}
	}
}

// handleInput applies one line to the session and prints the result.
func (h *InputHandler) handleInput(line string) error {
	line = strings.TrimRight(line, "\r\n")

	if !strings.HasPrefix(line, ":") {
		h.apply(session.InputChanged{Text: line})
		return nil
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "q":
		return errQuit
	case "sort":
		if arg == "none" {
			arg = ""
		}
		policy, err := query.ParseSortPolicy(arg)
		if err != nil {
			return err
		}
		h.apply(session.SortChanged{Policy: policy})
	case "pick":
		visible := h.state.VisibleSuggestions()
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(visible) {
			return fmt.Errorf("no suggestion %q (have %d)", arg, len(visible))
		}
		h.apply(session.SuggestionSelected{Title: visible[n-1].Title})
	case "focus":
		h.apply(session.Focused{})
	case "blur":
		h.apply(session.Blurred{})
	case "clear":
		h.apply(session.InputChanged{Text: ""})
	default:
		return fmt.Errorf("unknown command :%s", cmd)
	}
	return nil
}

func (h *InputHandler) apply(ev session.Event) {
	start := time.Now()
	h.state = session.Reduce(h.state, ev)
	log.Debugf("Took [ %v ] for %T", time.Since(start), ev)
	h.render()
}
