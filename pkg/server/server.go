package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/arena/pkg/config"
	"github.com/bastiangx/arena/pkg/query"
	"github.com/bastiangx/arena/pkg/session"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server owns one viewer session and serves it over a msgpack stream.
type Server struct {
	state        session.State
	config       config.ServerConfig
	hintDistance int
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(state session.State, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		state:        state,
		config:       cfg.Server,
		hintDistance: cfg.UI.DidYouMeanDistance,
		dec:          msgpack.NewDecoder(r),
		enc:          msgpack.NewEncoder(w),
	}
}

// State returns the current session state.
func (s *Server) State() session.State {
	return s.state
}

// Start announces readiness and serves requests until EOF.
// A malformed msgpack frame ends the stream since it cannot be resynchronized.
func (s *Server) Start() error {
	log.Debug("Starting IPC server")

	if err := s.send(StatusResponse{Status: "ready", Records: s.state.Dataset().Len()}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Client disconnected (EOF)")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			_ = s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", err)
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest applies one request and writes its response.
func (s *Server) handleRequest(req Request) error {
	if len(req.Value) > s.config.MaxRequestBytes {
		log.Debug("Request value too long", "id", req.ID, "len", len(req.Value))
		return s.sendError(req.ID, fmt.Sprintf("Value exceeds maximum length of %d bytes", s.config.MaxRequestBytes), 413)
	}

	start := time.Now()
	switch req.Action {
	case ActionInput:
		s.state = session.Reduce(s.state, session.InputChanged{Text: req.Value})
	case ActionFocus:
		s.state = session.Reduce(s.state, session.Focused{})
	case ActionBlur:
		s.state = session.Reduce(s.state, session.Blurred{})
	case ActionSelect:
		if req.Value == "" {
			return s.sendError(req.ID, "Missing suggestion title", 400)
		}
		s.state = session.Reduce(s.state, session.SuggestionSelected{Title: req.Value})
	case ActionSort:
		policy, err := query.ParseSortPolicy(req.Value)
		if err != nil {
			return s.sendError(req.ID, err.Error(), 400)
		}
		s.state = session.Reduce(s.state, session.SortChanged{Policy: policy})
	case ActionView:
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok", Records: s.state.Dataset().Len()})
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}

	resp := s.snapshot(req.ID)
	resp.TimeTaken = time.Since(start).Microseconds()
	return s.send(resp)
}

// snapshot renders the current state into a response.
func (s *Server) snapshot(id string) ViewResponse {
	visible := s.state.VisibleSuggestions()
	suggestions := make([]SuggestionItem, len(visible))
	for i, sg := range visible {
		suggestions[i] = SuggestionItem{Title: sg.Title, Platforms: sg.Platforms}
	}

	cards := s.state.Cards()
	games := make([]CardItem, len(cards))
	for i, c := range cards {
		games[i] = CardItem{
			Title:         c.Title,
			Platforms:     c.Platforms,
			Rating:        c.Rating,
			Genre:         c.Genre,
			EditorsChoice: c.EditorsChoice,
		}
	}

	resp := ViewResponse{
		ID:          id,
		Search:      s.state.Search,
		Sort:        string(s.state.Sort),
		PanelShown:  s.state.Panel == session.PanelShown,
		Suggestions: suggestions,
		Games:       games,
		Count:       len(games),
	}
	if len(games) == 0 {
		if hint, ok := s.state.Hint(s.hintDistance); ok {
			resp.Hint = hint
		}
	}
	return resp
}

func (s *Server) send(v any) error {
	if err := s.enc.Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
