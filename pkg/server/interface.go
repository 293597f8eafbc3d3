/*
Package server implements msgpack IPC for the catalog viewer.

A client drives one viewer session over stdin/stdout. Each request is a UI
event; each response is a snapshot of what the viewer would show after it.
Requests are processed strictly in order, one at a time.

# IPC

On start the server writes a ready message:

	{"status": "ready", "n": 2}

Type into the search box:

	{"id": "req_001", "a": "input", "v": "hal"}

The response carries the search text, sort policy, panel state, visible
suggestions and result cards:

	{"id": "req_001", "q": "hal", "o": "", "p": true,
	 "s": [{"t": "Halo", "p": ["Xbox", "PC"]}],
	 "g": [{"t": "Halo", "p": "Xbox, PC", "r": "9/10", "g": "FPS", "e": true}],
	 "c": 1, "t": 42}

Other actions:

	{"id": "req_002", "a": "focus"}
	{"id": "req_003", "a": "blur"}
	{"id": "req_004", "a": "select", "v": "Halo"}
	{"id": "req_005", "a": "sort", "v": "desc"}
	{"id": "req_006", "a": "view"}
	{"id": "req_007", "a": "health"}

Failures come back as {"id": ..., "e": message, "c": code} and leave the
session untouched.
*/
package server

// Action names accepted in Request.Action.
const (
	ActionInput  = "input"
	ActionFocus  = "focus"
	ActionBlur   = "blur"
	ActionSelect = "select"
	ActionSort   = "sort"
	ActionView   = "view"
	ActionHealth = "health"
)

// Request - one UI event
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Value  string `msgpack:"v,omitempty"`
}

// SuggestionItem - one row of the suggestion panel
type SuggestionItem struct {
	Title     string   `msgpack:"t"`
	Platforms []string `msgpack:"p"`
}

// CardItem - one result card
type CardItem struct {
	Title         string `msgpack:"t"`
	Platforms     string `msgpack:"p"`
	Rating        string `msgpack:"r"`
	Genre         string `msgpack:"g"`
	EditorsChoice bool   `msgpack:"e"`
}

// ViewResponse - session snapshot after a request
type ViewResponse struct {
	ID          string           `msgpack:"id"`
	Search      string           `msgpack:"q"`
	Sort        string           `msgpack:"o"`
	PanelShown  bool             `msgpack:"p"`
	Suggestions []SuggestionItem `msgpack:"s"`
	Games       []CardItem       `msgpack:"g"`
	Count       int              `msgpack:"c"`
	Hint        string           `msgpack:"h,omitempty"`
	TimeTaken   int64            `msgpack:"t"`
}

// StatusResponse - ready and health messages
type StatusResponse struct {
	ID      string `msgpack:"id,omitempty"`
	Status  string `msgpack:"status"`
	Records int    `msgpack:"n"`
}

// ErrorResponse holds basic error information for rejected requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
