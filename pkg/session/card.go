package session

import (
	"strings"

	"github.com/bastiangx/arena/internal/utils"
	"github.com/bastiangx/arena/pkg/catalog"
)

// Card is one result as displayed.
type Card struct {
	Title         string
	Platforms     string
	Rating        string
	Genre         string
	EditorsChoice bool
}

// NewCard formats g for display.
func NewCard(g catalog.GroupedGame) Card {
	return Card{
		Title:         g.Title,
		Platforms:     strings.Join(g.Platforms, ", "),
		Rating:        utils.FormatScore(g.Score) + "/10",
		Genre:         g.Genre,
		EditorsChoice: g.IsEditorsChoice(),
	}
}
