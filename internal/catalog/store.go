package catalog

import (
	"context"
	"errors"
)

var ErrDeckNotFound = errors.New("deck not found")

// DeckStore is the read surface of the pack catalog, consumed by the HTTP
// API and the GET_DECKS gateway command.
type DeckStore interface {
	// ListDecks returns every deck without cards, official packs first.
	ListDecks(ctx context.Context) ([]Deck, error)

	// GetDeck returns one deck with all of its cards.
	GetDeck(ctx context.Context, id int64) (*Deck, error)
}
