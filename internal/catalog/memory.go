package catalog

import (
	"context"
	"math/rand"
	"sort"

	"github.com/blanks-game/blanks-backend/internal/game"
)

// Memory is an in-process catalog backed by slices. It mirrors the PG
// store's sampling semantics (independent draws, duplicates possible) and
// exists for tests and local runs without a database.
type Memory struct {
	decks  []Deck
	whites []WhiteCard
	blacks []BlackCard
}

func NewMemory(decks []Deck, whites []WhiteCard, blacks []BlackCard) *Memory {
	return &Memory{decks: decks, whites: whites, blacks: blacks}
}

func (m *Memory) RandomPromptCard(_ context.Context, packIDs []int64) (game.PromptCard, error) {
	pool := make([]BlackCard, 0, len(m.blacks))
	for _, c := range m.blacks {
		if inPacks(c.PackID, packIDs) {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return game.PromptCard{}, ErrDeckNotFound
	}
	c := pool[rand.Intn(len(pool))]
	return game.PromptCard{ID: c.ID, Text: c.Text, PackID: c.PackID, Pick: c.Pick}, nil
}

func (m *Memory) RandomResponseCards(_ context.Context, packIDs []int64, n int) ([]game.ResponseCard, error) {
	pool := make([]WhiteCard, 0, len(m.whites))
	for _, c := range m.whites {
		if inPacks(c.PackID, packIDs) {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil, ErrDeckNotFound
	}
	cards := make([]game.ResponseCard, 0, n)
	for _, i := range rand.Perm(len(pool)) {
		if len(cards) == n {
			break
		}
		c := pool[i]
		cards = append(cards, game.ResponseCard{ID: c.ID, Text: c.Text, PackID: c.PackID})
	}
	return cards, nil
}

func (m *Memory) ResolveByIDs(_ context.Context, ids []int64) ([]game.ResponseCard, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var cards []game.ResponseCard
	for _, c := range m.whites {
		if want[c.ID] {
			cards = append(cards, game.ResponseCard{ID: c.ID, Text: c.Text, PackID: c.PackID})
		}
	}
	return cards, nil
}

func (m *Memory) ListDecks(_ context.Context) ([]Deck, error) {
	decks := make([]Deck, len(m.decks))
	copy(decks, m.decks)
	sort.SliceStable(decks, func(i, j int) bool {
		if decks[i].Official != decks[j].Official {
			return decks[i].Official
		}
		return decks[i].ID < decks[j].ID
	})
	return decks, nil
}

func (m *Memory) GetDeck(_ context.Context, id int64) (*Deck, error) {
	for _, d := range m.decks {
		if d.ID == id {
			deck := d
			for _, c := range m.whites {
				if c.PackID == id {
					deck.WhiteCards = append(deck.WhiteCards, c)
				}
			}
			for _, c := range m.blacks {
				if c.PackID == id {
					deck.BlackCards = append(deck.BlackCards, c)
				}
			}
			return &deck, nil
		}
	}
	return nil, ErrDeckNotFound
}

func inPacks(packID int64, packIDs []int64) bool {
	for _, id := range packIDs {
		if id == packID {
			return true
		}
	}
	return false
}
