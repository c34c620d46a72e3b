package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMemory() *Memory {
	return NewMemory(
		[]Deck{
			{ID: 1, Name: "Community", Official: false},
			{ID: 2, Name: "Base Set", Official: true},
		},
		[]WhiteCard{
			{ID: 10, Text: "a sensible answer", PackID: 1},
			{ID: 11, Text: "a worse answer", PackID: 1},
			{ID: 12, Text: "the official answer", PackID: 2},
		},
		[]BlackCard{
			{ID: 20, Text: "Why? _", Pick: 1, PackID: 1},
			{ID: 21, Text: "_ and _", Pick: 2, PackID: 2},
		},
	)
}

func TestMemory_ListDecksOfficialFirst(t *testing.T) {
	decks, err := testMemory().ListDecks(context.Background())
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, int64(2), decks[0].ID)
	assert.True(t, decks[0].Official)
}

func TestMemory_SamplingRespectsPackFilter(t *testing.T) {
	m := testMemory()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		prompt, err := m.RandomPromptCard(ctx, []int64{2})
		require.NoError(t, err)
		assert.Equal(t, int64(2), prompt.PackID)
		assert.Equal(t, 2, prompt.Pick)
	}

	cards, err := m.RandomResponseCards(ctx, []int64{1}, 5)
	require.NoError(t, err)
	assert.Len(t, cards, 2, "pool smaller than n returns what exists")
	for _, c := range cards {
		assert.Equal(t, int64(1), c.PackID)
	}

	_, err = m.RandomPromptCard(ctx, []int64{99})
	assert.Error(t, err)
}

func TestMemory_ResolveByIDsIgnoresUnknown(t *testing.T) {
	cards, err := testMemory().ResolveByIDs(context.Background(), []int64{12, 10, 999})
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestMemory_GetDeckIncludesCards(t *testing.T) {
	m := testMemory()
	deck, err := m.GetDeck(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, deck.WhiteCards, 2)
	assert.Len(t, deck.BlackCards, 1)

	_, err = m.GetDeck(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDeckNotFound)
}
