package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(id int64) ResponseCard {
	return ResponseCard{ID: id, Text: "white", PackID: 1}
}

func TestRoster_AddRejectsDuplicateID(t *testing.T) {
	var ro Roster
	require.True(t, ro.Add(Player{ID: "a", Name: "Ann"}))
	require.False(t, ro.Add(Player{ID: "a", Name: "Impostor"}))
	require.Equal(t, 1, ro.Len())
	assert.Equal(t, "Ann", ro.Get("a").Name)
}

func TestRoster_RemoveKeepsOrder(t *testing.T) {
	var ro Roster
	ro.Add(Player{ID: "a"})
	ro.Add(Player{ID: "b"})
	ro.Add(Player{ID: "c"})

	require.True(t, ro.Remove("b"))
	require.False(t, ro.Remove("b"))

	ids := []string{}
	for _, gp := range ro.Players() {
		ids = append(ids, gp.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestRoster_DeductCardsIgnoresUnknownIDs(t *testing.T) {
	var ro Roster
	ro.Add(Player{ID: "a"})
	ro.Replenish("a", MaxHandSize, []ResponseCard{card(1), card(2), card(3)})

	ro.DeductCards("a", []int64{2, 99})
	ro.DeductCards("a", []int64{2}) // idempotent

	hand := ro.Get("a").Hand
	require.Len(t, hand, 2)
	assert.Equal(t, int64(1), hand[0].ID)
	assert.Equal(t, int64(3), hand[1].ID)
}

func TestRoster_ReplenishCapsAtMax(t *testing.T) {
	var ro Roster
	ro.Add(Player{ID: "a"})
	ro.Replenish("a", 3, []ResponseCard{card(1), card(2), card(3), card(4), card(5)})
	require.Len(t, ro.Get("a").Hand, 3)

	// already at cap: no-op, never shrinks
	ro.Replenish("a", 3, []ResponseCard{card(6)})
	require.Len(t, ro.Get("a").Hand, 3)
	ro.Replenish("a", 2, []ResponseCard{card(7)})
	require.Len(t, ro.Get("a").Hand, 3)
}

func TestRoster_ResetAllKeepsMembers(t *testing.T) {
	var ro Roster
	ro.Add(Player{ID: "a"})
	ro.Add(Player{ID: "b"})
	ro.Get("a").Score = 4
	ro.Replenish("b", MaxHandSize, []ResponseCard{card(1)})

	ro.ResetAll()

	require.Equal(t, 2, ro.Len())
	assert.Zero(t, ro.Get("a").Score)
	assert.Empty(t, ro.Get("b").Hand)
}
