package types

import (
	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/game"
)

// ClientMessage is the envelope for every client-to-server event. Type
// selects the command; only the matching payload fields are read.
//
// GET_GAME: {}
//
// CREATE_PLAYER:
//   name: string
//
// JOIN:
//   player: {id, name}
//
// LEAVE:
//   playerId: string
//
// SET_OWNER:
//   player: {id, name}
//
// SET_MAX_SCORE:
//   maxScore: number
//
// CHANGE_SETTINGS:
//   maxScore: number (optional)
//   decks: number[] (optional, additive)
//
// ADD_DECK / REMOVE_DECK:
//   deckId: number
//
// GET_DECKS: {}
//
// START_GAME: {}
//
// GET_HAND:
//   playerId: string
//
// SUBMIT_PLAY:
//   playerId: string
//   cards: number[] (card ids, order preserved)
//
// JUDGE_PLAY:
//   playerId: string (candidate winner)
//   judgedById: string
//
// RESTART_GAME: {}
type ClientMessage struct {
	Type       string       `json:"type"`
	Name       string       `json:"name,omitempty"`
	Player     *game.Player `json:"player,omitempty"`
	PlayerID   string       `json:"playerId,omitempty"`
	JudgedByID string       `json:"judgedById,omitempty"`
	Cards      []int64      `json:"cards,omitempty"`
	MaxScore   int          `json:"maxScore,omitempty"`
	Decks      []int64      `json:"decks,omitempty"`
	DeckID     int64        `json:"deckId,omitempty"`
}

// ServerMessage is the envelope for server-to-client events.
//
// GAME_CHANGED (broadcast after every accepted command):
//   version: number
//   state: Snapshot
//
// PLAYER_CREATED (requester only):
//   player: {id, name}
//
// GOT_HAND (requester only):
//   hand: ResponseCard[]
//
// DECKS (requester only):
//   decks: Deck[]
//
// ERROR (requester only):
//   error: string
type ServerMessage struct {
	Type    string              `json:"type"`
	Version int                 `json:"version"`
	State   *game.Snapshot      `json:"state,omitempty"`
	Player  *game.Player        `json:"player,omitempty"`
	Hand    []game.ResponseCard `json:"hand,omitempty"`
	Decks   []catalog.Deck      `json:"decks,omitempty"`
	Error   string              `json:"error,omitempty"`
}
