package ws

import (
	"testing"

	"github.com/blanks-game/blanks-backend/internal/game"
	"github.com/blanks-game/blanks-backend/internal/types"
)

func TestToCommand_MapsEveryMutatingEvent(t *testing.T) {
	cases := []struct {
		name string
		in   types.ClientMessage
		want game.CommandType
	}{
		{"join", types.ClientMessage{Type: "JOIN", Player: &game.Player{ID: "a", Name: "Ann"}}, game.CmdJoin},
		{"leave", types.ClientMessage{Type: "LEAVE", PlayerID: "a"}, game.CmdLeave},
		{"set owner", types.ClientMessage{Type: "SET_OWNER", Player: &game.Player{ID: "a"}}, game.CmdSetOwner},
		{"set max score", types.ClientMessage{Type: "SET_MAX_SCORE", MaxScore: 9}, game.CmdSetMaxScore},
		{"change settings", types.ClientMessage{Type: "CHANGE_SETTINGS", MaxScore: 3, Decks: []int64{1, 2}}, game.CmdChangeSettings},
		{"add deck", types.ClientMessage{Type: "ADD_DECK", DeckID: 2}, game.CmdAddDeck},
		{"remove deck", types.ClientMessage{Type: "REMOVE_DECK", DeckID: 2}, game.CmdRemoveDeck},
		{"start", types.ClientMessage{Type: "START_GAME"}, game.CmdStartGame},
		{"submit", types.ClientMessage{Type: "SUBMIT_PLAY", PlayerID: "a", Cards: []int64{1}}, game.CmdSubmitPlay},
		{"judge", types.ClientMessage{Type: "JUDGE_PLAY", PlayerID: "a", JudgedByID: "b"}, game.CmdJudgePlay},
		{"restart", types.ClientMessage{Type: "RESTART_GAME"}, game.CmdRestartGame},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := toCommand(tc.in)
			if !ok {
				t.Fatalf("expected %s to map", tc.in.Type)
			}
			if cmd.Type != tc.want {
				t.Fatalf("got %s, want %s", cmd.Type, tc.want)
			}
		})
	}
}

func TestToCommand_RejectsUnknownAndMalformed(t *testing.T) {
	if _, ok := toCommand(types.ClientMessage{Type: "DANCE"}); ok {
		t.Fatalf("unknown type must not map")
	}
	if _, ok := toCommand(types.ClientMessage{Type: "JOIN"}); ok {
		t.Fatalf("JOIN without player must not map")
	}
	if _, ok := toCommand(types.ClientMessage{Type: "SET_OWNER"}); ok {
		t.Fatalf("SET_OWNER without player must not map")
	}
}

func TestToCommand_SubmitPlayKeepsCardOrder(t *testing.T) {
	cmd, ok := toCommand(types.ClientMessage{Type: "SUBMIT_PLAY", PlayerID: "a", Cards: []int64{9, 3, 7}})
	if !ok {
		t.Fatalf("expected mapping")
	}
	want := []int64{9, 3, 7}
	for i, id := range cmd.CardIDs {
		if id != want[i] {
			t.Fatalf("card order changed: got %v, want %v", cmd.CardIDs, want)
		}
	}
}
