package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/blanks-game/blanks-backend/internal/game"
)

func TestServerMessage_VersionZeroStaysOnTheWire(t *testing.T) {
	// the very first GAME_CHANGED after attach carries version 0; it must
	// not be dropped by marshalling
	snap := game.Snapshot{CurrentRound: -1, MaxScore: 5}
	payload, err := json.Marshal(ServerMessage{Type: "GAME_CHANGED", Version: 0, State: &snap})
	if err != nil {
		t.Fatal(err)
	}
	s := string(payload)
	if !strings.Contains(s, `"version":0`) {
		t.Fatalf("version 0 missing from payload: %s", s)
	}
	if !strings.Contains(s, `"currentRound":-1`) || !strings.Contains(s, `"maxScore":5`) {
		t.Fatalf("zero-meaningful snapshot fields missing from payload: %s", s)
	}
}
