package hub

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/lobby"
)

func newTestHub() *Hub {
	cat := catalog.NewMemory(nil, nil, nil)
	return NewHub(context.Background(), cat, zap.NewNop())
}

func TestHub_Create_Get_SamePointer(t *testing.T) {
	h := newTestHub()
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- CreateLobby{Code: "ZED123", Reply: reply}
	lb1 := <-reply

	h.Inbox() <- GetLobby{Code: "ZED123", Reply: reply}
	lb2 := <-reply

	if lb1 == nil || lb2 == nil || lb1 != lb2 {
		t.Fatalf("expected same lobby pointer")
	}
}

func TestHub_GetUnknownCodeIsNil(t *testing.T) {
	h := newTestHub()
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- GetLobby{Code: "NOPE", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatalf("expected nil for unknown code, got %v", lb)
	}
}

func TestHub_RemoveThenGetIsNil(t *testing.T) {
	h := newTestHub()
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- EnsureLobby{Code: "ABC", Reply: reply}
	if lb := <-reply; lb == nil {
		t.Fatalf("ensure should create the lobby")
	}

	h.Inbox() <- RemoveLobby{Code: "ABC"}
	h.Inbox() <- GetLobby{Code: "ABC", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatalf("expected lobby gone after remove")
	}
}
