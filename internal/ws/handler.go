package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/game"
	"github.com/blanks-game/blanks-backend/internal/hub"
	"github.com/blanks-game/blanks-backend/internal/lobby"
	"github.com/blanks-game/blanks-backend/internal/types"
)

const (
	writeTimeout = 3 * time.Second
	readTimeout  = 60 * time.Second
)

// Handler upgrades the connection, attaches it to the lobby named by the
// ?code= query parameter, and shuttles commands in and snapshots out.
// Broadcasts go through the lobby outbox; requester-only replies
// (PLAYER_CREATED, GOT_HAND, DECKS, ERROR) are written directly.
func Handler(h *hub.Hub, decks catalog.DeckStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.GetLobby{Code: code, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		log = log.With(zap.String("code", code), zap.String("client", clientID))
		log.Info("client connected")

		out := make(chan lobby.Snapshot, 8)
		lb.Inbox() <- lobby.Attach{ClientID: clientID, Outbox: out}
		defer func() { lb.Inbox() <- lobby.Detach{ClientID: clientID} }()

		// Writer goroutine: broadcast snapshots
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				writeMsg(writeCtx, conn, types.ServerMessage{
					Type:    "GAME_CHANGED",
					Version: snap.Version,
					State:   &snap.State,
				})
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					log.Info("client disconnected")
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeMsg(r.Context(), conn, types.ServerMessage{Type: "ERROR", Error: "bad json"})
				continue
			}

			handleMessage(r.Context(), conn, lb, decks, log, cm)
		}
	}
}

func handleMessage(ctx context.Context, conn *websocket.Conn, lb *lobby.Lobby, decks catalog.DeckStore, log *zap.Logger, cm types.ClientMessage) {
	switch cm.Type {
	case "GET_GAME":
		reply := make(chan lobby.View, 1)
		lb.Inbox() <- lobby.GetState{Reply: reply}
		v := <-reply
		writeMsg(ctx, conn, types.ServerMessage{Type: "GAME_CHANGED", Version: v.Version, State: &v.State})

	case "CREATE_PLAYER":
		p := game.Player{ID: uuid.NewString(), Name: cm.Name}
		writeMsg(ctx, conn, types.ServerMessage{Type: "PLAYER_CREATED", Player: &p})

	case "GET_HAND":
		reply := make(chan []game.ResponseCard, 1)
		lb.Inbox() <- lobby.GetHand{PlayerID: cm.PlayerID, Reply: reply}
		writeMsg(ctx, conn, types.ServerMessage{Type: "GOT_HAND", Hand: <-reply})

	case "GET_DECKS":
		list, err := decks.ListDecks(ctx)
		if err != nil {
			log.Warn("deck listing failed", zap.Error(err))
			writeMsg(ctx, conn, types.ServerMessage{Type: "ERROR", Error: "catalog unavailable"})
			return
		}
		writeMsg(ctx, conn, types.ServerMessage{Type: "DECKS", Decks: list})

	default:
		cmd, ok := toCommand(cm)
		if !ok {
			writeMsg(ctx, conn, types.ServerMessage{Type: "ERROR", Error: "unknown type"})
			return
		}
		reply := make(chan error, 1)
		lb.Inbox() <- lobby.FromClient{Cmd: cmd, Reply: reply}
		if err := <-reply; err != nil {
			writeMsg(ctx, conn, types.ServerMessage{Type: "ERROR", Error: err.Error()})
		}
	}
}

// toCommand maps a client event onto a session command. Read-only events
// are handled before we get here.
func toCommand(m types.ClientMessage) (game.Command, bool) {
	switch m.Type {
	case "JOIN":
		if m.Player == nil {
			return game.Command{}, false
		}
		return game.Command{Type: game.CmdJoin, Player: *m.Player}, true
	case "LEAVE":
		return game.Command{Type: game.CmdLeave, PlayerID: m.PlayerID}, true
	case "SET_OWNER":
		if m.Player == nil {
			return game.Command{}, false
		}
		return game.Command{Type: game.CmdSetOwner, Player: *m.Player}, true
	case "SET_MAX_SCORE":
		return game.Command{Type: game.CmdSetMaxScore, MaxScore: m.MaxScore}, true
	case "CHANGE_SETTINGS":
		return game.Command{Type: game.CmdChangeSettings, MaxScore: m.MaxScore, Packs: m.Decks}, true
	case "ADD_DECK":
		return game.Command{Type: game.CmdAddDeck, PackID: m.DeckID}, true
	case "REMOVE_DECK":
		return game.Command{Type: game.CmdRemoveDeck, PackID: m.DeckID}, true
	case "START_GAME":
		return game.Command{Type: game.CmdStartGame}, true
	case "SUBMIT_PLAY":
		return game.Command{Type: game.CmdSubmitPlay, PlayerID: m.PlayerID, CardIDs: m.Cards}, true
	case "JUDGE_PLAY":
		return game.Command{Type: game.CmdJudgePlay, PlayerID: m.PlayerID, JudgedByID: m.JudgedByID}, true
	case "RESTART_GAME":
		return game.Command{Type: game.CmdRestartGame}, true
	default:
		return game.Command{}, false
	}
}

func writeMsg(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, _ := json.Marshal(msg)
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	_ = conn.Write(wctx, websocket.MessageText, payload)
	cancel()
}
