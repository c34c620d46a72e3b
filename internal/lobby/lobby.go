package lobby

import (
	"context"

	"go.uber.org/zap"

	"github.com/blanks-game/blanks-backend/internal/game"
)

type Msg interface{ isLobbyMsg() }

// Attach registers a connected client. The lobby immediately pushes the
// current snapshot to Outbox.
type Attach struct {
	ClientID string
	Outbox   chan Snapshot
}

func (Attach) isLobbyMsg() {}

type Detach struct{ ClientID string }

func (Detach) isLobbyMsg() {}

// FromClient carries a mutating command. Reply, if non-nil, receives the
// command's outcome (nil on success); it must be buffered.
type FromClient struct {
	Cmd   game.Command
	Reply chan error
}

func (FromClient) isLobbyMsg() {}

// GetHand asks for one player's hand, sent only to the requester.
type GetHand struct {
	PlayerID string
	Reply    chan []game.ResponseCard
}

func (GetHand) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type Snapshot struct {
	Version int
	State   game.Snapshot
}

type View struct {
	Version    int
	NumClients int
	State      game.Snapshot
}

// Lobby owns one game session. A single goroutine drains the inbox, so a
// command runs to completion, catalog round-trips included, before the
// next one is dequeued. That serialization is what keeps the session's
// invariants safe without locks.
type Lobby struct {
	inbox   chan Msg
	session *game.Session
	version int
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewLobby(parent context.Context, session *game.Session, log *zap.Logger) *Lobby {
	ctx, cancel := context.WithCancel(parent)

	l := &Lobby{
		inbox:   make(chan Msg, 64), // Small buffer
		session: session,
		clients: make(map[string]chan Snapshot),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go l.loop()
	return l
}

func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Attach:
				l.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: l.version, State: l.session.Snapshot()}

			case Detach:
				if ch, ok := l.clients[msg.ClientID]; ok {
					close(ch) // Let the client's writer exit
					delete(l.clients, msg.ClientID)
				}

			case FromClient:
				err := l.session.Apply(l.ctx, msg.Cmd)
				if msg.Reply != nil {
					msg.Reply <- err
				}
				if err != nil {
					l.log.Debug("command rejected",
						zap.String("cmd", string(msg.Cmd.Type)),
						zap.Error(err))
					break
				}
				l.version++
				l.broadcast(Snapshot{Version: l.version, State: l.session.Snapshot()})

			case GetHand:
				msg.Reply <- l.session.Hand(msg.PlayerID)

			case GetState:
				msg.Reply <- View{
					Version:    l.version,
					NumClients: len(l.clients),
					State:      l.session.Snapshot(),
				}

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch) // Tell client no more snapshots
		delete(l.clients, id)
	}
	l.cancel()
}

func (l *Lobby) broadcast(snap Snapshot) {
	for id, ch := range l.clients {
		select {
		case ch <- snap:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(l.clients, id)
		}
	}
}
