package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/hub"
	"github.com/blanks-game/blanks-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, store catalog.DeckStore, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/lobbies", CreateLobby(h, log))
	r.Get("/decks", ListDecks(store, log))
	r.Get("/decks/{id}", GetDeck(store, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, store, log))
	return r
}
