package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/hub"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	store := catalog.NewMemory(
		[]catalog.Deck{
			{ID: 1, Name: "Community"},
			{ID: 2, Name: "Base Set", Official: true},
		},
		[]catalog.WhiteCard{{ID: 10, Text: "a card", PackID: 2}},
		[]catalog.BlackCard{{ID: 20, Text: "_?", Pick: 1, PackID: 2}},
	)
	h := hub.NewHub(context.Background(), store, zap.NewNop())
	return SetupRoutes(h, store, zap.NewNop())
}

func TestCreateLobby_ReturnsJoinCode(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/lobbies", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Code, 6)
}

func TestListDecks_OfficialFirst(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/decks", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var decks []catalog.Deck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decks))
	require.Len(t, decks, 2)
	assert.Equal(t, "Base Set", decks[0].Name)
}

func TestGetDeck_IncludesCards(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/decks/2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var deck catalog.Deck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deck))
	assert.Len(t, deck.WhiteCards, 1)
	assert.Len(t, deck.BlackCards, 1)
}

func TestGetDeck_UnknownIs404(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/decks/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/decks/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWS_MissingCodeIsBadRequest(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
