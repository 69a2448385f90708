package game

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *Service) {
	t.Helper()
	svc, _ := newTestService(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Get("/games", h.ListGames)
	r.Get("/api/games/{gameId}", h.StartGame)
	r.Post("/api/games/{gameId}", h.CompleteGame)
	return r, svc
}

func TestHandleStartGame(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/games/password_cracker", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "password_cracker", resp["game"])
	assert.Equal(t, false, resp["completed"])
	assert.Equal(t, float64(0), resp["score"])
	assert.Contains(t, resp, "challenge")
	assert.NotContains(t, resp, "network")
}

func TestHandleStartGameNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/games/nonexistent", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Game not found", resp["error"])
}

func TestHandleCompleteGame(t *testing.T) {
	r, svc := newTestRouter(t)
	u := svc.store.RegisterAnonymousUser()

	body := `{"score": 50, "session_id": "` + u.ID + `"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/games/ctf", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp CompleteResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 50, resp.Score)

	got, _ := svc.store.User(u.ID)
	assert.Equal(t, 50, got.Points)
}

func TestHandleCompleteGameRejectsBadBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/games/ctf", strings.NewReader(`{"score": "lots"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/games/ctf", strings.NewReader(`{"score": 12.5}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompleteGameUnknownGame(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/games/solitaire", strings.NewReader(`{"score": 1}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListGames(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp CatalogResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 5, resp.TotalGames)
	assert.Equal(t, "password_cracker", resp.Games[0].ID)
	assert.Equal(t, 50, resp.Games[0].Points)
}
