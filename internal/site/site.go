// Package site serves the landing page and the read-only status endpoints.
package site

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/umenyi-bryan/Hackarena/internal/response"
	"github.com/umenyi-bryan/Hackarena/internal/store"
)

const (
	ServiceName = "HackArena"
	Version     = "3.0.0"

	defaultLeaderboardLimit = 100
	previewSize             = 5

	// Added to the real counts on the stats endpoint and landing page.
	playerPadding = 1000
	onlinePadding = 50

	// Completed game sessions are not recorded, so stats never count any.
	playedGames = 0
)

type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Version   string  `json:"version"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

type StatsResponse struct {
	TotalPlayers  int    `json:"total_players"`
	OnlineNow     int    `json:"online_now"`
	TotalGames    int    `json:"total_games"`
	TotalMessages int    `json:"total_messages"`
	Uptime        string `json:"uptime"`
	ServerLoad    string `json:"server_load"`
}

type LeaderboardPage struct {
	Leaderboard []store.LeaderboardEntry `json:"leaderboard"`
	Updated     float64                  `json:"updated"`
}

type Handler struct {
	store   *store.Store
	logger  *slog.Logger
	started time.Time
	now     func() time.Time
}

func NewHandler(s *store.Store, logger *slog.Logger) *Handler {
	return &Handler{store: s, logger: logger, started: time.Now(), now: time.Now}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	data := map[string]any{
		"Service":     ServiceName,
		"Leaderboard": h.store.Leaderboard(previewSize),
		"Players":     h.store.Counts().Users + playerPadding,
	}
	if err := pages.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("render landing page", "error", err)
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	uptime := now.Sub(h.started).Seconds()
	response.JSON(w, http.StatusOK, HealthResponse{
		Status:    "online",
		Service:   ServiceName,
		Version:   Version,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    math.Round(uptime*100) / 100,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	c := h.store.Counts()
	response.JSON(w, http.StatusOK, StatsResponse{
		TotalPlayers:  c.Users + playerPadding,
		OnlineNow:     c.Online + onlinePadding,
		TotalGames:    playedGames,
		TotalMessages: c.Messages,
		Uptime:        "99.9%",
		ServerLoad:    "optimal",
	})
}

// Leaderboard serves GET /api/leaderboard?limit=N. A missing or unparsable
// limit means the default.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = n
	}
	response.JSON(w, http.StatusOK, h.store.Leaderboard(limit))
}

func (h *Handler) LeaderboardPage(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, LeaderboardPage{
		Leaderboard: h.store.Leaderboard(math.MaxInt),
		Updated:     float64(h.now().UnixNano()) / 1e9,
	})
}
