package game

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	myMiddleware "github.com/umenyi-bryan/Hackarena/internal/middleware"
	"github.com/umenyi-bryan/Hackarena/internal/response"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return &Handler{service: s, logger: logger}
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Catalog())
}

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameId")

	sess, err := h.service.StartGame(gameID)
	if errors.Is(err, ErrGameNotFound) {
		response.Error(w, http.StatusNotFound, "Game not found")
		return
	}
	if err != nil {
		panic(err)
	}

	h.logger.Debug("game started", "game", gameID, "session", sess.ID)
	response.JSON(w, http.StatusOK, sess)
}

func (h *Handler) CompleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameId")
	if !h.service.Exists(gameID) {
		response.Error(w, http.StatusNotFound, "Game not found")
		return
	}

	var req CompleteRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	id := req.SessionID
	if id == "" {
		id, _, _ = myMiddleware.SessionFrom(r.Context())
	}

	res := h.service.CompleteGame(id, req.Score)
	h.logger.Info("game completed", "game", gameID, "score", req.Score, "has_session", id != "")
	response.JSON(w, http.StatusOK, res)
}
