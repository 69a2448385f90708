package terminal

import (
	"log/slog"
	"net/http"

	"github.com/umenyi-bryan/Hackarena/internal/response"
)

type ExecuteRequest struct {
	Command string `json:"command"`
}

type PageResponse struct {
	Terminal string    `json:"terminal"`
	Welcome  string    `json:"welcome"`
	Commands []Command `json:"commands"`
}

type Handler struct {
	term   *Terminal
	logger *slog.Logger
}

func NewHandler(t *Terminal, logger *slog.Logger) *Handler {
	return &Handler{term: t, logger: logger}
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, PageResponse{
		Terminal: "active",
		Welcome:  "Welcome to HackArena Terminal v3.0",
		Commands: h.term.Commands(),
	})
}

func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.term.Execute(req.Command)
	h.logger.Debug("terminal command", "command", res.Command)
	response.JSON(w, http.StatusOK, res)
}
