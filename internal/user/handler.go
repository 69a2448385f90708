package user

import (
	"log/slog"
	"net/http"

	"github.com/umenyi-bryan/Hackarena/internal/response"
)

type Handler struct {
	Service *Service
	logger  *slog.Logger
}

func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return &Handler{Service: s, logger: logger}
}

func (h *Handler) QuickLogin(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.QuickLogin()
	if err != nil {
		h.logger.Error("quick login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create session")
		return
	}

	h.logger.Info("anonymous login", "username", res.Username)
	response.JSON(w, http.StatusOK, res)
}
