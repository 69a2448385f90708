package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/umenyi-bryan/Hackarena/internal/chat"
	"github.com/umenyi-bryan/Hackarena/internal/game"
	myMiddleware "github.com/umenyi-bryan/Hackarena/internal/middleware"
	"github.com/umenyi-bryan/Hackarena/internal/response"
	"github.com/umenyi-bryan/Hackarena/internal/site"
	"github.com/umenyi-bryan/Hackarena/internal/terminal"
	"github.com/umenyi-bryan/Hackarena/internal/user"
)

// Handlers groups every feature handler the router dispatches to.
type Handlers struct {
	Site     *site.Handler
	User     *user.Handler
	Game     *game.Handler
	Terminal *terminal.Handler
	Chat     *chat.Handler
	Session  *myMiddleware.SessionMiddleware
}

func NewRouter(h Handlers, logger *slog.Logger, accessLog bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if accessLog {
		r.Use(middleware.Logger)
	}
	r.Use(myMiddleware.Recover(logger))
	r.Use(cors.AllowAll().Handler)

	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.MethodNotAllowed)

	// Pages
	r.Get("/", h.Site.Index)
	r.Get("/games", h.Game.ListGames)
	r.Get("/terminal", h.Terminal.Page)
	r.Get("/chat", h.Chat.Page)
	r.Get("/leaderboard", h.Site.LeaderboardPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Site.Health)
		r.Get("/stats", h.Site.Stats)
		r.Get("/leaderboard", h.Site.Leaderboard)
		r.Post("/quick-login", h.User.QuickLogin)
		r.Post("/terminal/execute", h.Terminal.Execute)

		// A session token is optional here; when present it identifies the player.
		r.Group(func(r chi.Router) {
			r.Use(h.Session.Handle)
			r.Get("/games/{gameId}", h.Game.StartGame)
			r.Post("/games/{gameId}", h.Game.CompleteGame)
			r.Post("/chat/send", h.Chat.Send)
			r.Get("/chat/messages", h.Chat.Messages)
		})
	})

	r.With(h.Session.Handle).Get("/ws/chat", h.Chat.ServeWs)

	return r
}
