package server

import (
	"log/slog"

	"github.com/umenyi-bryan/Hackarena/internal/chat"
	"github.com/umenyi-bryan/Hackarena/internal/game"
	myMiddleware "github.com/umenyi-bryan/Hackarena/internal/middleware"
	"github.com/umenyi-bryan/Hackarena/internal/random"
	"github.com/umenyi-bryan/Hackarena/internal/site"
	"github.com/umenyi-bryan/Hackarena/internal/store"
	"github.com/umenyi-bryan/Hackarena/internal/terminal"
	"github.com/umenyi-bryan/Hackarena/internal/user"
)

// Deps are the shared pieces every feature is built from.
type Deps struct {
	Store       *store.Store
	Rand        random.Generator
	Secret      string
	Hub         *chat.Hub
	Broadcaster chat.Broadcaster
	Logger      *slog.Logger
}

// NewHandlers builds every feature service and handler over one store.
func NewHandlers(d Deps) Handlers {
	userService := user.NewService(d.Store, d.Secret)
	chatService := chat.NewService(d.Store, d.Rand, d.Broadcaster, d.Logger)

	return Handlers{
		Site:     site.NewHandler(d.Store, d.Logger),
		User:     user.NewHandler(userService, d.Logger),
		Game:     game.NewHandler(game.NewService(d.Store, d.Rand), d.Logger),
		Terminal: terminal.NewHandler(terminal.New(), d.Logger),
		Chat:     chat.NewHandler(chatService, d.Hub, d.Logger),
		Session:  myMiddleware.NewSessionMiddleware(userService, d.Logger),
	}
}
