package myMiddleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

const (
	SessionKey  contextKey = "session_id"
	UsernameKey contextKey = "username"
)

// TokenValidator decouples the middleware from the user package.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, string, error)
}

type SessionMiddleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

func NewSessionMiddleware(v TokenValidator, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{validator: v, logger: logger}
}

// Handle attaches the caller's session to the request context when a token is
// presented and valid. Anything else passes through as anonymous.
func (sm *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := ""

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		// Websocket clients can't set headers from the browser.
		if tokenString == "" {
			tokenString = r.URL.Query().Get("token")
		}

		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, username, err := sm.validator.ValidateToken(tokenString)
		if err != nil {
			// Tokens signed by an earlier process are expected after a restart.
			sm.logger.Debug("ignoring session token", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sessionID)
		ctx = context.WithValue(ctx, UsernameKey, username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFrom returns the session id and username put on ctx by Handle.
func SessionFrom(ctx context.Context) (string, string, bool) {
	sessionID, ok := ctx.Value(SessionKey).(string)
	if !ok {
		return "", "", false
	}
	username, _ := ctx.Value(UsernameKey).(string)
	return sessionID, username, true
}
