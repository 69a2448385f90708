package game

import "github.com/umenyi-bryan/Hackarena/internal/store"

// Session is an unpersisted game run handed back to the caller.
type Session struct {
	ID        string     `json:"id"`
	Game      string     `json:"game"`
	Started   float64    `json:"started"`
	Completed bool       `json:"completed"`
	Score     int        `json:"score"`
	Challenge *Challenge `json:"challenge,omitempty"`
	Network   string     `json:"network,omitempty"`
}

// Challenge is the password_cracker payload.
type Challenge struct {
	Hash string `json:"hash"`
	Hint string `json:"hint"`
}

type CompleteRequest struct {
	Score     int    `json:"score"`
	SessionID string `json:"session_id"`
}

type CompleteResponse struct {
	Status  string `json:"status"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

type CatalogResponse struct {
	Status     string       `json:"status"`
	Games      []store.Game `json:"games"`
	TotalGames int          `json:"total_games"`
}
