package store

// User is a player record, keyed by session id for anonymous players or a
// fixed name for the seeded ones.
type User struct {
	ID       string  `json:"-"`
	Username string  `json:"username"`
	Points   int     `json:"points"`
	Rank     string  `json:"rank"`
	Level    int     `json:"level"`
	Created  float64 `json:"created,omitempty"`
}

// Game is a catalog entry. The catalog is fixed at startup.
type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Points      int    `json:"points"`
}

// LeaderboardEntry is a row of the hand-seeded ranking table. It is not
// derived from User points.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
	Rank     string `json:"rank"`
}

// Message is an immutable chat message living in one room's log.
type Message struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Room      string `json:"room"`
	Timestamp string `json:"timestamp"`
	Encrypted bool   `json:"encrypted"`
}

// Counts is a snapshot of table sizes used by the stats endpoint.
type Counts struct {
	Users    int
	Online   int
	Games    int
	Messages int
}
