package chat

import "github.com/umenyi-bryan/Hackarena/internal/store"

const (
	DefaultRoom  = "#general"
	DefaultLimit = 50
	historySize  = 50
	onlineShown  = 20
)

// Rooms is the fixed room list advertised by the chat page. Messages may still
// be sent to any room name.
var Rooms = []string{"#general", "#hacking", "#ctf", "#help", "#announcements"}

// SendRequest is the body of POST /api/chat/send.
type SendRequest struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	Room      string `json:"room"`
	Encrypted bool   `json:"encrypted"`
}

type SendResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}

type MessagesResponse struct {
	Room     string          `json:"room"`
	Messages []store.Message `json:"messages"`
	Count    int             `json:"count"`
}

type OverviewResponse struct {
	Chat        string   `json:"chat"`
	Rooms       []string `json:"rooms"`
	Online      []string `json:"online"`
	TotalOnline int      `json:"total_online"`
}

// ---------------------------------------------
// Websocket frames
// ---------------------------------------------

// Frame is what the server pushes down a websocket.
type Frame struct {
	Type     string          `json:"type"` // "history", "message" or "error"
	Room     string          `json:"room,omitempty"`
	Messages []store.Message `json:"messages,omitempty"`
	Message  *store.Message  `json:"message,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// WSMessage is what a websocket client sends. Username and room come from
// the connection.
type WSMessage struct {
	Message   string `json:"message"`
	Encrypted bool   `json:"encrypted"`
}
