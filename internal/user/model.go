package user

// QuickLoginResponse is returned by POST /api/quick-login.
type QuickLoginResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
	Points    int    `json:"points"`
	Rank      string `json:"rank"`
	Token     string `json:"token"`
}
