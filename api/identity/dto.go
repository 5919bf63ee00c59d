package identity

// AuthRequest is the body of register and login requests.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse describes a signed-in player.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Finishes int    `json:"finishes"`
	Token    string `json:"token,omitempty"`
}
