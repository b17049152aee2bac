package dto

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "Bearer"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
}
