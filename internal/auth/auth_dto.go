package auth

import "go-yourtask/internal/session"

type LoginRequest struct {
	Username string `json:"username" binding:"max=100"`
}

type LoginResponse struct {
	User  session.Session `json:"user"`
	Token string          `json:"token"`
}

// LoginResult adalah hasil login di level service.
type LoginResult struct {
	SessionID string
	Token     string
	Session   session.Session
}
