package auth

import "github.com/IGN03/TMC/internal/accounts"

// RegisterRequest is the payload for account creation. Access level is never
// accepted from the client; new accounts always start as customers.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the expired access token and its refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPair is the issued access/refresh credential set.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse combines the account view with freshly issued tokens.
type AuthResponse struct {
	Account *accounts.AccountDTO `json:"account"`
	Tokens  TokenPair            `json:"tokens"`
}
