package dto

// LoginRequest represents the credentials submitted to POST /login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token together with the account
// details the frontend shows after login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// IdentityResponse echoes the identity claims of the authenticated caller
type IdentityResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
