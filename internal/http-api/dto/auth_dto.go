package dto

// Data Transfer Objects for authentication requests and responses

// AdminLoginRequest: payload for administrator login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MemberLoginRequest: payload for member login
type MemberLoginRequest struct {
	MemberCode string `json:"memberCode" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// TokenResponse: response payload after successful authentication
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"` // seconds
}
