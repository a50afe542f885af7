package dto

// RegisterRequest is the JSON body for POST /users/.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenRequest is the form-encoded body for POST /token.
// The credential field is named "username" per the OAuth2 password flow,
// but it carries the account email.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is returned by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the account view. It never carries the password hash.
type UserResponse struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	IsActive bool            `json:"is_active"`
	Entries  []EntryResponse `json:"entries"`
}
