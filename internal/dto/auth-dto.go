package dto

type LoginRequest struct {
	EmailID  string `json:"email_id" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the verified claim set placed on the request context
// by the auth middleware.
type AuthResponse struct {
	UserID uint    `json:"user_id"`
	Email  string  `json:"email"`
	Jti    string  `json:"jti"`
	Expiry float64 `json:"expiry"`
	Iat    float64 `json:"iat"`
}
