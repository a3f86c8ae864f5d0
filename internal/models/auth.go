package models

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Token is the opaque bearer credential issued on successful auth.
type Token struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}

// LoginStep1Response either carries a token directly (2FA disabled for the
// account) or asks for the emailed verification code.
type LoginStep1Response struct {
	Message     string `json:"message"`
	Requires2FA bool   `json:"requires_2fa"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
