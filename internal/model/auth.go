package model

// LoginRequest is the credential payload for the token endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *LoginRequest) Validate() error { return validate.Struct(r) }

// AuthToken is the response of a successful login. When two-factor login
// is enabled the token comes back unverified together with a bot deep link;
// the verify-code endpoint exchanges the Telegram code for a verified token.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Verified    bool   `json:"verified"`
	BotLink     string `json:"bot_link,omitempty"`
}

// VerifyCodeRequest carries the six-digit code handed out by the bot.
type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

func (r *VerifyCodeRequest) Validate() error { return validate.Struct(r) }
