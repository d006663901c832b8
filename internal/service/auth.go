package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// twoFactorStore is the slice of the Telegram login store the service
// needs. Nil when two-factor login is disabled.
type twoFactorStore interface {
	SaveLogin(ctx context.Context, loginID, token string) error
	TokenForCode(ctx context.Context, code string) (string, error)
}

// AuthService authenticates users against stored credentials and issues
// access tokens.
type AuthService struct {
	server    *server.Server
	users     *repository.UsersRepository
	twoFactor twoFactorStore
}

func NewAuthService(s *server.Server, users *repository.UsersRepository, twoFactor twoFactorStore) *AuthService {
	return &AuthService{
		server:    s,
		users:     users,
		twoFactor: twoFactor,
	}
}

// Login verifies the credentials and returns a signed access token.
// Unknown usernames and wrong passwords get the same response so the
// endpoint does not leak which usernames exist.
//
// With two-factor login enabled the token comes back unverified alongside
// a bot deep link; VerifyCode completes the login.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (model.AuthToken, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return model.AuthToken{}, errs.NewUnauthorizedError("Invalid username or password", true)
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return model.AuthToken{}, errs.NewUnauthorizedError("Invalid username or password", true)
	}

	if s.server.Config.Auth.TwoFactorEnabled && s.twoFactor != nil {
		return s.pendingLogin(ctx, user)
	}

	token, err := s.server.TokenService.Issue(user)
	if err != nil {
		return model.AuthToken{}, err
	}

	s.touchLastLogin(ctx, user.ID)

	return s.authToken(token, true, ""), nil
}

// pendingLogin issues an unverified token and parks it in the login store
// under a one-time id the bot deep link carries.
func (s *AuthService) pendingLogin(ctx context.Context, user model.User) (model.AuthToken, error) {
	token, err := s.server.TokenService.IssuePending(user)
	if err != nil {
		return model.AuthToken{}, err
	}

	loginID := uuid.NewString()
	if err := s.twoFactor.SaveLogin(ctx, loginID, token); err != nil {
		return model.AuthToken{}, err
	}

	link := "https://t.me/" + s.server.Config.Auth.BotName + "?start=" + loginID
	return s.authToken(token, false, link), nil
}

// VerifyCode exchanges a bot-issued code for a verified access token.
func (s *AuthService) VerifyCode(ctx context.Context, req *model.VerifyCodeRequest) (model.AuthToken, error) {
	if s.twoFactor == nil {
		return model.AuthToken{}, errs.NewBadRequestError("Two-factor login is not enabled", true, nil, nil, nil)
	}

	pending, err := s.twoFactor.TokenForCode(ctx, req.Code)
	if err != nil {
		return model.AuthToken{}, err
	}
	if pending == "" {
		return model.AuthToken{}, errs.NewUnauthorizedError("Invalid or expired verification code", true)
	}

	claims, err := s.server.TokenService.Verify(pending)
	if err != nil {
		return model.AuthToken{}, errs.NewUnauthorizedError("Invalid or expired verification code", true)
	}

	user, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		return model.AuthToken{}, errs.NewUnauthorizedError("Invalid or expired verification code", true)
	}

	token, err := s.server.TokenService.Issue(user)
	if err != nil {
		return model.AuthToken{}, err
	}

	s.touchLastLogin(ctx, user.ID)

	return s.authToken(token, true, ""), nil
}

func (s *AuthService) touchLastLogin(ctx context.Context, userID int64) {
	if err := s.users.TouchLastLogin(ctx, userID); err != nil {
		s.server.Logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to update last login timestamp")
	}
}

func (s *AuthService) authToken(token string, verified bool, botLink string) model.AuthToken {
	return model.AuthToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.server.Config.Auth.AccessTokenMinutes) * 60,
		Verified:    verified,
		BotLink:     botLink,
	}
}
