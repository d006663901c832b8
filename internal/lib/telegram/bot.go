package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/config"
)

// loginStore is the slice of LoginStore the bot needs.
type loginStore interface {
	TokenForLogin(ctx context.Context, loginID string) (string, error)
	SaveCode(ctx context.Context, code, token string) error
}

// Bot answers /start deep links with verification codes. It runs in the
// worker process alongside the queue handlers.
type Bot struct {
	api    *tgbotapi.BotAPI
	store  loginStore
	tokens *auth.TokenService
	logger *zerolog.Logger
}

func NewBot(cfg config.AuthConfig, store *LoginStore, tokens *auth.TokenService, logger *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to telegram")
	}
	return &Bot{api: api, store: store, tokens: tokens, logger: logger}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info().Str("bot", b.api.Self.UserName).Msg("telegram bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		reply := b.handleMessage(ctx, update.Message.Text)
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Warn().Err(err).Msg("failed to send telegram reply")
		}
	}

	b.logger.Info().Msg("telegram bot stopped")
}

// handleMessage turns an incoming message into a reply. Only the
// "/start <login id>" deep-link payload does anything.
func (b *Bot) handleMessage(ctx context.Context, text string) string {
	loginID, ok := strings.CutPrefix(strings.TrimSpace(text), "/start ")
	if !ok || loginID == "" {
		return "Open the login link from the app to get your verification code."
	}
	return b.handleStart(ctx, loginID)
}

func (b *Bot) handleStart(ctx context.Context, loginID string) string {
	token, err := b.store.TokenForLogin(ctx, loginID)
	if err != nil {
		b.logger.Error().Err(err).Msg("pending login lookup failed")
		return "Something went wrong, please log in again."
	}
	if token == "" {
		return "This login link is invalid or has expired. Please log in again."
	}

	claims, err := b.tokens.Verify(token)
	if err != nil {
		b.logger.Warn().Err(err).Msg("pending token no longer valid")
		return "This login has expired. Please log in again."
	}
	if claims.Verified {
		return "This login is already verified."
	}

	code, err := NewCode()
	if err != nil {
		b.logger.Error().Err(err).Msg("code generation failed")
		return "Something went wrong, please log in again."
	}
	if err := b.store.SaveCode(ctx, code, token); err != nil {
		b.logger.Error().Err(err).Msg("saving verification code failed")
		return "Something went wrong, please log in again."
	}

	return "Your verification code: " + code
}
