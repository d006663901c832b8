package telegram

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/model"
)

type fakeStore struct {
	logins map[string]string
	codes  map[string]string
}

func (s *fakeStore) TokenForLogin(_ context.Context, loginID string) (string, error) {
	return s.logins[loginID], nil
}

func (s *fakeStore) SaveCode(_ context.Context, code, token string) error {
	if s.codes == nil {
		s.codes = map[string]string{}
	}
	s.codes[code] = token
	return nil
}

func newTestBot(t *testing.T, store *fakeStore) (*Bot, *auth.TokenService) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}
	tokens := auth.NewTokenServiceFromKeys(key, &key.PublicKey, time.Hour)
	logger := zerolog.Nop()
	return &Bot{store: store, tokens: tokens, logger: &logger}, tokens
}

var codeRe = regexp.MustCompile(`\b\d{6}\b`)

func TestHandleMessageIssuesCode(t *testing.T) {
	store := &fakeStore{logins: map[string]string{}}
	bot, tokens := newTestBot(t, store)

	pending, err := tokens.IssuePending(model.User{ID: 7, Username: "anna", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("IssuePending: %v", err)
	}
	store.logins["login-1"] = pending

	reply := bot.handleMessage(context.Background(), "/start login-1")

	code := codeRe.FindString(reply)
	if code == "" {
		t.Fatalf("reply = %q, want a six-digit code", reply)
	}
	if store.codes[code] != pending {
		t.Errorf("stored token for code %q = %q, want the pending token", code, store.codes[code])
	}
}

func TestHandleMessageRejects(t *testing.T) {
	store := &fakeStore{logins: map[string]string{}}
	bot, tokens := newTestBot(t, store)

	verified, err := tokens.Issue(model.User{ID: 7, Username: "anna", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	store.logins["already-done"] = verified

	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown login id", "/start nope", "invalid or has expired"},
		{"already verified token", "/start already-done", "already verified"},
		{"plain message", "hello", "Open the login link"},
		{"bare start", "/start", "Open the login link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := bot.handleMessage(context.Background(), tt.text)
			if !strings.Contains(reply, tt.want) {
				t.Errorf("reply = %q, want it to contain %q", reply, tt.want)
			}
			if codeRe.MatchString(reply) {
				t.Errorf("reply = %q, must not contain a code", reply)
			}
		})
	}
}

func TestNewCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("NewCode() error = %v", err)
		}
		if !codeRe.MatchString(code) || len(code) != 6 {
			t.Fatalf("NewCode() = %q, want six digits", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("NewCode() returned the same code every time")
	}
}
