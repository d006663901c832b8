// Package telegram implements the optional two-factor login flow.
//
// Login hands the client a pending token and a bot deep link carrying a
// one-time login id. The user opens the link, the bot resolves the id to
// the pending token and replies with a short numeric code, and the
// verify-code endpoint exchanges that code for a verified token. Both
// sides of the exchange live in Redis with short TTLs.
package telegram

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	loginKeyPrefix = "2fa:login:"
	codeKeyPrefix  = "2fa:code:"

	loginTTL = 10 * time.Minute
	codeTTL  = 5 * time.Minute
)

// LoginStore keeps the pending-login and code mappings in Redis.
type LoginStore struct {
	rdb *redis.Client
}

func NewLoginStore(rdb *redis.Client) *LoginStore {
	return &LoginStore{rdb: rdb}
}

// SaveLogin maps a one-time login id to the pending token.
func (s *LoginStore) SaveLogin(ctx context.Context, loginID, token string) error {
	if err := s.rdb.Set(ctx, loginKeyPrefix+loginID, token, loginTTL).Err(); err != nil {
		return errors.Wrap(err, "saving pending login")
	}
	return nil
}

// TokenForLogin resolves a login id to its pending token, consuming the id
// so the deep link works once. A miss returns an empty token and no error.
func (s *LoginStore) TokenForLogin(ctx context.Context, loginID string) (string, error) {
	token, err := s.rdb.GetDel(ctx, loginKeyPrefix+loginID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "looking up pending login")
	}
	return token, nil
}

// SaveCode maps a verification code to the pending token.
func (s *LoginStore) SaveCode(ctx context.Context, code, token string) error {
	if err := s.rdb.Set(ctx, codeKeyPrefix+code, token, codeTTL).Err(); err != nil {
		return errors.Wrap(err, "saving verification code")
	}
	return nil
}

// TokenForCode resolves a verification code, consuming it. A miss returns
// an empty token and no error.
func (s *LoginStore) TokenForCode(ctx context.Context, code string) (string, error) {
	token, err := s.rdb.GetDel(ctx, codeKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "looking up verification code")
	}
	return token, nil
}

// NewCode generates a six-digit verification code.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "generating verification code")
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
