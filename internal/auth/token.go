package auth

import (
	"crypto/rsa"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/model"
)

// Claims is the token payload. Subject carries the user id as a decimal
// string per JWT convention. Verified is false on tokens issued before the
// two-factor code exchange completes; such tokens cannot access the API.
type Claims struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Verified bool       `json:"verified"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access tokens.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
}

// NewTokenService parses the PEM key material from config. The private key
// is optional: a verifier-only service (the worker) can run with just the
// public key, but Issue will fail.
func NewTokenService(cfg config.AuthConfig) (*TokenService, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
	if err != nil {
		return nil, errors.Wrap(err, "parsing public key")
	}

	svc := &TokenService{
		publicKey: publicKey,
		ttl:       time.Duration(cfg.AccessTokenMinutes) * time.Minute,
	}

	if cfg.PrivateKeyPEM != "" {
		privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, errors.Wrap(err, "parsing private key")
		}
		svc.privateKey = privateKey
	}

	return svc, nil
}

// NewTokenServiceFromKeys builds a service from already-parsed keys.
func NewTokenServiceFromKeys(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, ttl time.Duration) *TokenService {
	return &TokenService{privateKey: privateKey, publicKey: publicKey, ttl: ttl}
}

// Issue signs a fully verified access token for the given user.
func (s *TokenService) Issue(user model.User) (string, error) {
	return s.issue(user, true)
}

// IssuePending signs a token that still awaits two-factor verification.
// The auth middleware refuses it; only the code exchange accepts it.
func (s *TokenService) IssuePending(user model.User) (string, error) {
	return s.issue(user, false)
}

func (s *TokenService) issue(user model.User, verified bool) (string, error) {
	if s.privateKey == nil {
		return "", errors.New("token service has no signing key")
	}

	now := time.Now().UTC()
	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Verified: verified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Caller extracts the caller identity from verified claims.
func (c *Claims) Caller() (Caller, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Caller{}, errors.Wrap(err, "parsing subject")
	}
	return Caller{ID: id, Role: c.Role}, nil
}
