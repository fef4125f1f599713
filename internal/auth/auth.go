// Package auth issues and checks the short-lived bearer tokens of the API.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenType = "bearer"

var (
	ErrInvalidCredentials = errors.New("invalid client credentials")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type ctxKey struct{}

// Token is the result of a successful credential exchange.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// Issuer signs tokens for the configured client and verifies them.
type Issuer struct {
	cfg Config
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg, now: time.Now}
}

// Issue exchanges client credentials for a signed token.
func (i *Issuer) Issue(clientID, clientSecret string) (*Token, error) {
	idOK := subtle.ConstantTimeCompare([]byte(clientID), []byte(i.cfg.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(i.cfg.ClientSecret)) == 1
	if !idOK || !secretOK {
		return nil, ErrInvalidCredentials
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   clientID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresIn:   int64(i.cfg.TokenTTL.Seconds()),
	}, nil
}

// Verify parses a token and returns its subject.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(i.cfg.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.Subject, nil
}

// VerifyToken checks the Authorization header of r.
func (i *Issuer) VerifyToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return i.Verify(strings.TrimSpace(token))
}

// ClientID returns the authenticated client stored by Middleware.
func ClientID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}

// WithClientID stores the authenticated client in ctx.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, clientID)
}
