package service

import (
	"fmt"
	"time"

	"librarymgmt/internal/config"
	"librarymgmt/internal/http-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by access tokens. Subject is the admin email or the member code.
type Claims struct {
	Role models.Authority `json:"role"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
		now:    time.Now,
	}
}

// Issue signs an access token for subject with the given role.
func (m *TokenManager) Issue(subject string, role models.Authority) (*TokenPair, error) {
	now := m.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	return &TokenPair{AccessToken: signed, ExpiresIn: int64(m.ttl.Seconds())}, nil
}

// Validate parses and verifies a token, rejecting anything not signed with HS256.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || (claims.Role != models.RoleAdmin && claims.Role != models.RoleMember) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenPair is what a successful login hands back.
type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}
