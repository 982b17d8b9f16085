package utils

import (
	"errors"
	"fmt"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Default token lifetimes
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
	DefaultResetTTL   = 15 * time.Minute
)

// TokenManager signs and checks HS256 tokens. Every token carries its purpose so a
// refresh or reset token cannot be used as an access token.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		resetTTL:   DefaultResetTTL,
		now:        time.Now,
	}
}

func (m *TokenManager) ttl(purpose string) time.Duration {
	switch purpose {
	case entities.TokenRefresh:
		return m.refreshTTL
	case entities.TokenReset:
		return m.resetTTL
	default:
		return m.accessTTL
	}
}

// Generate issues a token of purpose for account.
func (m *TokenManager) Generate(account entities.Account, purpose string) (string, error) {
	now := m.now()
	claims := &entities.Claims{
		UserID:   account.ID,
		Username: account.Username,
		Role:     account.Role,
		Purpose:  purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(account.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl(purpose))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// GeneratePair issues an access and a refresh token.
func (m *TokenManager) GeneratePair(account entities.Account) (entities.TokenPair, error) {
	access, err := m.Generate(account, entities.TokenAccess)
	if err != nil {
		return entities.TokenPair{}, err
	}
	refresh, err := m.Generate(account, entities.TokenRefresh)
	if err != nil {
		return entities.TokenPair{}, err
	}
	return entities.TokenPair{AccessToken: access, RefreshToken: refresh, ID: account.ID}, nil
}

// Parse verifies signature, expiry and purpose.
func (m *TokenManager) Parse(tokenString, purpose string) (*entities.Claims, error) {
	claims := &entities.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
