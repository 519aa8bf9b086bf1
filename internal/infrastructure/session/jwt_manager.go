package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type jwtSessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	store  accounts.RevocationStore
	logger logger.Logger
	now    func() time.Time
}

// NewJWTSessionManager creates a SessionManager signing HS256 tokens with settings.JWTSecret
func NewJWTSessionManager(settings *config.AuthSettings, store accounts.RevocationStore, logger logger.Logger) (accounts.SessionManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &jwtSessionManager{
		secret: []byte(settings.JWTSecret),
		issuer: settings.Issuer,
		ttl:    settings.TokenTTL,
		store:  store,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (m *jwtSessionManager) Issue(user *accounts.User) (*accounts.Session, error) {
	now := m.now()
	tokenID := uuid.NewString()
	expiresAt := now.Add(m.ttl)

	claims := tokenClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   user.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	m.logger.Debug("Issued session", "user_id", user.ID, "token_id", tokenID)
	return &accounts.Session{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

func (m *jwtSessionManager) Parse(ctx context.Context, token string) (*accounts.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", accounts.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, accounts.ErrInvalidToken
	}

	revoked, err := m.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, accounts.ErrRevokedToken
	}

	return &accounts.Claims{
		UserID:    claims.Subject,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (m *jwtSessionManager) Revoke(ctx context.Context, claims *accounts.Claims) error {
	if claims == nil || claims.TokenID == "" {
		return errors.New("no token to revoke")
	}
	if err := m.store.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	m.logger.Info("Revoked session", "user_id", claims.UserID, "token_id", claims.TokenID)
	return nil
}
