package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/domain/dto"
	"github.com/acaipro/storefront-service/internal/logger"
)

var (
	// ErrInvalidCredentials is returned when the admin password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthNotConfigured is returned when no admin password hash is set.
	ErrAuthNotConfigured = errors.New("admin authentication not configured")
)

// adminSubject is the identity carried by admin session tokens. The store
// has a single administrative credential.
const adminSubject = "admin"

// AdminClaimsWithJWT extends dto.AdminClaims with JWT RegisteredClaims for
// token generation and parsing.
type AdminClaimsWithJWT struct {
	dto.AdminClaims
	jwt.RegisteredClaims
}

// AdminAuthService provides admin authentication operations.
type AdminAuthService interface {
	Login(ctx context.Context, password string) (token string, expiresIn int64, err error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AdminClaims, error)
	Logout(ctx context.Context, tokenString string) error
}

// AdminAuthServiceImpl implements AdminAuthService. The password is checked
// against a bcrypt hash from configuration; issued tokens can be revoked
// in-process until they expire.
type AdminAuthServiceImpl struct {
	passwordHash []byte
	secretKey    []byte
	tokenTTL     time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // token id -> expiry, for cleanup
}

// NewAdminAuthService creates a new admin auth service from configuration.
func NewAdminAuthService(authConfig config.AuthConfig) AdminAuthService {
	return &AdminAuthServiceImpl{
		passwordHash: []byte(authConfig.AdminPasswordHash),
		secretKey:    []byte(authConfig.JWTSecretKey),
		tokenTTL:     authConfig.AccessTokenTTL,
		revoked:      make(map[string]time.Time),
	}
}

// Login verifies the admin password and issues a session token.
func (s *AdminAuthServiceImpl) Login(_ context.Context, password string) (string, int64, error) {
	if len(s.passwordHash) == 0 {
		return "", 0, ErrAuthNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		log := logger.For("auth")
		log.Warn().Msg("Admin login failed")
		return "", 0, ErrInvalidCredentials
	}

	now := time.Now()
	claims := AdminClaimsWithJWT{
		AdminClaims: dto.AdminClaims{Subject: adminSubject},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}

	return signed, int64(s.tokenTTL.Seconds()), nil
}

// ValidateToken parses and verifies a session token.
func (s *AdminAuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.AdminClaims, error) {
	claims := &AdminClaimsWithJWT{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.isRevoked(claims.ID) {
		return nil, ErrInvalidToken
	}

	return &claims.AdminClaims, nil
}

// Logout revokes a token until its natural expiry.
func (s *AdminAuthServiceImpl) Logout(ctx context.Context, tokenString string) error {
	claims := &AdminClaimsWithJWT{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	expiry := time.Now().Add(s.tokenTTL)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[claims.ID] = expiry
	s.pruneRevokedLocked()
	return nil
}

// isRevoked reports whether a token id has been revoked.
func (s *AdminAuthServiceImpl) isRevoked(tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[tokenID]
	return ok
}

// pruneRevokedLocked drops revocations for tokens that have expired anyway.
// Caller must hold s.mu.
func (s *AdminAuthServiceImpl) pruneRevokedLocked() {
	now := time.Now()
	for id, expiry := range s.revoked {
		if now.After(expiry) {
			delete(s.revoked, id)
		}
	}
}
