package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"filevault/internal/pkg/hashutil"
	"filevault/internal/repository"
	"filevault/internal/session"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "auth_"

// Service owns the session-token lifecycle: it checks credentials against
// stored users and keeps token -> userID mappings in an expiring store.
type Service struct {
	users    UserReader
	sessions session.Store
	ttl      time.Duration
}

func NewService(users UserReader, sessions session.Store, ttl time.Duration) *Service {
	return &Service{users: users, sessions: sessions, ttl: ttl}
}

// Login checks Basic-style credentials (base64 of "email:password") and, on
// match, mints a random token mapped to the user for the session TTL. Every
// malformed or non-matching input fails the same way, ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, encodedCredentials string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}

	if user.PasswordHash != hashutil.SHA1Hex(password) {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Set(ctx, sessionKey(token), user.ID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Logout destroys the session. A token without a live session fails; a second
// logout on the same token is therefore an error, not a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	_, ok, err := s.sessions.Get(ctx, sessionKey(token))
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return s.sessions.Delete(ctx, sessionKey(token))
}

// ResolveUser maps a token to its user id. It never refreshes the TTL:
// sessions expire a fixed time after creation, not after last use.
func (s *Service) ResolveUser(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, ok, err := s.sessions.Get(ctx, sessionKey(token))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUnauthorized
	}
	return userID, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
