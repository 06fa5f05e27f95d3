package users

import (
	"context"
	"fmt"
	"strings"

	"filevault/internal/domain"
	"filevault/internal/pkg/hashutil"
)

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// Register creates a user with the legacy SHA-1 credential digest. The digest
// format is fixed by the existing records; see hashutil.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashutil.SHA1Hex(password),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
