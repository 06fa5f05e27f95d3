package auth

import (
	"context"

	"filevault/internal/domain"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
