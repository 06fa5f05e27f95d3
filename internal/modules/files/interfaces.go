package files

import (
	"context"

	"filevault/internal/domain"
)

type FileRepositoryInterface interface {
	Create(ctx context.Context, f *domain.FileRecord) error
	GetByID(ctx context.Context, id string) (*domain.FileRecord, error)
	GetByIDForOwner(ctx context.Context, id, userID string) (*domain.FileRecord, error)
	ListChildren(ctx context.Context, userID, parentID string, page int) ([]*domain.FileRecord, error)
	SetVisibility(ctx context.Context, id, userID string, isPublic bool) (*domain.FileRecord, error)
}

type BlobStoreInterface interface {
	Write(data []byte) (string, error)
	Read(id string) ([]byte, error)
	Path(id string) string
}
