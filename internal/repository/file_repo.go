package repository

import (
	"context"
	"errors"
	"time"

	"filevault/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageSize is the fixed number of records a listing page holds.
const PageSize = 20

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

type fileModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index"`
	Name      string    `gorm:"column:name"`
	Kind      string    `gorm:"column:kind"`
	IsPublic  bool      `gorm:"column:is_public"`
	ParentID  string    `gorm:"column:parent_id;index"`
	LocalPath string    `gorm:"column:local_path"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (fileModel) TableName() string { return "files" }

func toDomainFile(m fileModel) *domain.FileRecord {
	return &domain.FileRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Kind:      domain.FileKind(m.Kind),
		IsPublic:  m.IsPublic,
		ParentID:  m.ParentID,
		LocalPath: m.LocalPath,
		CreatedAt: m.CreatedAt,
	}
}

func toFileModel(f *domain.FileRecord) fileModel {
	return fileModel{
		ID:        f.ID,
		UserID:    f.UserID,
		Name:      f.Name,
		Kind:      string(f.Kind),
		IsPublic:  f.IsPublic,
		ParentID:  f.ParentID,
		LocalPath: f.LocalPath,
		CreatedAt: f.CreatedAt,
	}
}

// Create assigns a fresh identifier and persists the record. Hierarchy rules
// are the service's job; the database still backstops uniqueness constraints.
func (r *FileRepository) Create(ctx context.Context, f *domain.FileRecord) error {
	m := toFileModel(f)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFile(m)
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*domain.FileRecord, error) {
	var m fileModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainFile(m), nil
}

func (r *FileRepository) GetByIDForOwner(ctx context.Context, id, userID string) (*domain.FileRecord, error) {
	var m fileModel
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainFile(m), nil
}

// ListChildren returns the caller's records whose parent matches parentID
// exactly (the root sentinel matches root only). Pages are zero-indexed and
// fixed at PageSize records; a page past the end is empty, not an error.
func (r *FileRepository) ListChildren(ctx context.Context, userID, parentID string, page int) ([]*domain.FileRecord, error) {
	if page < 0 {
		page = 0
	}
	var models []fileModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND parent_id = ?", userID, parentID).
		Order("created_at ASC, id ASC").
		Offset(page * PageSize).
		Limit(PageSize).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	records := make([]*domain.FileRecord, 0, len(models))
	for _, m := range models {
		records = append(records, toDomainFile(m))
	}
	return records, nil
}

// SetVisibility flips is_public with a single owner-scoped UPDATE, so there
// is no read-then-write window. Zero rows affected means no such record for
// this owner.
func (r *FileRepository) SetVisibility(ctx context.Context, id, userID string, isPublic bool) (*domain.FileRecord, error) {
	tx := r.db.WithContext(ctx).Model(&fileModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_public", isPublic)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByIDForOwner(ctx, id, userID)
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&fileModel{}).Count(&count)
	return count, tx.Error
}
