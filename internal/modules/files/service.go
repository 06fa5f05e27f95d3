package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"filevault/internal/blob"
	"filevault/internal/domain"
	"filevault/internal/repository"
)

const fallbackMimeType = "application/octet-stream"

// UploadRequest carries client input for an upload. ParentID defaults to the
// root sentinel when empty.
type UploadRequest struct {
	Name     string
	Kind     string
	ParentID string
	IsPublic bool
	Data     string
}

// View is the public shape of a FileRecord: no local path, parent rendered as
// the root sentinel or the parent's id.
type View struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Kind     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

// Service orchestrates metadata and blob storage for file operations. It owns
// no state of its own; every mutation is a single store round-trip.
type Service struct {
	repo  FileRepositoryInterface
	blobs BlobStoreInterface
}

func NewService(repo FileRepositoryInterface, blobs BlobStoreInterface) *Service {
	return &Service{repo: repo, blobs: blobs}
}

// Upload validates the request, stores content for non-folder kinds, and
// persists the metadata record. The blob is written before the metadata row;
// if the insert then fails, the leftover blob is unreferenced and harmless.
//
// The parent may be any existing folder, owned by anyone. That matches the
// legacy behavior this service replaces.
func (s *Service) Upload(ctx context.Context, userID string, req UploadRequest) (*View, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	kind := domain.FileKind(req.Kind)
	if !kind.Valid() {
		return nil, ErrMissingType
	}

	var content []byte
	if kind != domain.KindFolder {
		if req.Data == "" {
			return nil, ErrMissingData
		}
		var err error
		content, err = base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, ErrInvalidData
		}
	}

	parentID := req.ParentID
	if parentID == "" {
		parentID = domain.RootFolderID
	}
	if parentID != domain.RootFolderID {
		parent, err := s.repo.GetByID(ctx, parentID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrParentNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("resolve parent: %w", err)
		}
		if parent.Kind != domain.KindFolder {
			return nil, ErrParentNotFolder
		}
	}

	record := &domain.FileRecord{
		UserID:   userID,
		Name:     req.Name,
		Kind:     kind,
		IsPublic: req.IsPublic,
		ParentID: parentID,
	}

	if kind != domain.KindFolder {
		blobID, err := s.blobs.Write(content)
		if err != nil {
			return nil, fmt.Errorf("store content: %w", err)
		}
		record.LocalPath = s.blobs.Path(blobID)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}

	return toView(record), nil
}

// Get returns the caller's own record; anyone else's id looks absent.
func (s *Service) Get(ctx context.Context, userID, fileID string) (*View, error) {
	record, err := s.repo.GetByIDForOwner(ctx, fileID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get file record: %w", err)
	}
	return toView(record), nil
}

// List pages through the caller's children of parentID, 20 records per page.
func (s *Service) List(ctx context.Context, userID, parentID string, page int) ([]*View, error) {
	if parentID == "" {
		parentID = domain.RootFolderID
	}
	records, err := s.repo.ListChildren(ctx, userID, parentID, page)
	if err != nil {
		return nil, fmt.Errorf("list file records: %w", err)
	}
	views := make([]*View, 0, len(records))
	for _, r := range records {
		views = append(views, toView(r))
	}
	return views, nil
}

// SetVisibility flips isPublic on the caller's record. Idempotent: setting
// the current value again succeeds and returns the same state.
func (s *Service) SetVisibility(ctx context.Context, userID, fileID string, isPublic bool) (*View, error) {
	record, err := s.repo.SetVisibility(ctx, fileID, userID, isPublic)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set visibility: %w", err)
	}
	return toView(record), nil
}

// GetContent returns a file's bytes and a MIME type derived from its name.
// requesterID is empty for anonymous callers. A private file read by anyone
// but its owner reports ErrFileNotFound, indistinguishable from a missing id.
func (s *Service) GetContent(ctx context.Context, requesterID, fileID string) ([]byte, string, error) {
	record, err := s.repo.GetByID(ctx, fileID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrFileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("get file record: %w", err)
	}

	if record.Kind == domain.KindFolder {
		return nil, "", ErrIsFolder
	}

	if !record.IsPublic && (requesterID == "" || requesterID != record.UserID) {
		return nil, "", ErrFileNotFound
	}

	data, err := s.blobs.Read(filepath.Base(record.LocalPath))
	if errors.Is(err, blob.ErrNotFound) {
		return nil, "", ErrFileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("read content: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(record.Name))
	if mimeType == "" {
		mimeType = fallbackMimeType
	}
	return data, mimeType, nil
}

func toView(r *domain.FileRecord) *View {
	return &View{
		ID:       r.ID,
		UserID:   r.UserID,
		Name:     r.Name,
		Kind:     string(r.Kind),
		IsPublic: r.IsPublic,
		ParentID: r.ParentID,
	}
}
