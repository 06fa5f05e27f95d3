package domain

import "time"

type FileKind string

const (
	KindFolder FileKind = "folder"
	KindFile   FileKind = "file"
	KindImage  FileKind = "image"
)

// RootFolderID is the reserved parent identifier meaning "no parent".
const RootFolderID = "0"

// FileRecord is the metadata entity for a folder, file or image. Binary
// content lives on disk (see internal/blob); LocalPath references it and is
// set only for non-folder kinds.
type FileRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Kind      FileKind  `json:"type"`
	IsPublic  bool      `json:"isPublic"`
	ParentID  string    `json:"parentId"`
	LocalPath string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (k FileKind) Valid() bool {
	switch k {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}
