package files

import "errors"

var (
	ErrMissingName     = errors.New("missing name")
	ErrMissingType     = errors.New("missing or invalid type")
	ErrMissingData     = errors.New("missing data")
	ErrInvalidData     = errors.New("data is not valid base64")
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")
	ErrFileNotFound    = errors.New("file not found")
	ErrIsFolder        = errors.New("a folder doesn't have content")
)
