package analyses

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrMissingFileName = errors.New("file name is required")
	ErrInvalidFileType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrEmptyFile       = errors.New("file is empty")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeNotFound   = "not_found"
	ErrorCodeStorage    = "storage_error"
	ErrorCodeInternal   = "internal_error"
)
