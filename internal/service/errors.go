package service

import (
	"errors"

	"blogapi/internal/repository"
)

var (
	ErrIDRequired  = errors.New("id is required")
	ErrKeyRequired = errors.New("object key is required")
	ErrReaderNil   = errors.New("reader is nil")

	// ErrNotFound aliases the repository sentinel so callers can match either.
	ErrNotFound = repository.ErrNotFound

	ErrInvalidFileType = errors.New("invalid file type: please upload an image file")
	ErrFileTooLarge    = errors.New("file too large")
)
