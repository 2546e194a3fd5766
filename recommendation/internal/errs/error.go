package errs

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrCorruptBatch marks persisted rule data that cannot be trusted.
	ErrCorruptBatch = errors.New("recommendation batch data is corrupt")

	ErrGenerationRunning     = errors.New("generation is already running")
	ErrGenerationUnavailable = errors.New("generation is temporarily unavailable")
	ErrGenerationFailed      = errors.New("generation failed")

	ErrNoStock         = errors.New("book is out of stock")
	ErrAlreadyBorrowed = errors.New("student already has an outstanding borrow of this book")
	ErrAlreadyReturned = errors.New("borrow is already returned")
	ErrStudentInactive = errors.New("student is archived")
)
