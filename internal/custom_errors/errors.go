package custom_errors

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrStorageNotFound = errors.New("post storage not found")
	ErrStorageCorrupt  = errors.New("post storage is corrupt")
	ErrStorageRead     = errors.New("failed to read post storage")
	ErrStorageWrite    = errors.New("failed to write post storage")

	ErrEventPublish = errors.New("failed to publish post event")
)
