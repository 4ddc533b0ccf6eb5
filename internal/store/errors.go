package store

import "errors"

// Sentinel errors returned by [ContainerStorage] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrContainerNotFound is returned by Load when no vault file exists at
	// the configured path.
	ErrContainerNotFound = errors.New("vault file not found")

	// ErrContainerMalformed is returned by Load when the file exists and is
	// readable but does not hold a JSON vault container.
	ErrContainerMalformed = errors.New("vault file is not a valid container")

	// ErrEmptyPath is returned when the storage is built without a file path.
	ErrEmptyPath = errors.New("vault file path is empty")
)
