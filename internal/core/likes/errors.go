package likes

import "errors"

var (
	// ErrPostNotFound is returned when the target post doesn't exist
	ErrPostNotFound = errors.New("post not found")
)
