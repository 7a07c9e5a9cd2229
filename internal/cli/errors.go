package cli

import "errors"

var (
	// ErrAborted is returned when the user aborts an operation.
	ErrAborted = errors.New("operation aborted by user")

	// ErrUnsupportedPlatform is returned when no backend serves this host.
	ErrUnsupportedPlatform = errors.New("no package backend for this host; use --os-family to override detection")
)
