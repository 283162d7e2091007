// Package bindings hosts the thin dynamic-loader layer that links the Go API
// to the native GMT library. The real implementation lives behind build tags
// so that the rest of the repository compiles on platforms without a loader.
package bindings

import (
	"errors"
	"fmt"
)

// Handle is an opaque identifier for a dynamically loaded library mapping.
type Handle uintptr

// Symbol is the resolved address of an exported entry point. It is kept
// distinct from Handle and from ordinary integers so that the two cannot be
// swapped across calls.
type Symbol uintptr

var (
	// ErrNotBuilt reports that no dynamic loader is available for the current
	// platform.
	ErrNotBuilt = errors.New("gmt/internal/bindings: dynamic loader not built for this platform")

	// ErrUnsupportedPlatform is the sentinel matched by PlatformError.
	ErrUnsupportedPlatform = errors.New("gmt/internal/bindings: unsupported operating system")
)

// PlatformError is returned when the operating system has no known shared
// library naming convention.
type PlatformError struct {
	GOOS string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("unknown operating system: %s", e.GOOS)
}

func (e *PlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}
