package gmt

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/gmt-go/internal/bindings"
)

var (
	// ErrUnsupportedPlatform indicates the operating system has no known
	// shared library naming convention.
	ErrUnsupportedPlatform = bindings.ErrUnsupportedPlatform

	// ErrNotBuilt indicates the wrapper was compiled without a dynamic loader.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrLibraryNotFound indicates the shared library could not be opened.
	ErrLibraryNotFound = errors.New("gmt: library not found")

	// ErrLibraryInvalid indicates the library lacks a required entry point.
	ErrLibraryInvalid = errors.New("gmt: library invalid")

	// ErrLibraryClosed indicates the library handle has been released.
	ErrLibraryClosed = errors.New("gmt: library closed")

	// ErrLibraryBusy indicates a release was attempted while sessions were
	// still active.
	ErrLibraryBusy = errors.New("gmt: library has active sessions")

	// ErrSymbolUnavailable indicates an optional entry point is not exported
	// by the loaded library.
	ErrSymbolUnavailable = errors.New("gmt: entry point unavailable")

	// ErrSessionCreate indicates the native library returned a null context.
	ErrSessionCreate = errors.New("gmt: failed to create a session")

	// ErrSessionActive indicates Open was called on a session that is
	// already open.
	ErrSessionActive = errors.New("gmt: session already open")

	// ErrSessionClosed indicates an operation on a session that is not
	// active.
	ErrSessionClosed = errors.New("gmt: operation on closed session")

	// ErrConstantNotFound is the sentinel matched by *ConstantError.
	ErrConstantNotFound = errors.New("gmt: constant not found")

	// ErrNativeCall is the sentinel matched by *StatusError.
	ErrNativeCall = errors.New("gmt: native call failed")

	// ErrInvalidArgument indicates a string that cannot be passed to C.
	ErrInvalidArgument = errors.New("gmt: invalid argument")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gmt.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// LoadError reports a shared library that could not be opened.
type LoadError struct {
	Name    string // Name as requested by the caller
	File    string // Platform-qualified file name passed to the loader
	PathVar string // Search path environment variable for the platform
	Err     error  // Loader error text
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("couldn't find the GMT shared library '%s' (%s); have you tried setting the %s environment variable? original error: %v",
		e.Name, e.File, e.PathVar, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLibraryNotFound
}

// SymbolError reports a required entry point missing from a library.
type SymbolError struct {
	File   string
	Symbol string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("error loading %s: couldn't access function %s", e.File, e.Symbol)
}

func (e *SymbolError) Is(target error) bool {
	return target == ErrLibraryInvalid
}

// ConstantError reports a constant name unknown to the native library.
type ConstantError struct {
	Name string
}

func (e *ConstantError) Error() string {
	return fmt.Sprintf("constant '%s' doesn't exist in libgmt", e.Name)
}

func (e *ConstantError) Is(target error) bool {
	return target == ErrConstantNotFound
}

// StatusError reports a non-zero status returned by a native call.
type StatusError struct {
	Op     string // Native function name, e.g. GMT_Call_Module
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed %s with status code %d", e.Op, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNativeCall
}
