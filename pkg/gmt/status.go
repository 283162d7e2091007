package gmt

import (
	"fmt"
	"strings"
)

// checkStatus translates the status returned by the native function op.
// Zero is success; every other value is a *StatusError.
func checkStatus(op string, status int32) error {
	if status != 0 {
		return &StatusError{Op: op, Status: int(status)}
	}
	return nil
}

// cString validates that s can be passed as a NUL-terminated C string.
func cString(what, s string) (string, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return "", fmt.Errorf("%w: %s contains NUL byte at offset %d", ErrInvalidArgument, what, i)
	}
	return s, nil
}
