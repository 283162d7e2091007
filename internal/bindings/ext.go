package bindings

import "strings"

// Extension returns the shared library file suffix for goos, without the
// leading dot. Any identifier starting with "linux" maps to "so" and exactly
// "darwin" maps to "dylib"; everything else is a *PlatformError.
func Extension(goos string) (string, error) {
	switch {
	case strings.HasPrefix(goos, "linux"):
		return "so", nil
	case goos == "darwin":
		return "dylib", nil
	default:
		return "", &PlatformError{GOOS: goos}
	}
}

// LibraryFile joins a library base name or path with the suffix for goos.
func LibraryFile(name, goos string) (string, error) {
	ext, err := Extension(goos)
	if err != nil {
		return "", err
	}
	return name + "." + ext, nil
}

// SearchPathVar names the environment variable the platform's dynamic linker
// consults when a library is given without a full path.
func SearchPathVar(goos string) string {
	if goos == "darwin" {
		return "DYLD_LIBRARY_PATH"
	}
	return "LD_LIBRARY_PATH"
}
