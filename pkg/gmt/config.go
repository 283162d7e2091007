package gmt

import (
	"os"

	"github.com/hsiuhsiu/gmt-go/pkg/gmt/logging"
)

const (
	// DefaultLibrary is the library base name used when Config.Library is empty.
	DefaultLibrary = "libgmt"

	// DefaultSessionName is the session name used when none is given.
	DefaultSessionName = "gmt-go-session"
)

// Config expresses the knobs required to load the native GMT library.
type Config struct {
	// Library is the library base name or path without the platform
	// extension. Leaving it empty selects DefaultLibrary, which the dynamic
	// linker resolves through its search path.
	Library string

	// SessionName names sessions opened by the one-shot helpers.
	SessionName string

	// Logger receives load and session records. Nil discards them.
	Logger logging.Logger
}

func (c Config) withDefaults() Config {
	if c.Library == "" {
		c.Library = DefaultLibrary
	}
	if c.SessionName == "" {
		c.SessionName = DefaultSessionName
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c
}

// ConfigFromEnv returns a Config populated from GMT_LIBRARY and
// GMT_SESSION_NAME. Unset variables leave the defaults in place.
func ConfigFromEnv() Config {
	return Config{
		Library:     os.Getenv("GMT_LIBRARY"),
		SessionName: os.Getenv("GMT_SESSION_NAME"),
	}
}
