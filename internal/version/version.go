// Package version prints the build version.
package version

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Fprint writes the wrapper version followed by the module build version
// and VCS revision, when known, to w.
func Fprint(w io.Writer, wrapper string) error {
	fmt.Fprintln(w, "gmt-go", wrapper)
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("no build info")
	}
	var revision, modified string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs.revision":
			revision = bs.Value
		case "vcs.modified":
			modified = bs.Value
		}
	}
	switch {
	case revision == "":
		fmt.Fprintln(w, bi.Main.Version)
	case modified == "true":
		fmt.Fprintln(w, bi.Main.Version, revision, "(modified)")
	default:
		fmt.Fprintln(w, bi.Main.Version, revision)
	}
	return nil
}
