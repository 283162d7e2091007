// Package gmt loads the native GMT library and drives it through sessions.
//
// A Library is opened once per process and shared; each Session owns exactly
// one native API context and must be closed exactly once:
//
//	lib, err := gmt.Open(gmt.Config{})
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
//
//	err = gmt.WithSession(ctx, lib, "my-session", func(s *gmt.Session) error {
//		return s.CallModule("figure", "my-figure")
//	})
//
// WithSession guarantees the native context is destroyed on every exit path.
// Constants such as GMT_MODULE_CMD are looked up by name on every use because
// their numeric values are not stable across GMT releases.
//
// Sessions are not safe for concurrent use. Whether several sessions may be
// active at once depends on the native library.
package gmt
