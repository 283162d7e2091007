package gmt

import "context"

// Begin starts a GMT modern mode session named prefix. It is meant to be
// called once, paired with End, to create the global session that later
// figure calls draw into.
func Begin(ctx context.Context, lib *Library, prefix string) error {
	if prefix == "" {
		prefix = DefaultSessionName
	}
	return WithSession(ctx, lib, "", func(s *Session) error {
		return s.CallModule("begin", prefix)
	})
}

// End terminates the modern mode session started by Begin, finalizing any
// figures and moving them to the working directory.
func End(ctx context.Context, lib *Library) error {
	return WithSession(ctx, lib, "", func(s *Session) error {
		return s.CallModule("end", "")
	})
}
