package gmt

import (
	"context"
	"errors"

	"github.com/hsiuhsiu/gmt-go/pkg/gmt/logging"
)

type sessionState int

const (
	unopened sessionState = iota
	active
	closed
)

func (s sessionState) String() string {
	switch s {
	case unopened:
		return "unopened"
	case active:
		return "active"
	case closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session owns a single native GMT API context. Its lifecycle is strictly
// Open, zero or more operations, Close. A Session is not safe for concurrent
// use and cannot be reopened once closed.
type Session struct {
	lib   *Library
	name  string
	api   APIPointer
	state sessionState
	log   logging.Logger
}

// NewSession returns an unopened session bound to l. An empty name selects
// the library's configured session name. A session on a nil library fails
// to open with ErrLibraryClosed.
func (l *Library) NewSession(name string) *Session {
	if l == nil {
		if name == "" {
			name = DefaultSessionName
		}
		return &Session{name: name, log: logging.Discard()}
	}
	if name == "" {
		name = l.sessionName
	}
	return &Session{
		lib:  l,
		name: name,
		log:  l.log.With(logging.Session(name)),
	}
}

// OpenSession creates and opens a session in one step.
func (l *Library) OpenSession(name string) (*Session, error) {
	s := l.NewSession(name)
	if err := s.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the session name passed to GMT_Create_Session.
func (s *Session) Name() string {
	return s.name
}

// Active reports whether the session holds a live native context.
func (s *Session) Active() bool {
	return s.state == active
}

// Open creates the native context with the library's default padding and
// external session mode. No print callback is installed, so GMT uses its own
// output routing.
func (s *Session) Open() error {
	switch s.state {
	case active:
		return wrap("Open", ErrSessionActive)
	case closed:
		return wrap("Open", ErrSessionClosed)
	}

	name, err := cString("session name", s.name)
	if err != nil {
		return wrap("Open", err)
	}
	if err := s.lib.acquire(true); err != nil {
		return wrap("Open", err)
	}

	api, err := s.create(name)
	if err != nil {
		s.lib.release(true)
		return wrap("Open", err)
	}
	s.api = api
	s.state = active
	s.log.Debug(context.Background(), "session created")
	return nil
}

func (s *Session) create(name string) (APIPointer, error) {
	pad, err := s.lib.constant(PadDefault)
	if err != nil {
		return 0, err
	}
	mode, err := s.lib.constant(SessionExternal)
	if err != nil {
		return 0, err
	}
	api := s.lib.ep.createSession(name, uint32(pad), uint32(mode), 0)
	if api == 0 {
		return 0, ErrSessionCreate
	}
	return api, nil
}

// GetConstant returns the value of the named GMT enum constant.
func (s *Session) GetConstant(name string) (int, error) {
	if s.state != active {
		return 0, wrap("GetConstant", ErrSessionClosed)
	}
	v, err := s.lib.constant(name)
	return v, wrap("GetConstant", err)
}

// CallModule runs the named GMT module with args, a single space-delimited
// command line, in GMT_MODULE_CMD mode.
func (s *Session) CallModule(module, args string) error {
	if s.state != active {
		return wrap("CallModule", ErrSessionClosed)
	}
	cmodule, err := cString("module name", module)
	if err != nil {
		return wrap("CallModule", err)
	}
	cargs, err := cString("module arguments", args)
	if err != nil {
		return wrap("CallModule", err)
	}
	mode, err := s.lib.constant(ModuleCmd)
	if err != nil {
		return wrap("CallModule", err)
	}

	status := s.lib.ep.callModule(s.api, cmodule, int32(mode), cargs)
	s.log.Debug(context.Background(), "module call", logging.Module(module), logging.Status(int(status)))
	return wrap("CallModule", checkStatus(fnCallModule, status))
}

// Close destroys the native context. The session is closed afterwards even
// when GMT_Destroy_Session reports failure, since the context must not be
// handed back to the library a second time.
func (s *Session) Close() error {
	if s.state != active {
		return wrap("Close", ErrSessionClosed)
	}

	status := s.lib.ep.destroySession(s.api)
	s.api = 0
	s.state = closed
	s.lib.release(true)

	err := checkStatus(fnDestroySession, status)
	if err != nil {
		s.log.Warn(context.Background(), "session destroy failed", logging.Status(int(status)))
	} else {
		s.log.Debug(context.Background(), "session destroyed")
	}
	return wrap("Close", err)
}

// WithSession opens a session on lib, runs fn and closes the session on every
// exit path, including a panic in fn. The returned error joins fn's error
// with any close error. ctx is only consulted before the session is opened;
// native calls cannot be interrupted.
func WithSession(ctx context.Context, lib *Library, name string, fn func(*Session) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	s, err := lib.OpenSession(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	return fn(s)
}
