package gmt

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/hsiuhsiu/gmt-go/internal/bindings"
	"github.com/hsiuhsiu/gmt-go/pkg/gmt/logging"
)

// APIPointer is the opaque GMTAPI_CTRL pointer returned by GMT_Create_Session.
// It is only ever handed back to the native library.
type APIPointer uintptr

// entryPoints holds the native functions bound once per Library.
type entryPoints struct {
	createSession  func(name string, pad, mode uint32, print uintptr) APIPointer
	getEnum        func(name string) int32
	callModule     func(api APIPointer, module string, mode int32, args string) int32
	destroySession func(api APIPointer) int32

	// getVersion is nil when the library does not export GMT_Get_Version.
	getVersion func(api APIPointer, major, minor, patch *uint32) float32
}

// Library represents an opened, reference-counted handle to the native GMT
// library.
type Library struct {
	file        string
	sessionName string
	log         logging.Logger
	ep          entryPoints
	unload      func() error

	mu       sync.Mutex
	refs     int
	sessions int
	calls    int // session-less native calls in flight
}

var cache = struct {
	sync.Mutex
	libs map[string]*Library
}{libs: make(map[string]*Library)}

// Load opens the named library with otherwise default configuration.
func Load(name string) (*Library, error) {
	return Open(Config{Library: name})
}

// Open loads the native library described by cfg, validates that it exports
// the required entry points and binds them. Libraries are cached per file
// name: opening the same file again returns the same *Library with its
// reference count raised. Each successful Open must be paired with one Close.
func Open(cfg Config) (*Library, error) {
	cfg = cfg.withDefaults()

	file, err := bindings.LibraryFile(cfg.Library, runtime.GOOS)
	if err != nil {
		return nil, wrap("Open", err)
	}

	cache.Lock()
	defer cache.Unlock()

	if lib, ok := cache.libs[file]; ok {
		lib.mu.Lock()
		lib.refs++
		lib.mu.Unlock()
		return lib, nil
	}

	h, err := bindings.Open(file)
	if err != nil {
		return nil, wrap("Open", &LoadError{
			Name:    cfg.Library,
			File:    file,
			PathVar: bindings.SearchPathVar(runtime.GOOS),
			Err:     err,
		})
	}

	lookup := func(name string) (bindings.Symbol, error) { return bindings.Lookup(h, name) }
	syms, err := resolveSymbols(file, lookup)
	if err != nil {
		bindings.Close(h)
		return nil, wrap("Open", err)
	}

	lib := newLibrary(file, cfg, bindEntryPoints(syms), func() error { return bindings.Close(h) })
	cache.libs[file] = lib
	lib.log.Debug(context.Background(), "loaded library", "symbols", len(syms))
	return lib, nil
}

func newLibrary(file string, cfg Config, ep entryPoints, unload func() error) *Library {
	cfg = cfg.withDefaults()
	return &Library{
		file:        file,
		sessionName: cfg.SessionName,
		log:         cfg.Logger.With(logging.Lib(file)),
		ep:          ep,
		unload:      unload,
		refs:        1,
	}
}

// resolveSymbols looks up every required entry point and, when present, the
// optional ones. The first missing required symbol is reported.
func resolveSymbols(file string, lookup func(string) (bindings.Symbol, error)) (map[string]bindings.Symbol, error) {
	syms := make(map[string]bindings.Symbol, len(requiredSymbols)+1)
	for _, name := range requiredSymbols {
		sym, err := lookup(name)
		if err != nil || sym == 0 {
			return nil, &SymbolError{File: file, Symbol: name}
		}
		syms[name] = sym
	}
	if sym, err := lookup(fnGetVersion); err == nil && sym != 0 {
		syms[fnGetVersion] = sym
	}
	return syms, nil
}

func bindEntryPoints(syms map[string]bindings.Symbol) entryPoints {
	var ep entryPoints
	bindings.Bind(&ep.createSession, syms[fnCreateSession])
	bindings.Bind(&ep.getEnum, syms[fnGetEnum])
	bindings.Bind(&ep.callModule, syms[fnCallModule])
	bindings.Bind(&ep.destroySession, syms[fnDestroySession])
	if sym, ok := syms[fnGetVersion]; ok {
		bindings.Bind(&ep.getVersion, sym)
	}
	return ep
}

// File returns the platform-qualified file name the library was loaded from.
func (l *Library) File() string {
	return l.file
}

// Close releases one reference to the library. The mapping is unloaded when
// the last reference is released; that final release fails with
// ErrLibraryBusy while sessions are active or a GetConstant or Version call
// is still running.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	cache.Lock()
	defer cache.Unlock()
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.refs == 0:
		return wrap("Close", ErrLibraryClosed)
	case l.refs == 1 && (l.sessions > 0 || l.calls > 0):
		return wrap("Close", fmt.Errorf("%w: %d sessions, %d calls", ErrLibraryBusy, l.sessions, l.calls))
	}
	l.refs--
	if l.refs > 0 {
		return nil
	}

	if cache.libs[l.file] == l {
		delete(cache.libs, l.file)
	}
	l.log.Debug(context.Background(), "unloading library")
	if l.unload != nil {
		return wrap("Close", l.unload())
	}
	return nil
}

// acquire checks the library is open and counts a user of the mapping: an
// active session when session is true, otherwise one native call. Every
// successful acquire must be paired with release.
func (l *Library) acquire(session bool) error {
	if l == nil {
		return ErrLibraryClosed
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.refs == 0 {
		return ErrLibraryClosed
	}
	if session {
		l.sessions++
	} else {
		l.calls++
	}
	return nil
}

func (l *Library) release(session bool) {
	l.mu.Lock()
	if session {
		l.sessions--
	} else {
		l.calls--
	}
	l.mu.Unlock()
}

// GetConstant returns the value of the named GMT enum constant, for example
// GMT_SESSION_EXTERNAL. Values are looked up on every call; do not persist
// them across library versions.
func (l *Library) GetConstant(name string) (int, error) {
	if err := l.acquire(false); err != nil {
		return 0, wrap("GetConstant", err)
	}
	defer l.release(false)
	v, err := l.constant(name)
	return v, wrap("GetConstant", err)
}

func (l *Library) constant(name string) (int, error) {
	cname, err := cString("constant name", name)
	if err != nil {
		return 0, err
	}
	v := l.ep.getEnum(cname)
	l.log.Debug(context.Background(), "constant lookup", "name", name, "value", v)
	if v == enumNotFound {
		return 0, &ConstantError{Name: name}
	}
	return int(v), nil
}

// CallModule runs module with args in a fresh session named after the
// library configuration and destroys the session afterwards.
func (l *Library) CallModule(module, args string) error {
	return WithSession(context.Background(), l, "", func(s *Session) error {
		return s.CallModule(module, args)
	})
}

// Version reports the native library version as major.minor.patch. It
// returns ErrSymbolUnavailable for libraries that do not export
// GMT_Get_Version.
func (l *Library) Version() (string, error) {
	if err := l.acquire(false); err != nil {
		return "", wrap("Version", err)
	}
	defer l.release(false)
	if l.ep.getVersion == nil {
		return "", wrap("Version", fmt.Errorf("%w: %s", ErrSymbolUnavailable, fnGetVersion))
	}
	var major, minor, patch uint32
	l.ep.getVersion(0, &major, &minor, &patch)
	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}
