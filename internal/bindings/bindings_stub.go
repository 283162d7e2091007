//go:build !linux && !darwin

package bindings

// Stub implementations for platforms without a supported dynamic loader.
// These allow the package to compile but return ErrNotBuilt when called.

func Open(string) (Handle, error) {
	return 0, ErrNotBuilt
}

func Lookup(Handle, string) (Symbol, error) {
	return 0, ErrNotBuilt
}

func Close(Handle) error {
	return nil
}

func Bind(any, Symbol) {
	panic("gmt/internal/bindings: Bind called without a dynamic loader")
}
