//go:build linux || darwin

package bindings

import "github.com/ebitengine/purego"

// Open maps the shared library at path into the process. Symbols are resolved
// eagerly so that a broken library fails here rather than on first call.
func Open(path string) (Handle, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

// Lookup returns the address of the exported symbol name.
func Lookup(h Handle, name string) (Symbol, error) {
	addr, err := purego.Dlsym(uintptr(h), name)
	if err != nil {
		return 0, err
	}
	return Symbol(addr), nil
}

// Close releases the library mapping.
func Close(h Handle) error {
	if h == 0 {
		return nil
	}
	return purego.Dlclose(uintptr(h))
}

// Bind points the function variable fptr at the native entry point sym.
// Go string arguments are passed as NUL-terminated char pointers that stay
// valid for the duration of the call; uintptr-kinded values pass through as
// raw pointers.
func Bind(fptr any, sym Symbol) {
	purego.RegisterFunc(fptr, uintptr(sym))
}
