package plot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/gmt-go/pkg/gmt"
)

// Figure draws into a named GMT figure. Every method activates the figure and
// runs its module inside one scoped session.
type Figure struct {
	name string
	run  func(ctx context.Context, fn func(moduleCaller) error) error
}

// moduleCaller is the part of *gmt.Session a Figure drives.
type moduleCaller interface {
	CallModule(module, args string) error
}

// NewFigure returns a Figure bound to lib. An empty name selects a unique
// generated one.
func NewFigure(lib *gmt.Library, name string) *Figure {
	if name == "" {
		name = uuid.NewString()
	}
	return &Figure{
		name: name,
		run: func(ctx context.Context, fn func(moduleCaller) error) error {
			return gmt.WithSession(ctx, lib, "", func(s *gmt.Session) error { return fn(s) })
		},
	}
}

// Name returns the GMT figure name.
func (f *Figure) Name() string {
	return f.name
}

// Coast plots continents, shorelines, rivers and borders (pscoast). A map
// projection must be supplied.
func (f *Figure) Coast(ctx context.Context, opts Options) error {
	args, err := coastFlags.build(opts)
	if err != nil {
		return err
	}
	return f.call(ctx, "pscoast", args)
}

// Plot draws lines, polygons or symbols (psxy) from the table in the named
// data file.
func (f *Figure) Plot(ctx context.Context, data string, opts Options) error {
	if data == "" {
		return fmt.Errorf("%w: data file", ErrMissingOption)
	}
	args, err := plotFlags.build(opts)
	if err != nil {
		return err
	}
	if args != "" {
		args = data + " " + args
	} else {
		args = data
	}
	return f.call(ctx, "psxy", args)
}

// Basemap draws a map frame (psbasemap). At least one of B, L or T is
// required, and D requires F.
func (f *Figure) Basemap(ctx context.Context, opts Options) error {
	resolved, err := basemapFlags.resolve(opts)
	if err != nil {
		return err
	}
	if !isSet(resolved, "B") && !isSet(resolved, "L") && !isSet(resolved, "T") {
		return fmt.Errorf("%w: at least one of B, L or T", ErrMissingOption)
	}
	if isSet(resolved, "D") && !isSet(resolved, "F") {
		return fmt.Errorf("%w: D requires F", ErrMissingOption)
	}
	args, err := buildArgs(resolved, basemapFlags.comma)
	if err != nil {
		return err
	}
	return f.call(ctx, "psbasemap", args)
}

func isSet(opts Options, flag string) bool {
	v, ok := opts[flag]
	if !ok || v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func (f *Figure) call(ctx context.Context, module, args string) error {
	return f.run(ctx, func(s moduleCaller) error {
		if err := s.CallModule("figure", f.name); err != nil {
			return err
		}
		return s.CallModule(module, args)
	})
}
