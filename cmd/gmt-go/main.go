// The gmt-go command calls a GMT module through the native library, or
// prints the value of a GMT constant.
//
// Usage:
//
//	gmt-go [flags] module [args...]
//	gmt-go [flags] -const NAME
//
// Module arguments are joined with single spaces and passed to GMT as one
// command line. -const cannot be combined with a module.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hsiuhsiu/gmt-go/internal/version"
	"github.com/hsiuhsiu/gmt-go/pkg/gmt"
	"github.com/hsiuhsiu/gmt-go/pkg/gmt/logging"
)

// Exit status codes.
const (
	success       = 0
	internalError = 1 << (iota - 1)
	invocationError
)

func main() { os.Exit(Main()) }

func Main() int {
	lib := flag.String("lib", "", "GMT library base name or path without extension (default $GMT_LIBRARY or libgmt)")
	session := flag.String("session", "", "session name")
	config := flag.String("config", "", "path to a TOML configuration file")
	logLevel := flag.String("log", "", "logging level (debug, info, warn or error)")
	lines := flag.Bool("lines", false, "display source line details in logs")
	constant := flag.String("const", "", "print the value of the named GMT constant and exit")
	v := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] module [args...]\n       %[1]s [flags] -const NAME\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *v {
		err := version.Fprint(os.Stdout, gmt.WrapperVersion())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return internalError
		}
		return success
	}

	if (*constant == "") == (flag.NArg() == 0) {
		flag.Usage()
		return invocationError
	}

	fc, err := loadConfig(*config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return invocationError
	}

	cfg := gmt.ConfigFromEnv()
	override(&cfg.Library, fc.Library, *lib)
	override(&cfg.SessionName, fc.SessionName, *session)
	levelText := "info"
	override(&levelText, fc.LogLevel, *logLevel)

	var level slog.LevelVar
	err = level.UnmarshalText([]byte(levelText))
	if err != nil {
		flag.Usage()
		return invocationError
	}
	log := slog.New(logging.GoID{Handler: slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     &level,
		AddSource: *lines,
	})}).With(
		slog.String("component", "gmt-go"),
	)
	cfg.Logger = logging.New(log)

	ctx := context.Background()
	l, err := gmt.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return internalError
	}
	defer func() {
		if err := l.Close(); err != nil {
			log.LogAttrs(ctx, slog.LevelWarn, "close library", slog.Any("error", err))
		}
	}()

	if *constant != "" {
		val, err := l.GetConstant(*constant)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return internalError
		}
		fmt.Println(val)
		return success
	}

	module, args := flag.Arg(0), strings.Join(flag.Args()[1:], " ")
	err = gmt.WithSession(ctx, l, cfg.SessionName, func(s *gmt.Session) error {
		return s.CallModule(module, args)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return internalError
	}
	return success
}

// override sets dst to the last non-empty value of vals.
func override(dst *string, vals ...string) {
	for _, v := range vals {
		if v != "" {
			*dst = v
		}
	}
}
