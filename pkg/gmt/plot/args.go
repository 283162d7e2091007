package plot

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Options maps GMT flags or their aliases to values.
//
// A value of true emits the bare flag, false or nil omit it. Strings and
// numbers are appended to the flag. Slices are joined with "/" unless the
// module declares the flag comma-separated.
type Options map[string]any

// ErrMissingOption reports a module invoked without a mandatory flag.
var ErrMissingOption = errors.New("plot: missing required option")

// ErrBadOption reports an option value that cannot be rendered.
var ErrBadOption = errors.New("plot: bad option")

// moduleFlags describes the option surface of one module.
type moduleFlags struct {
	aliases map[string]string // long name -> flag
	comma   map[string]bool   // flags whose sequences are comma-joined
}

var (
	coastFlags = moduleFlags{
		aliases: map[string]string{
			"region":      "R",
			"projection":  "J",
			"area_thresh": "A",
			"frame":       "B",
			"resolution":  "D",
			"portrait":    "P",
			"rivers":      "I",
			"borders":     "N",
			"shorelines":  "W",
			"land":        "G",
			"water":       "S",
		},
	}
	plotFlags = moduleFlags{
		aliases: map[string]string{
			"region":     "R",
			"projection": "J",
			"frame":      "B",
			"portrait":   "P",
			"style":      "S",
			"color":      "G",
			"pen":        "W",
			"columns":    "i",
		},
		comma: map[string]bool{"i": true},
	}
	basemapFlags = moduleFlags{
		aliases: map[string]string{
			"region":     "R",
			"projection": "J",
			"frame":      "B",
			"portrait":   "P",
		},
	}
)

// resolve replaces aliases with their flags and drops nil values. Setting
// both an alias and its flag is an error.
func (s moduleFlags) resolve(opts Options) (Options, error) {
	out := make(Options, len(opts))
	for k, v := range opts {
		if v == nil {
			continue
		}
		flag, ok := s.aliases[k]
		if !ok {
			flag = k
		}
		if _, dup := out[flag]; dup {
			return nil, fmt.Errorf("%w: -%s given more than once", ErrBadOption, flag)
		}
		out[flag] = v
	}
	return out, nil
}

// build resolves aliases and renders opts as a GMT command line.
func (s moduleFlags) build(opts Options) (string, error) {
	resolved, err := s.resolve(opts)
	if err != nil {
		return "", err
	}
	return buildArgs(resolved, s.comma)
}

// BuildArgs renders opts, which must already use flag names, as a command
// line with flags in sorted order.
func BuildArgs(opts Options) (string, error) {
	return buildArgs(opts, nil)
}

func buildArgs(opts Options, comma map[string]bool) (string, error) {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			return "", fmt.Errorf("%w: empty flag", ErrBadOption)
		}
		sep := "/"
		if comma[k] {
			sep = ","
		}
		val, emit, err := render(opts[k], sep)
		if err != nil {
			return "", fmt.Errorf("%w: -%s: %v", ErrBadOption, k, err)
		}
		if emit {
			args = append(args, "-"+k+val)
		}
	}
	return strings.Join(args, " "), nil
}

func render(v any, sep string) (val string, emit bool, err error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case bool:
		return "", v, nil
	case string:
		return v, true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case float64:
		return formatFloat(v), true, nil
	case []string:
		return strings.Join(v, sep), true, nil
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, sep), true, nil
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = formatFloat(f)
		}
		return strings.Join(parts, sep), true, nil
	case fmt.Stringer:
		return v.String(), true, nil
	default:
		return "", false, fmt.Errorf("unsupported value type %T", v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
