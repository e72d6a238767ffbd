package sourceenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/Azhovan/confkit"
	"github.com/Azhovan/confkit/internal/numeric"
)

// Options configures environment variable lookup behavior.
type Options struct {
	// Prefix is prepended to every key on lookup (e.g. Prefix "APP_" makes
	// Fetch("PORT") read APP_PORT). Empty = keys are full variable names.
	Prefix string
}

type envSource struct {
	opts Options
}

type envStringSource struct {
	opts Options
}

// New creates the casting environment source: literal tokens are
// canonicalized and remaining strings are narrowed to int or float64 when
// they denote numbers.
func New(opts Options) confkit.Source {
	return &envSource{opts: opts}
}

// NewString creates the string-preserving environment source: literal
// tokens are canonicalized, then every scalar is coerced back to its string
// form (true → "1", false → ""), bypassing numeric inference entirely.
func NewString(opts Options) confkit.Source {
	return &envStringSource{opts: opts}
}

// Fetch looks up an environment variable and returns it with literal
// canonicalization and numeric casting applied. Unset variables yield nil.
func (e *envSource) Fetch(key string) any {
	raw, ok := lookup(e.opts.Prefix + key)
	if !ok {
		return nil
	}
	return castScalar(raw)
}

// Snapshot returns every visible variable keyed the way Fetch addresses it,
// with the same casting applied.
func (e *envSource) Snapshot() map[string]any {
	return snapshot(e.opts.Prefix, castScalar)
}

// Fetch looks up an environment variable and returns its string form.
// Unset variables and the null literals yield nil.
func (e *envStringSource) Fetch(key string) any {
	raw, ok := lookup(e.opts.Prefix + key)
	if !ok {
		return nil
	}
	return stringify(raw)
}

// Snapshot returns every visible variable in its string form.
func (e *envStringSource) Snapshot() map[string]any {
	return snapshot(e.opts.Prefix, stringify)
}

// lookup reads one variable and folds the well-known literal tokens into
// their typed forms. The second return is false only when the variable is
// unset.
func lookup(name string) (any, bool) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil, false
	}

	switch strings.ToLower(value) {
	case "true", "(true)":
		return true, true
	case "false", "(false)":
		return false, true
	case "null", "(null)":
		return nil, true
	case "empty", "(empty)":
		return "", true
	}

	return value, true
}

// castScalar narrows a canonicalized value: strings go through the numeric
// caster, already-typed results pass through unchanged.
func castScalar(raw any) any {
	if s, ok := raw.(string); ok {
		return numeric.Cast(s)
	}
	return raw
}

// stringify coerces a canonicalized scalar to its string representation,
// matching the convention that true prints as "1" and false as "".
func stringify(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func snapshot(prefix string, convert func(any) any) map[string]any {
	result := make(map[string]any)

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		if prefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = key[len(prefix):]
			if key == "" {
				continue
			}
		}

		// Re-fetch through lookup so literal folding stays in one place.
		value, ok := lookup(parts[0])
		if !ok {
			continue
		}
		result[key] = convert(value)
	}

	return result
}
