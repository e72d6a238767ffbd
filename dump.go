package confkit

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// redacted replaces values matched by WithRedact in dump output.
const redacted = "***redacted***"

// dumpFormat selects the dump encoding.
type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format dumpFormat
	indent string   // Indentation for JSON output (default: "  ")
	redact []string // Key paths to redact
}

// AsJSON outputs values as JSON instead of the text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs values as YAML.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs values as TOML.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// WithRedact replaces the values of the given key paths with a redaction
// marker. Matching is case-insensitive.
func WithRedact(paths ...string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.redact = append(cfg.redact, paths...)
	}
}

// Dump writes a human-readable representation of every value the source
// holds. The source must implement Snapshotter; ErrDumpNotSupported is
// returned otherwise. Returns an error if encoding or writing fails.
func Dump(w io.Writer, src Source, opts ...DumpOption) error {
	snap, ok := src.(Snapshotter)
	if !ok {
		return ErrDumpNotSupported
	}

	config := dumpConfig{
		indent: "  ", // Default indent
	}
	for _, opt := range opts {
		opt(&config)
	}

	values := applyRedaction(snap.Snapshot(), config.redact)

	switch config.format {
	case formatJSON:
		return dumpJSON(w, values, config.indent)
	case formatYAML:
		return dumpYAML(w, values)
	case formatTOML:
		return dumpTOML(w, values)
	default:
		return dumpText(w, values)
	}
}

// applyRedaction substitutes the redaction marker for matched key paths.
// Matching is case-insensitive.
func applyRedaction(values map[string]any, redact []string) map[string]any {
	if len(redact) == 0 {
		return values
	}

	redactSet := make(map[string]bool, len(redact))
	for _, path := range redact {
		redactSet[strings.ToLower(path)] = true
	}

	result := make(map[string]any, len(values))
	for key, value := range values {
		if redactSet[strings.ToLower(key)] {
			result[key] = redacted
		} else {
			result[key] = value
		}
	}
	return result
}

// dumpText outputs values in text format (key: value), sorted by key.
func dumpText(w io.Writer, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%s: %v\n", key, values[key]); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

func dumpJSON(w io.Writer, values map[string]any, indent string) error {
	var data []byte
	var err error
	if indent != "" {
		data, err = json.MarshalIndent(values, "", indent)
	} else {
		data, err = json.Marshal(values)
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dumpYAML(w io.Writer, values map[string]any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(values); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return nil
}

func dumpTOML(w io.Writer, values map[string]any) error {
	if err := toml.NewEncoder(w).Encode(values); err != nil {
		return fmt.Errorf("encode TOML: %w", err)
	}
	return nil
}
