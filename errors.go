package confkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is discrimination. Every failure an Accessor
// returns is a *KeyError unwrapping to exactly one of these.
var (
	// ErrMissingKey is returned when a source holds nothing for a key
	// requested through a required getter.
	ErrMissingKey = errors.New("confkit: missing key")

	// ErrTypeMismatch is returned when a key holds a non-null value whose
	// kind does not match the one requested.
	ErrTypeMismatch = errors.New("confkit: type mismatch")
)

// ErrDumpNotSupported is returned by Dump for sources without Snapshot
// support.
var ErrDumpNotSupported = errors.New("confkit: dump not supported by this source")

// KeyError describes a failed typed lookup: either the key was absent or it
// held a value of the wrong kind.
type KeyError struct {
	Key      string
	Expected string // Requested kind name (e.g. "int", "list of int")
	Actual   any    // Raw value as returned by the source; nil when missing
	Missing  bool
}

// Error formats the failure. The mismatch wording is a contract surface:
// callers match on it in tests.
func (e *KeyError) Error() string {
	if e.Missing {
		return fmt.Sprintf("key '%s' is not set", e.Key)
	}
	return fmt.Sprintf("key '%s' must be %s, got '%v'", e.Key, e.Expected, e.Actual)
}

// Unwrap maps the error onto its sentinel so that errors.Is can tell "key
// absent" apart from "key present but wrong shape".
func (e *KeyError) Unwrap() error {
	if e.Missing {
		return ErrMissingKey
	}
	return ErrTypeMismatch
}

func missingErr(key string, expected string) *KeyError {
	return &KeyError{Key: key, Expected: expected, Missing: true}
}

func mismatchErr(key string, expected string, actual any) *KeyError {
	return &KeyError{Key: key, Expected: expected, Actual: actual}
}
