package confkit

import (
	"errors"
	"testing"
)

func TestKeyError_Error_Mismatch(t *testing.T) {
	tests := []struct {
		name string
		err  *KeyError
		want string
	}{
		{
			name: "string value expected as int",
			err:  &KeyError{Key: "test.port", Expected: "int", Actual: "8080"},
			want: "key 'test.port' must be int, got '8080'",
		},
		{
			name: "int value expected as string",
			err:  &KeyError{Key: "app.name", Expected: "string", Actual: 42},
			want: "key 'app.name' must be string, got '42'",
		},
		{
			name: "collection kind",
			err:  &KeyError{Key: "features", Expected: "list of string", Actual: "auth"},
			want: "key 'features' must be list of string, got 'auth'",
		},
		{
			name: "bool actual",
			err:  &KeyError{Key: "debug", Expected: "float", Actual: true},
			want: "key 'debug' must be float, got 'true'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("KeyError.Error()\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestKeyError_Error_Missing(t *testing.T) {
	err := missingErr("NONEXISTENT_KEY", "int")
	want := "key 'NONEXISTENT_KEY' is not set"
	if got := err.Error(); got != want {
		t.Errorf("KeyError.Error() = %q, want %q", got, want)
	}
}

func TestKeyError_Unwrap(t *testing.T) {
	missing := missingErr("a", "int")
	if !errors.Is(missing, ErrMissingKey) {
		t.Error("missing KeyError should unwrap to ErrMissingKey")
	}
	if errors.Is(missing, ErrTypeMismatch) {
		t.Error("missing KeyError must not unwrap to ErrTypeMismatch")
	}

	mismatch := mismatchErr("a", "int", "x")
	if !errors.Is(mismatch, ErrTypeMismatch) {
		t.Error("mismatch KeyError should unwrap to ErrTypeMismatch")
	}
	if errors.Is(mismatch, ErrMissingKey) {
		t.Error("mismatch KeyError must not unwrap to ErrMissingKey")
	}
}

func TestKeyError_As(t *testing.T) {
	var keyErr *KeyError
	err := error(mismatchErr("test.port", "int", "8080"))

	if !errors.As(err, &keyErr) {
		t.Fatal("errors.As should recover *KeyError")
	}
	if keyErr.Key != "test.port" || keyErr.Expected != "int" || keyErr.Actual != "8080" {
		t.Errorf("unexpected KeyError fields: %+v", keyErr)
	}
	if keyErr.Missing {
		t.Error("mismatch error should not be marked missing")
	}
}
