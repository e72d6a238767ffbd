package confkit

// Accessor narrows the untyped values of a Source into concrete Go types.
// It holds no state beyond the Source reference and is safe for concurrent
// use. The required and Optional getters fail with a *KeyError; the Or
// getters never fail and substitute the caller's default instead.
type Accessor struct {
	src Source
}

// NewAccessor wraps a Source in a typed Accessor.
func NewAccessor(src Source) *Accessor {
	return &Accessor{src: src}
}

// scalarType constrains getters to the four supported scalar kinds.
type scalarType interface {
	~string | ~int | ~bool | ~float64
}

// scalarAt fetches key and narrows it to T, requiring an exact kind match.
func scalarAt[T scalarType](a *Accessor, key string, want Kind) (T, error) {
	var zero T

	raw := a.src.Fetch(key)
	kind, val := valueOf(raw)
	if kind == KindNull {
		return zero, missingErr(key, want.String())
	}
	if kind != want {
		return zero, mismatchErr(key, want.String(), raw)
	}
	return val.(T), nil
}

// optionalAt is scalarAt with null mapped to an unset Optional instead of a
// missing-key failure. A non-null value of the wrong kind still fails.
func optionalAt[T scalarType](a *Accessor, key string, want Kind) (Optional[T], error) {
	raw := a.src.Fetch(key)
	kind, val := valueOf(raw)
	if kind == KindNull {
		return Optional[T]{}, nil
	}
	if kind != want {
		return Optional[T]{}, mismatchErr(key, want.String(), raw)
	}
	return Optional[T]{Value: val.(T), Set: true}, nil
}

// sliceAt fetches key as a sequence of uniformly T-kinded elements. One
// off-kind element invalidates the whole result.
func sliceAt[T scalarType](a *Accessor, key string, want Kind) ([]T, error) {
	expected := "list of " + want.String()

	raw := a.src.Fetch(key)
	kind, val := valueOf(raw)
	if kind == KindNull {
		return nil, missingErr(key, expected)
	}
	if kind != KindList {
		return nil, mismatchErr(key, expected, raw)
	}

	list := val.([]any)
	out := make([]T, len(list))
	for i, elem := range list {
		elemKind, elemVal := valueOf(elem)
		if elemKind != want {
			return nil, mismatchErr(key, expected, raw)
		}
		out[i] = elemVal.(T)
	}
	return out, nil
}

// mapAt fetches key as a string-keyed mapping of uniformly T-kinded values.
// Non-string keys classify the raw value as KindInvalid and fail the whole
// map.
func mapAt[T scalarType](a *Accessor, key string, want Kind) (map[string]T, error) {
	expected := "map of " + want.String()

	raw := a.src.Fetch(key)
	kind, val := valueOf(raw)
	if kind == KindNull {
		return nil, missingErr(key, expected)
	}
	if kind != KindMap {
		return nil, mismatchErr(key, expected, raw)
	}

	m := val.(map[string]any)
	out := make(map[string]T, len(m))
	for mk, mv := range m {
		elemKind, elemVal := valueOf(mv)
		if elemKind != want {
			return nil, mismatchErr(key, expected, raw)
		}
		out[mk] = elemVal.(T)
	}
	return out, nil
}

// orAt suppresses every scalarAt failure in favor of the default.
func orAt[T scalarType](a *Accessor, key string, want Kind, def T) T {
	v, err := scalarAt[T](a, key, want)
	if err != nil {
		return def
	}
	return v
}

// String returns the string stored at key. It fails with ErrMissingKey when
// the key is absent or null, and with ErrTypeMismatch for any other kind.
func (a *Accessor) String(key string) (string, error) {
	return scalarAt[string](a, key, KindString)
}

// StringOr returns the string at key, or def when the key is missing or
// holds a different kind.
func (a *Accessor) StringOr(key string, def string) string {
	return orAt[string](a, key, KindString, def)
}

// OptionalString returns an unset Optional when key holds null; a non-null
// value of the wrong kind still fails.
func (a *Accessor) OptionalString(key string) (Optional[string], error) {
	return optionalAt[string](a, key, KindString)
}

// StringSlice returns the sequence at key, requiring every element to be a
// string.
func (a *Accessor) StringSlice(key string) ([]string, error) {
	return sliceAt[string](a, key, KindString)
}

// StringMap returns the mapping at key, requiring string keys and string
// values throughout.
func (a *Accessor) StringMap(key string) (map[string]string, error) {
	return mapAt[string](a, key, KindString)
}

// Int returns the int stored at key. A float or numeric string is a
// mismatch, never coerced.
func (a *Accessor) Int(key string) (int, error) {
	return scalarAt[int](a, key, KindInt)
}

// IntOr returns the int at key, or def on any failure.
func (a *Accessor) IntOr(key string, def int) int {
	return orAt[int](a, key, KindInt, def)
}

// OptionalInt returns an unset Optional when key holds null.
func (a *Accessor) OptionalInt(key string) (Optional[int], error) {
	return optionalAt[int](a, key, KindInt)
}

// IntSlice returns the sequence at key, requiring every element to be an
// int.
func (a *Accessor) IntSlice(key string) ([]int, error) {
	return sliceAt[int](a, key, KindInt)
}

// IntMap returns the mapping at key with uniformly int values.
func (a *Accessor) IntMap(key string) (map[string]int, error) {
	return mapAt[int](a, key, KindInt)
}

// Bool returns the bool stored at key.
func (a *Accessor) Bool(key string) (bool, error) {
	return scalarAt[bool](a, key, KindBool)
}

// BoolOr returns the bool at key, or def on any failure.
func (a *Accessor) BoolOr(key string, def bool) bool {
	return orAt[bool](a, key, KindBool, def)
}

// OptionalBool returns an unset Optional when key holds null.
func (a *Accessor) OptionalBool(key string) (Optional[bool], error) {
	return optionalAt[bool](a, key, KindBool)
}

// BoolSlice returns the sequence at key, requiring every element to be a
// bool.
func (a *Accessor) BoolSlice(key string) ([]bool, error) {
	return sliceAt[bool](a, key, KindBool)
}

// BoolMap returns the mapping at key with uniformly bool values.
func (a *Accessor) BoolMap(key string) (map[string]bool, error) {
	return mapAt[bool](a, key, KindBool)
}

// Float returns the float64 stored at key. An int is a mismatch, never
// widened.
func (a *Accessor) Float(key string) (float64, error) {
	return scalarAt[float64](a, key, KindFloat)
}

// FloatOr returns the float64 at key, or def on any failure.
func (a *Accessor) FloatOr(key string, def float64) float64 {
	return orAt[float64](a, key, KindFloat, def)
}

// OptionalFloat returns an unset Optional when key holds null.
func (a *Accessor) OptionalFloat(key string) (Optional[float64], error) {
	return optionalAt[float64](a, key, KindFloat)
}

// FloatSlice returns the sequence at key, requiring every element to be a
// float.
func (a *Accessor) FloatSlice(key string) ([]float64, error) {
	return sliceAt[float64](a, key, KindFloat)
}

// FloatMap returns the mapping at key with uniformly float values.
func (a *Accessor) FloatMap(key string) (map[string]float64, error) {
	return mapAt[float64](a, key, KindFloat)
}
