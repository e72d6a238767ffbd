package confkit

import (
	"math"
	"reflect"
)

// Source provides raw configuration values from backends (env vars, nested
// config trees). Fetch returns nil for a missing key and never fails; the
// Accessor layered on top is responsible for all type enforcement.
type Source interface {
	Fetch(key string) any
}

// Snapshotter is an optional Source capability that exposes every value the
// source currently holds, keyed the way Fetch addresses them. Dump requires
// it.
type Snapshotter interface {
	Snapshot() map[string]any
}

// Kind identifies the runtime shape of a raw value. Every value a Source
// returns normalizes to exactly one Kind before the Accessor narrows it.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindList:    "list",
	KindMap:     "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// valueOf classifies a raw value and returns it in canonical form: ints of
// any width become int, floats become float64, slices become []any, and
// string-keyed maps become map[string]any. A map with a non-string key and
// any value outside the closed set classify as KindInvalid, which no getter
// accepts.
func valueOf(raw any) (Kind, any) {
	switch v := raw.(type) {
	case nil:
		return KindNull, nil
	case bool:
		return KindBool, v
	case int:
		return KindInt, v
	case int8:
		return KindInt, int(v)
	case int16:
		return KindInt, int(v)
	case int32:
		return KindInt, int(v)
	case int64:
		if int64(int(v)) != v {
			// 32-bit platform overflow: same fallback the numeric caster uses.
			return KindFloat, float64(v)
		}
		return KindInt, int(v)
	case uint:
		if uint64(v) > math.MaxInt {
			return KindFloat, float64(v)
		}
		return KindInt, int(v)
	case uint8:
		return KindInt, int(v)
	case uint16:
		return KindInt, int(v)
	case uint32:
		return KindInt, int(v)
	case uint64:
		if v > math.MaxInt {
			return KindFloat, float64(v)
		}
		return KindInt, int(v)
	case float32:
		return KindFloat, float64(v)
	case float64:
		return KindFloat, v
	case string:
		return KindString, v
	case []any:
		return KindList, v
	case map[string]any:
		return KindMap, v
	}

	// Typed slices and maps (e.g. []string, map[string]int) reach here when
	// a tree is built from Go literals rather than a decoder.
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			list[i] = rv.Index(i).Interface()
		}
		return KindList, list
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		for _, mk := range rv.MapKeys() {
			key, ok := mk.Interface().(string)
			if !ok {
				return KindInvalid, raw
			}
			m[key] = rv.MapIndex(mk).Interface()
		}
		return KindMap, m
	}

	return KindInvalid, raw
}

// Optional distinguishes "not set" from "zero value". Nullable getters
// return an unset Optional only when the source holds an explicit null.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}
