package confkit

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Decode resolves key to a mapping and decodes it into target, which must
// be a non-nil struct pointer. Field names map to keys via the `conf` tag
// or, absent one, the lowercased field name. Decoding is strict: no weak
// typing, values must already have the field's kind. The empty key decodes
// the source's root mapping.
func (a *Accessor) Decode(key string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("confkit: decode target must be a non-nil pointer, got %T", target)
	}

	raw := a.src.Fetch(key)
	kind, val := valueOf(raw)
	if kind == KindNull {
		return missingErr(key, KindMap.String())
	}
	if kind != KindMap {
		return mismatchErr(key, KindMap.String(), raw)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "conf",
	})
	if err != nil {
		return fmt.Errorf("confkit: decoder creation failed: %w", err)
	}

	if err := decoder.Decode(val.(map[string]any)); err != nil {
		return fmt.Errorf("confkit: decode key '%s': %w", key, err)
	}
	return nil
}
