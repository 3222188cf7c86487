// Package stamp zips keys with values and checks whether a collection carries
// one value throughout.
package stamp

import (
	"reflect"

	"github.com/viant/dangit/arrays"
	"github.com/viant/dangit/internal/conv"
	"github.com/viant/dangit/whatis"
)

// Object returns a new object assigning values to keys by position. Keys past the
// last value reuse the last value.
func Object(keys, values any) map[string]any {
	result := map[string]any{}
	keyList := arrays.Flatten(keys)
	valueList := arrays.Flatten(values)
	last := len(valueList) - 1
	for i, key := range keyList {
		var value any
		if last >= 0 {
			value = valueList[min(i, last)]
		}
		result[conv.String(key)] = value
	}
	return result
}

// Check reports whether every element (arrayish target) or property (object target)
// matches value. Without strict, only truthiness has to agree. ok is false when
// target has nothing to inspect.
func Check(target, value any, strict bool) (matched bool, ok bool) {
	if !conv.Truthy(target) {
		return false, false
	}
	var items []any
	if elements, isArrayish := whatis.Elements(target); isArrayish {
		items = elements
	} else if whatis.IsExtendable(target) || whatis.IsPlainObject(target) {
		properties, _ := whatis.Properties(target)
		for _, property := range properties {
			items = append(items, property.Value)
		}
	} else {
		return false, false
	}
	for _, item := range items {
		if strict && !reflect.DeepEqual(item, value) {
			return false, true
		}
		if !strict && !SamePolarity(item, value) {
			return false, true
		}
	}
	return true, true
}

// SamePolarity reports whether at least two values were given and all of them are
// truthy or all of them are falsy.
func SamePolarity(values ...any) bool {
	if len(values) < 2 {
		return false
	}
	polarity := conv.Truthy(values[0])
	for _, value := range values[1:] {
		if conv.Truthy(value) != polarity {
			return false
		}
	}
	return true
}
