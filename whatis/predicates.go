package whatis

import (
	"reflect"
	"regexp"
	"sort"

	"github.com/viant/dangit/internal/conv"
)

var elementExpr = regexp.MustCompile(`html\w+element`)

// IsNull reports whether value is nil or a nil reference.
func IsNull(value any) bool { return Tag(value) == "null" }

// IsUndefined reports whether value is the Undefined marker.
func IsUndefined(value any) bool { return Tag(value) == "undefined" }

// IsPlainObject reports whether value is a string keyed map or an anonymous struct.
func IsPlainObject(value any) bool { return Tag(value) == "object" }

// IsRegExp reports whether value is a regular expression.
func IsRegExp(value any) bool { return Tag(value) == "regexp" }

// IsNumber reports whether value is an integer or floating point number.
func IsNumber(value any) bool { return Tag(value) == "number" }

// IsDate reports whether value is a time.Time.
func IsDate(value any) bool { return Tag(value) == "date" }

// IsMath reports whether value is tagged as the Math object.
func IsMath(value any) bool { return Tag(value) == "math" }

// IsArray reports whether value is a slice or array that is not a typed numeric array.
func IsArray(value any) bool { return Tag(value) == "array" }

// IsConsole reports whether value is tagged as a console.
func IsConsole(value any) bool { return Tag(value) == "console" }

// IsSpeechSynthesisUtterance reports whether value is tagged as a speech synthesis utterance.
func IsSpeechSynthesisUtterance(value any) bool {
	return Tag(value) == "speechsynthesisutterance"
}

// IsFunction reports whether value is a non-nil func.
func IsFunction(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsArrayish reports whether value exposes a length: slices, arrays and ArrayLike
// values qualify, strings and functions never do.
func IsArrayish(value any) bool {
	_, ok := Elements(value)
	return ok
}

// Elements returns the items of an arrayish value.
func Elements(value any) ([]any, bool) {
	if !conv.Truthy(value) {
		return nil, false
	}
	if list, ok := value.([]any); ok {
		return list, true
	}
	if arrayLike, ok := value.(ArrayLike); ok {
		result := make([]any, arrayLike.Len())
		for i := range result {
			result[i] = arrayLike.Index(i)
		}
		return result, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	result := make([]any, rv.Len())
	for i := range result {
		item := rv.Index(i)
		if item.CanInterface() {
			result[i] = item.Interface()
		}
	}
	return result, true
}

// Properties returns the enumerable own properties of a map with string keys, a
// struct (exported fields) or an Enumerable value, ordered by key.
func Properties(value any) ([]Property, bool) {
	if !conv.Truthy(value) {
		return nil, false
	}
	if enumerable, ok := value.(Enumerable); ok {
		var result []Property
		enumerable.Range(func(key string, item any) bool {
			result = append(result, Property{Key: key, Value: item})
			return true
		})
		return result, true
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		result := make([]Property, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			result = append(result, Property{Key: iter.Key().String(), Value: iter.Value().Interface()})
		}
		sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
		return result, true
	case reflect.Struct:
		var result []Property
		rType := rv.Type()
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			if !field.IsExported() {
				continue
			}
			result = append(result, Property{Key: field.Name, Value: rv.Field(i).Interface()})
		}
		return result, true
	}
	return nil, false
}

// IsDeep reports whether value contains something: a non-empty arrayish value or
// an object with at least one enumerable own property.
func IsDeep(value any) bool {
	if items, ok := Elements(value); ok {
		return len(items) > 0
	}
	properties, ok := Properties(value)
	return ok && len(properties) > 0
}

// IsElement reports whether value is a DOM like element, by tag rather than by shape.
func IsElement(value any) bool {
	return elementExpr.MatchString(Tag(value))
}

// IsElementList reports whether value is a non-empty collection of elements. Objects
// qualify when every enumerable property holds an element.
func IsElementList(value any) bool {
	if !conv.Truthy(value) {
		return false
	}
	switch Tag(value) {
	case "nodelist", "htmlcollection":
		return true
	}
	if items, ok := Elements(value); ok {
		if len(items) == 0 {
			return false
		}
		for _, item := range items {
			if !IsElement(item) {
				return false
			}
		}
		return true
	}
	properties, ok := Properties(value)
	if !ok || len(properties) == 0 {
		return false
	}
	for _, property := range properties {
		if !IsElement(property.Value) {
			return false
		}
	}
	return true
}

// IsExtendable reports whether it makes sense to add a property to value: a non-nil
// map, pointer or function.
func IsExtendable(value any) bool {
	if !conv.Truthy(value) {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func:
		return true
	}
	return false
}

// IsExtensible reports whether properties may be added to value; values opt out by
// implementing Extensible.
func IsExtensible(value any) bool {
	if !IsExtendable(value) {
		return false
	}
	if extensible, ok := value.(Extensible); ok {
		return extensible.Extensible()
	}
	return true
}

// IsSealed reports whether an extendable value reports itself as sealed.
func IsSealed(value any) bool {
	if !IsExtendable(value) {
		return false
	}
	sealer, ok := value.(Sealer)
	return ok && sealer.Sealed()
}

// IsFrozen reports whether an extendable value reports itself as frozen.
func IsFrozen(value any) bool {
	if !IsExtendable(value) {
		return false
	}
	freezer, ok := value.(Freezer)
	return ok && freezer.Frozen()
}
