package whatis

import (
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var tokenExpr = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*`)

// known maps types without a direct class of their own to the class they play.
var known = map[reflect.Type]string{
	reflect.TypeOf(time.Time{}):      "Date",
	reflect.TypeOf(&time.Time{}):     "Date",
	reflect.TypeOf(regexp.Regexp{}):  "RegExp",
	reflect.TypeOf(&regexp.Regexp{}): "RegExp",
	reflect.TypeOf(big.Int{}):        "BigInt",
	reflect.TypeOf(&big.Int{}):       "BigInt",
	reflect.TypeOf([]int8{}):         "Int8Array",
	reflect.TypeOf([]uint8{}):        "Uint8Array",
	reflect.TypeOf([]int16{}):        "Int16Array",
	reflect.TypeOf([]uint16{}):       "Uint16Array",
	reflect.TypeOf([]int32{}):        "Int32Array",
	reflect.TypeOf([]uint32{}):       "Uint32Array",
	reflect.TypeOf([]float32{}):      "Float32Array",
	reflect.TypeOf([]float64{}):      "Float64Array",
	reflect.TypeOf([]int64{}):        "BigInt64Array",
	reflect.TypeOf([]uint64{}):       "BigUint64Array",
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Tag returns the class token of value. The token is lower cased unless
// lowerCase is given as false.
func Tag(value any, lowerCase ...bool) string {
	result := token(reflect.ValueOf(value))
	if len(lowerCase) == 0 || lowerCase[0] {
		result = strings.ToLower(result)
	}
	return result
}

// Describe returns a human friendly class name, "RegExp" becomes "Reg Exp".
// Casing is preserved unless lowerCase is given as true.
func Describe(value any, lowerCase ...bool) string {
	lower := len(lowerCase) > 0 && lowerCase[0]
	return humanize(Tag(value, lower))
}

func humanize(text string) string {
	runes := []rune(text)
	var builder strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			builder.WriteRune(' ')
		}
		builder.WriteRune(r)
	}
	return strings.TrimSpace(builder.String())
}

func token(rv reflect.Value) string {
	if !rv.IsValid() {
		return "Null"
	}
	if isNil(rv) {
		return "Null"
	}
	if rv.CanInterface() {
		value := rv.Interface()
		if _, ok := value.(undefined); ok {
			return "Undefined"
		}
		if tagger, ok := value.(Tagger); ok {
			if result := normalize(tagger.TypeTag()); result != "" {
				return result
			}
		}
	}
	if name, ok := known[rv.Type()]; ok {
		return name
	}
	if rv.Type().Implements(errorType) {
		return "Error"
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		return token(rv.Elem())
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "Number"
	case reflect.Complex64, reflect.Complex128:
		return "Complex"
	case reflect.String:
		return "String"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Func:
		return "Function"
	case reflect.Chan:
		return "Promise"
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return "Object"
		}
		return "Map"
	}
	if result := normalize(rv.Type().Name()); result != "" {
		return result
	}
	return "Object"
}

// normalize keeps the leading identifier of a class name, "SyncMap[string,int]" becomes "SyncMap".
func normalize(name string) string {
	return tokenExpr.FindString(name)
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
