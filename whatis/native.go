package whatis

import (
	"reflect"
	"runtime"
	"strings"
)

// IsNative reports whether fn is a function shipped with the Go standard library,
// which tells an original method apart from one that has been swapped out.
func IsNative(fn any) bool {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	info := runtime.FuncForPC(rv.Pointer())
	if info == nil {
		return false
	}
	return isStandardSymbol(info.Name())
}

// isStandardSymbol checks a symbol such as "log.(*Logger).Println-fm" or
// "github.com/acme/pkg.fn": standard library import paths carry no dot in their
// first element.
func isStandardSymbol(name string) bool {
	if index := strings.Index(name, "/"); index != -1 {
		return !strings.Contains(name[:index], ".")
	}
	if index := strings.Index(name, "."); index > 0 {
		return name[:index] != "main"
	}
	return false
}
