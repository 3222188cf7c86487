package dangit

import (
	"sort"

	"github.com/viant/dangit/arrays"
	"github.com/viant/dangit/env"
	"github.com/viant/dangit/join"
	"github.com/viant/dangit/namespace"
	"github.com/viant/dangit/stamp"
	"github.com/viant/dangit/whatis"
)

// Name is the application name.
const Name = "dangit"

// Version is the library version.
const Version = "0.4.0"

// Entry describes a public helper.
type Entry struct {
	Name  string
	Type  string
	Value any
}

// Symbol returns a short marker for the entry type, "()" for functions.
func (e *Entry) Symbol() string {
	switch e.Type {
	case "function":
		return "()"
	case "array":
		return "[]"
	}
	return ""
}

var registry = map[string]any{
	"whatis.Tag":                        whatis.Tag,
	"whatis.Describe":                   whatis.Describe,
	"whatis.IsNative":                   whatis.IsNative,
	"whatis.IsNull":                     whatis.IsNull,
	"whatis.IsUndefined":                whatis.IsUndefined,
	"whatis.IsPlainObject":              whatis.IsPlainObject,
	"whatis.IsRegExp":                   whatis.IsRegExp,
	"whatis.IsNumber":                   whatis.IsNumber,
	"whatis.IsDate":                     whatis.IsDate,
	"whatis.IsMath":                     whatis.IsMath,
	"whatis.IsArray":                    whatis.IsArray,
	"whatis.IsFunction":                 whatis.IsFunction,
	"whatis.IsConsole":                  whatis.IsConsole,
	"whatis.IsSpeechSynthesisUtterance": whatis.IsSpeechSynthesisUtterance,
	"whatis.IsArrayish":                 whatis.IsArrayish,
	"whatis.IsDeep":                     whatis.IsDeep,
	"whatis.IsElement":                  whatis.IsElement,
	"whatis.IsElementList":              whatis.IsElementList,
	"whatis.IsExtendable":               whatis.IsExtendable,
	"whatis.IsExtensible":               whatis.IsExtensible,
	"whatis.IsSealed":                   whatis.IsSealed,
	"whatis.IsFrozen":                   whatis.IsFrozen,
	"env.IsTheGlobalObject":             env.IsTheGlobalObject,
	"env.ResetConsole":                  env.ResetConsole,
	"arrays.Flatten":                    arrays.Flatten,
	"arrays.ToArray":                    arrays.ToArray,
	"namespace.Resolve":                 namespace.Resolve,
	"namespace.Args":                    namespace.Args,
	"stamp.Object":                      stamp.Object,
	"stamp.Check":                       stamp.Check,
	"stamp.SamePolarity":                stamp.SamePolarity,
	"join.Join":                         join.Join,
	"join.Truthy":                       join.Truthy,
	"join.Space":                        join.Space,
	"join.SpaceTruthy":                  join.SpaceTruthy,
	"join.Quote":                        join.Quote,
	"join.QuoteTruthy":                  join.QuoteTruthy,
	"Version":                           Version,
}

// API returns the public helpers ordered by name.
func API() []*Entry {
	result := make([]*Entry, 0, len(registry))
	for name, value := range registry {
		result = append(result, &Entry{Name: name, Type: whatis.Tag(value), Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
