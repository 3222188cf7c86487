package namespace

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/viant/dangit/arrays"
	"github.com/viant/dangit/env"
	"github.com/viant/dangit/internal/conv"
	"github.com/viant/dangit/whatis"
)

var separatorsExpr = regexp.MustCompile(regexp.QuoteMeta(Separator) + `+`)

// Resolve walks the path made of segments, which may nest slices of strings and
// numbers at any depth, and returns the innermost value. Existing extendable values
// are never replaced; descending through one that cannot hold properties fails.
// Without any usable segment the base itself is returned.
func Resolve(segments []any, opts ...Option) (any, error) {
	o := &options{force: true}
	for _, opt := range opts {
		opt(o)
	}
	base, err := o.defaultBase()
	if err != nil {
		return nil, err
	}
	tokens := Tokens(segments...)
	if len(tokens) == 0 {
		return base, nil
	}
	path := Path(tokens...)
	current := base
	parts := strings.Split(path, Separator)
	for i, segment := range parts {
		container, ok := asObject(current)
		if !ok {
			return nil, &Error{Segment: parts[i-1], Path: path, Err: ErrNotWalkable}
		}
		if value, ok := container.Get(segment); ok && whatis.IsExtendable(value) {
			current = value
			continue
		}
		if !o.force {
			return nil, &Error{Segment: segment, Path: path, Err: ErrNotExtendable}
		}
		created := map[string]any{}
		container.Set(segment, created)
		current = created
	}
	return current, nil
}

// Args resolves a path from a loosely shaped argument list: a leading extendable
// value is the base, a trailing bool is the force flag, string and number values anywhere
// else form the path.
func Args(ctx *env.Context, args ...any) (any, error) {
	flat := arrays.Flatten(args...)
	opts := []Option{WithContext(ctx)}
	if len(flat) > 0 {
		if whatis.IsExtendable(flat[0]) {
			opts = append(opts, WithBase(flat[0]))
		}
		if force, ok := flat[len(flat)-1].(bool); ok {
			opts = append(opts, WithForce(force))
		}
	}
	return Resolve(flat, opts...)
}

// Tokens flattens values and keeps the strings and numbers, formatted as path text.
func Tokens(values ...any) []string {
	var result []string
	for _, item := range arrays.Flatten(values...) {
		if item == nil {
			continue
		}
		if reflect.ValueOf(item).Kind() == reflect.String || conv.IsNumber(item) {
			result = append(result, conv.String(item))
		}
	}
	return result
}

// Path joins tokens with the separator, collapsing runs of separators.
func Path(tokens ...string) string {
	return separatorsExpr.ReplaceAllString(strings.Join(tokens, Separator), Separator)
}

func (o *options) defaultBase() (any, error) {
	if whatis.IsExtendable(o.base) {
		if _, ok := asObject(o.base); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBase, whatis.Tag(o.base, false))
		}
		return o.base, nil
	}
	if global := o.context.GlobalObject(); global != nil {
		return global, nil
	}
	return map[string]any{}, nil
}

// asObject adapts an extendable container, it rejects anything that cannot hold properties.
func asObject(value any) (Object, bool) {
	if !whatis.IsExtendable(value) {
		return nil, false
	}
	switch actual := value.(type) {
	case map[string]any:
		return Map(actual), true
	case Object:
		return actual, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && mapType.AssignableTo(rv.Type().Elem()) {
		return reflectMap{value: rv}, true
	}
	return nil, false
}

var mapType = reflect.TypeOf(map[string]any{})

// reflectMap adapts maps keyed by a string type whose values can hold a map[string]any.
type reflectMap struct {
	value reflect.Value
}

func (m reflectMap) key(key string) reflect.Value {
	return reflect.ValueOf(key).Convert(m.value.Type().Key())
}

func (m reflectMap) Get(key string) (any, bool) {
	item := m.value.MapIndex(m.key(key))
	if !item.IsValid() {
		return nil, false
	}
	return item.Interface(), true
}

func (m reflectMap) Set(key string, value any) {
	m.value.SetMapIndex(m.key(key), reflect.ValueOf(value))
}
