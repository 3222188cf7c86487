package namespace

import "github.com/viant/dangit/env"

// Separator delimits path segments.
const Separator = "."

// Object is a property container that can be resolved through.
type Object interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Map adapts a plain map to Object.
type Map map[string]any

func (m Map) Get(key string) (any, bool) {
	value, ok := m[key]
	return value, ok
}

func (m Map) Set(key string, value any) {
	m[key] = value
}

// Option customizes a resolution.
type Option func(*options)

type options struct {
	base    any
	force   bool
	context *env.Context
}

// WithBase sets the object the path is resolved on.
func WithBase(base any) Option { return func(o *options) { o.base = base } }

// WithForce controls whether missing or non extendable segments are replaced by
// new objects (true, the default) or fail resolution.
func WithForce(force bool) Option { return func(o *options) { o.force = force } }

// WithContext supplies the execution context whose global object is the default base.
func WithContext(ctx *env.Context) Option { return func(o *options) { o.context = ctx } }
