package env

import "github.com/viant/dangit/internal/collection"

// Global is the top level object of an execution context.
type Global struct {
	properties *collection.SyncMap[string, any]
}

// TypeTag reports the class of the global object.
func (g *Global) TypeTag() string { return "global" }

// Get returns an own property.
func (g *Global) Get(key string) (any, bool) {
	return g.properties.Get(key)
}

// Set assigns an own property.
func (g *Global) Set(key string, value any) {
	g.properties.Put(key, value)
}

// Delete removes an own property, it reports whether the property existed.
func (g *Global) Delete(key string) bool {
	return g.properties.Delete(key)
}

// Keys returns own property names in ascending order.
func (g *Global) Keys() []string {
	return g.properties.Keys()
}

// Range visits own properties in key order until f returns false.
func (g *Global) Range(f func(key string, value any) bool) {
	g.properties.Range(f)
}

// Len returns the number of own properties.
func (g *Global) Len() int {
	return g.properties.Len()
}

// NewGlobal creates an empty global object.
func NewGlobal() *Global {
	return &Global{properties: collection.NewSyncMap[string, any]()}
}
