// Package dangit collects small generic helpers that keep ordinary code from
// tripping over unexpected input shapes.
//
// The helpers live in focused sub packages:
//  1. whatis – stable type tags (Tag, Describe) and the predicates built on them,
//  2. namespace – resolving or creating nested objects from a dot separated path,
//  3. arrays, join and stamp – flattening, string joining and key/value stamping,
//  4. env – an explicit execution context with a global object and a console.
//
// Example:
//
//	whatis.Tag(regexp.MustCompile("a+"))                    // "regexp"
//	leaf, _ := namespace.Resolve([]any{"a.b"}, namespace.WithBase(base))
//	join.SpaceTruthy(nil, "ls", "", "-la")                  // "ls -la"
//
// API lists every public helper, the dangit command line tool prints it with
// "dangit api".
package dangit
