// Package namespace resolves, and when asked creates, a chain of nested objects
// addressed by a dot separated path.
//
//	base := map[string]any{}
//	leaf, _ := namespace.Resolve([]any{"app", []string{"models", "user"}}, namespace.WithBase(base))
//	// base == {"app": {"models": {"user": {}}}}, leaf is the innermost object
//
// Containers are map[string]any values or anything implementing Object, such as
// the global object of an env.Context. Resolution mutates the base in place when
// force mode (the default) has to create or overwrite a segment.
package namespace
