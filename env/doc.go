// Package env models the execution context that host glue relies on: a global
// object carrying named properties and a console whose methods may have been
// replaced by someone else.
//
// A Context is always passed explicitly; nothing in this module reads ambient
// process state.
package env
