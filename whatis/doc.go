// Package whatis resolves a stable type tag for any Go value and builds a family
// of predicates on top of it.
//
// Equality based checks collapse many distinct runtime classes into one coarse
// category, and identity checks break when a value comes from elsewhere, so the
// package asks reflection for the concrete class instead:
//
//	whatis.Tag(regexp.MustCompile("x"))        // "regexp"
//	whatis.Tag(regexp.MustCompile("x"), false) // "RegExp"
//	whatis.Describe([]int8{1})                 // "Int8 Array"
//
// Host objects that have no Go equivalent (the global object, a console, DOM like
// elements) report their own class by implementing Tagger. None of the functions
// in this package panic, whatever the input.
package whatis
