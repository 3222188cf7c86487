// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// It exposes truthiness (`Truthy`), numeric detection (`IsNumber`) and the string
// coercion (`String`) shared by the joining, stamping and namespace helpers.
package conv
