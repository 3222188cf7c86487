// Package cli implements the dangit command line tool. Values given on the command
// line are decoded as YAML, so "1" is a number, "[a, b]" an array and "{a: 1}" a
// plain object; documents are loaded and stored through afs, so any supported URL
// (local path, file://, mem://, cloud storage) can be used for input and output.
package cli
