// Package join builds strings from argument lists, with an optional separator,
// truthiness filter and surrounding token. It is handy for paths, URLs, sentences
// and shell commands.
package join

import (
	"strings"

	"github.com/viant/dangit/internal/conv"
)

// Options controls how values are joined.
type Options struct {
	// Separator is placed between kept values.
	Separator string
	// Polarity keeps only truthy (true) or falsy (false) values; nil keeps all.
	Polarity *bool
	// Surround is placed on either side of the joined result.
	Surround string
}

// Join concatenates values according to options, which may be nil.
func Join(options *Options, values ...any) string {
	var opts Options
	if options != nil {
		opts = *options
	}
	var builder strings.Builder
	first := true
	for _, value := range values {
		if opts.Polarity != nil && conv.Truthy(value) != *opts.Polarity {
			continue
		}
		if !first {
			builder.WriteString(opts.Separator)
		}
		first = false
		builder.WriteString(conv.String(value))
	}
	if opts.Surround == "" {
		return builder.String()
	}
	return opts.Surround + builder.String() + opts.Surround
}

// Truthy joins truthy values only.
func Truthy(options *Options, values ...any) string {
	opts := derive(options)
	opts.Polarity = polarity(true)
	return Join(opts, values...)
}

// Space joins values with a single space.
func Space(options *Options, values ...any) string {
	opts := derive(options)
	opts.Separator = " "
	return Join(opts, values...)
}

// SpaceTruthy joins truthy values with a single space.
func SpaceTruthy(options *Options, values ...any) string {
	opts := derive(options)
	opts.Polarity = polarity(true)
	opts.Separator = " "
	return Join(opts, values...)
}

// Quote joins values and wraps the result in double quotes.
func Quote(options *Options, values ...any) string {
	opts := derive(options)
	opts.Surround = `"`
	return Join(opts, values...)
}

// QuoteTruthy joins truthy values and wraps the result in double quotes.
func QuoteTruthy(options *Options, values ...any) string {
	opts := derive(options)
	opts.Polarity = polarity(true)
	opts.Surround = `"`
	return Join(opts, values...)
}

// derive copies options so presets never leak into the caller's value.
func derive(options *Options) *Options {
	if options == nil {
		return &Options{}
	}
	result := *options
	return &result
}

func polarity(value bool) *bool {
	return &value
}
