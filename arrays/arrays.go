// Package arrays flattens heterogeneous argument lists into plain slices.
package arrays

import "github.com/viant/dangit/whatis"

// Flatten copies all values into a new single level slice. Arrayish values are
// expanded in place, at any depth, keeping their order.
func Flatten(values ...any) []any {
	result := make([]any, 0, len(values))
	queue := append([]any(nil), values...)
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if items, ok := whatis.Elements(item); ok {
			queue = append(append(make([]any, 0, len(items)+len(queue)), items...), queue...)
			continue
		}
		result = append(result, item)
	}
	return result
}

// ToArray behaves like a concatenation: arrayish values are expanded one level
// deep, anything else is appended as is.
func ToArray(values ...any) []any {
	result := make([]any, 0, len(values))
	for _, item := range values {
		if items, ok := whatis.Elements(item); ok {
			result = append(result, items...)
			continue
		}
		result = append(result, item)
	}
	return result
}
