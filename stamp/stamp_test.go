package stamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObject(t *testing.T) {
	testCases := []struct {
		description string
		keys        any
		values      any
		expect      map[string]any
	}{
		{description: "one value for all", keys: []string{"a", "b"}, values: true, expect: map[string]any{"a": true, "b": true}},
		{description: "zipped", keys: []any{"a", []any{"b", "c"}}, values: []any{1, 2, 3}, expect: map[string]any{"a": 1, "b": 2, "c": 3}},
		{description: "values run out", keys: []string{"a", "b", "c"}, values: []int{1, 2}, expect: map[string]any{"a": 1, "b": 2, "c": 2}},
		{description: "numeric keys", keys: []int{1, 2}, values: "x", expect: map[string]any{"1": "x", "2": "x"}},
		{description: "no values", keys: "a", values: []any{}, expect: map[string]any{"a": nil}},
		{description: "no keys", keys: []any{}, values: 1, expect: map[string]any{}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Object(testCase.keys, testCase.values), testCase.description)
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		description   string
		target        any
		value         any
		strict        bool
		expectMatched bool
		expectOK      bool
	}{
		{description: "falsy target", target: nil, value: true, expectOK: false},
		{description: "primitive target", target: "abc", value: true, expectOK: false},
		{description: "loose slice match", target: []any{1, "a", true}, value: true, expectMatched: true, expectOK: true},
		{description: "loose slice mismatch", target: []any{1, 0}, value: true, expectMatched: false, expectOK: true},
		{description: "strict slice match", target: []any{2, 2}, value: 2, strict: true, expectMatched: true, expectOK: true},
		{description: "strict slice mismatch", target: []any{2, 2.0}, value: 2, strict: true, expectMatched: false, expectOK: true},
		{description: "loose object match", target: map[string]any{"a": "", "b": 0}, value: false, expectMatched: true, expectOK: true},
		{description: "strict object mismatch", target: map[string]any{"a": 1, "b": 2}, value: 1, strict: true, expectMatched: false, expectOK: true},
		{description: "empty object", target: map[string]any{}, value: 1, expectMatched: true, expectOK: true},
	}
	for _, testCase := range testCases {
		matched, ok := Check(testCase.target, testCase.value, testCase.strict)
		assert.Equal(t, testCase.expectOK, ok, testCase.description)
		assert.Equal(t, testCase.expectMatched, matched, testCase.description)
	}
}

func TestSamePolarity(t *testing.T) {
	assert.False(t, SamePolarity())
	assert.False(t, SamePolarity(true))
	assert.True(t, SamePolarity(1, "a", []any{}))
	assert.True(t, SamePolarity(0, "", nil, false))
	assert.False(t, SamePolarity(1, 0))
}
