package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *int
	testCases := []struct {
		description string
		input       any
		expect      bool
	}{
		{description: "nil", input: nil, expect: false},
		{description: "false", input: false, expect: false},
		{description: "true", input: true, expect: true},
		{description: "zero int", input: 0, expect: false},
		{description: "non zero uint", input: uint8(3), expect: true},
		{description: "NaN", input: math.NaN(), expect: false},
		{description: "empty string", input: "", expect: false},
		{description: "string", input: "x", expect: true},
		{description: "nil map", input: nilMap, expect: false},
		{description: "nil pointer", input: nilPtr, expect: false},
		{description: "empty map", input: map[string]any{}, expect: true},
		{description: "empty slice", input: []int{}, expect: true},
		{description: "struct", input: struct{}{}, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Truthy(testCase.input), testCase.description)
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		description string
		input       any
		expect      string
	}{
		{description: "nil", input: nil, expect: ""},
		{description: "string", input: "abc", expect: "abc"},
		{description: "int", input: -7, expect: "-7"},
		{description: "float", input: 1.5, expect: "1.5"},
		{description: "whole float", input: float64(2), expect: "2"},
		{description: "float32", input: float32(0.1), expect: "0.1"},
		{description: "NaN", input: math.NaN(), expect: "NaN"},
		{description: "bool", input: false, expect: "false"},
		{description: "error", input: errors.New("boom"), expect: "boom"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, String(testCase.input), testCase.description)
	}
}
