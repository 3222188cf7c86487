package whatis

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mathObject struct{}

func (mathObject) TypeTag() string { return "Math" }

type console struct{}

func (*console) TypeTag() string { return "Console" }

type frozen struct{ sealed, frozen bool }

func (f *frozen) Extensible() bool { return !f.sealed }
func (f *frozen) Sealed() bool     { return f.sealed }
func (f *frozen) Frozen() bool     { return f.frozen }

type list struct{ items []any }

func (l list) Len() int        { return len(l.items) }
func (l list) Index(i int) any { return l.items[i] }

func TestSimplePredicates(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull(0))
	assert.True(t, IsUndefined(Undefined))
	assert.False(t, IsDeep(Undefined))
	assert.False(t, IsExtendable(Undefined))
	assert.True(t, IsPlainObject(map[string]any{}))
	assert.False(t, IsPlainObject([]any{}))
	assert.True(t, IsRegExp(regexp.MustCompile(".")))
	assert.True(t, IsNumber(uint16(3)))
	assert.False(t, IsNumber("3"))
	assert.True(t, IsDate(time.Now()))
	assert.True(t, IsMath(mathObject{}))
	assert.True(t, IsArray([]string{}))
	assert.False(t, IsArray([]int8{}))
	assert.True(t, IsConsole(&console{}))
	assert.True(t, IsFunction(func() {}))
	var nilFn func()
	assert.False(t, IsFunction(nilFn))
	assert.False(t, IsFunction("func"))
}

func TestIsArrayish(t *testing.T) {
	var nilSlice []int
	testCases := []struct {
		description string
		input       any
		expect      bool
	}{
		{description: "slice", input: []int{1}, expect: true},
		{description: "empty slice", input: []int{}, expect: true},
		{description: "array", input: [1]int{1}, expect: true},
		{description: "array like", input: list{items: []any{1}}, expect: true},
		{description: "nil slice", input: nilSlice, expect: false},
		{description: "string", input: "abc", expect: false},
		{description: "func", input: func() {}, expect: false},
		{description: "map", input: map[string]any{"length": 1}, expect: false},
		{description: "nil", input: nil, expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, IsArrayish(testCase.input), testCase.description)
	}
}

func TestIsDeep(t *testing.T) {
	testCases := []struct {
		description string
		input       any
		expect      bool
	}{
		{description: "nil", input: nil, expect: false},
		{description: "empty slice", input: []any{}, expect: false},
		{description: "slice", input: []any{nil}, expect: true},
		{description: "empty map", input: map[string]any{}, expect: false},
		{description: "map", input: map[string]any{"a": nil}, expect: true},
		{description: "struct with fields", input: point{}, expect: true},
		{description: "struct without exported fields", input: time.Now(), expect: false},
		{description: "number", input: 4, expect: false},
		{description: "string", input: "abc", expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, IsDeep(testCase.input), testCase.description)
	}
}

func TestIsElement(t *testing.T) {
	assert.True(t, IsElement(element("Div")))
	assert.True(t, IsElement(element("Anchor")))
	assert.False(t, IsElement(element("")))
	assert.False(t, IsElement(map[string]any{}))
	assert.False(t, IsElement(nil))
}

func TestIsElementList(t *testing.T) {
	testCases := []struct {
		description string
		input       any
		expect      bool
	}{
		{description: "node list", input: nodeList{}, expect: true},
		{description: "slice of elements", input: []any{element("Div"), element("Span")}, expect: true},
		{description: "mixed slice", input: []any{element("Div"), "span"}, expect: false},
		{description: "empty slice", input: []any{}, expect: false},
		{description: "object of elements", input: map[string]any{"a": element("Div")}, expect: true},
		{description: "object with other values", input: map[string]any{"a": element("Div"), "b": 1}, expect: false},
		{description: "empty object", input: map[string]any{}, expect: false},
		{description: "nil", input: nil, expect: false},
		{description: "element", input: element("Div"), expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, IsElementList(testCase.input), testCase.description)
	}
}

func TestIsExtendable(t *testing.T) {
	assert.True(t, IsExtendable(map[string]any{}))
	assert.True(t, IsExtendable(&point{}))
	assert.True(t, IsExtendable(func() {}))
	assert.False(t, IsExtendable(point{}))
	assert.False(t, IsExtendable("a"))
	assert.False(t, IsExtendable(false))
	var nilMap map[string]any
	assert.False(t, IsExtendable(nilMap))
}

func TestMutability(t *testing.T) {
	assert.True(t, IsExtensible(map[string]any{}))
	assert.False(t, IsSealed(map[string]any{}))
	assert.False(t, IsFrozen(map[string]any{}))
	assert.False(t, IsExtensible("a"))

	sealed := &frozen{sealed: true, frozen: true}
	assert.False(t, IsExtensible(sealed))
	assert.True(t, IsSealed(sealed))
	assert.True(t, IsFrozen(sealed))
	assert.False(t, IsFrozen(&frozen{}))
}

func TestElementsAndProperties(t *testing.T) {
	items, ok := Elements(list{items: []any{1, "b"}})
	assert.True(t, ok)
	assert.Equal(t, []any{1, "b"}, items)

	items, ok = Elements([]int{3, 4})
	assert.True(t, ok)
	assert.Equal(t, []any{3, 4}, items)

	properties, ok := Properties(map[string]any{"b": 2, "a": 1})
	assert.True(t, ok)
	assert.Equal(t, []Property{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, properties)

	properties, ok = Properties(&point{X: 1, Y: 2})
	assert.True(t, ok)
	assert.Equal(t, []Property{{Key: "X", Value: 1}, {Key: "Y", Value: 2}}, properties)

	_, ok = Properties(3)
	assert.False(t, ok)
}
