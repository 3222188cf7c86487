package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

	var visited []string
	m.Range(func(key string, value int) bool {
		visited = append(visited, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, visited)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	_, ok = m.Get("b")
	assert.False(t, ok)
}
