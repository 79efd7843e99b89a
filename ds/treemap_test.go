package ds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdfio/bdf.go/ds"
)

func TestTreeMap_KeyOrder(t *testing.T) {
	m := ds.NewTreeMap[string, int]()
	m.Set("cherry", 3)
	m.Set("apple", 1)
	m.Set("banana", 2)

	require.Equal(t, []string{"apple", "banana", "cherry"}, m.Keys())
	require.Equal(t, 3, m.Size())
}

func TestTreeMap_SetOverwrites(t *testing.T) {
	m := ds.NewTreeMap[int8, string]()
	m.Set(1, "first")
	m.Set(1, "second")

	require.Equal(t, 1, m.Size())
	v, exists := m.Get(1)
	require.True(t, exists)
	require.Equal(t, "second", v)
}

func TestTreeMap_GetMissing(t *testing.T) {
	m := ds.NewTreeMap[uint32, string]()
	_, exists := m.Get(7)
	require.False(t, exists)
	require.False(t, m.Has(7))
}

func TestTreeMap_Delete(t *testing.T) {
	m := ds.NewTreeMap[uint32, uint32]()
	m.Set(1, 10)
	m.Set(2, 20)
	m.Delete(1)

	require.False(t, m.Has(1))
	require.True(t, m.Has(2))
	require.Equal(t, 1, m.Size())

	m.Clear()
	require.Equal(t, 0, m.Size())
}

func TestTreeMap_ForEachAbort(t *testing.T) {
	m := ds.NewTreeMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}

	var visited int
	completed := m.ForEach(func(key, _ int) bool {
		visited++

		return key < 4
	})
	require.False(t, completed)
	require.Equal(t, 5, visited)
}

func TestPair(t *testing.T) {
	p := ds.NewPair("x", 1)
	require.Equal(t, "x", p.First)
	require.Equal(t, 1, p.Second)
}
