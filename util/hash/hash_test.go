package hash

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRWMap(t *testing.T) {
	m := NewRWMap[string, int]()
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Put("a", 1)
	m.PutAll(map[string]int{"b": 2, "c": 3})
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	calls := 0
	newFunc := func(k string) int { calls++; return len(k) }
	v, present := m.GetElse("dddd", newFunc)
	assert.False(t, present)
	assert.Equal(t, 4, v)
	v, present = m.GetElse("dddd", newFunc)
	assert.True(t, present)
	assert.Equal(t, 4, v)
	assert.Equal(t, 1, calls)

	vals := m.Values()
	sort.Ints(vals)
	assert.Equal(t, []int{1, 2, 3, 4}, vals)

	m.Del("a")
	assert.Equal(t, 3, m.Len())
	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestRWMapConcurrent(t *testing.T) {
	m := NewRWMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.GetElse(j, func(k int) int { return k * 2 })
				m.Put(100+i, i)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 108, m.Len())
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	assert.True(t, s.Has("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("c"))
	assert.Equal(t, 3, s.Len())

	keys := s.CopyKeys()
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
