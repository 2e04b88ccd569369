package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string
	Tags []string
}

func cloneItem(i item) item {
	i.Tags = append([]string(nil), i.Tags...)
	return i
}

func TestStore_PutKeepsInsertionOrder(t *testing.T) {
	s := NewStore(cloneItem)
	s.Put("b", item{Name: "b"})
	s.Put("a", item{Name: "a"})
	s.Put("c", item{Name: "c"})
	s.Put("a", item{Name: "a2"})

	values := s.Values()
	require.Len(t, values, 3)
	assert.Equal(t, []string{"b", "a2", "c"}, []string{values[0].Name, values[1].Name, values[2].Name})
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore(cloneItem)
	in := item{Name: "x", Tags: []string{"one"}}
	s.Put("x", in)
	in.Tags[0] = "mutated-input"

	got, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, "one", got.Tags[0])

	got.Tags[0] = "mutated-output"
	again, _ := s.Get("x")
	assert.Equal(t, "one", again.Tags[0])
}

func TestStore_Update(t *testing.T) {
	s := NewStore[item](nil)
	s.Put("x", item{Name: "x"})

	updated, ok := s.Update("x", func(i *item) { i.Name = "y" })
	require.True(t, ok)
	assert.Equal(t, "y", updated.Name)

	called := false
	_, ok = s.Update("missing", func(*item) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
}

func TestStore_DeleteAndReset(t *testing.T) {
	s := NewStore[item](nil)
	s.Put("a", item{Name: "a"})
	s.Put("b", item{Name: "b"})

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "b", s.Values()[0].Name)

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
	assert.NotNil(t, s.Values())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore(cloneItem)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", n%10)
			s.Put(id, item{Name: id, Tags: []string{id}})
			_, _ = s.Get(id)
			_ = s.Values()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, s.Len())
}
