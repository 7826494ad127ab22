package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_PopOrder(t *testing.T) {
	f := New(4)
	f.Push(State{Cost: 3.0, Node: "c"})
	f.Push(State{Cost: 1.0, Node: "a"})
	f.Push(State{Cost: 2.0, Node: "b"})

	s, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", s.Node)

	s, ok = f.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", s.Node)

	s, ok = f.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", s.Node)

	_, ok = f.Pop()
	assert.False(t, ok)
}

func TestFrontier_Top(t *testing.T) {
	f := New(0)

	_, ok := f.Top()
	assert.False(t, ok)

	f.Push(State{Cost: 5.0, Node: "x"})
	f.Push(State{Cost: 0.5, Node: "y"})

	s, ok := f.Top()
	require.True(t, ok)
	assert.Equal(t, "y", s.Node)
	assert.Equal(t, 2, f.Len())
}

func TestFrontier_CarriesPath(t *testing.T) {
	f := New(1)
	f.Push(State{Cost: 1.5, Node: "b", Path: []string{"a", "b"}})

	s, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, s.Path)
}

func TestFrontier_Reset(t *testing.T) {
	f := New(2)
	f.Push(State{Cost: 1.0})
	f.Push(State{Cost: 2.0})
	f.Reset()
	assert.Equal(t, 0, f.Len())

	f.Push(State{Cost: 9.0, Node: "z"})
	s, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "z", s.Node)
}

func TestFrontier_ManyStates(t *testing.T) {
	f := New(0)
	// Push in descending cost order, expect ascending pops.
	for i := 100; i > 0; i-- {
		f.Push(State{Cost: float64(i)})
	}

	prev := 0.0
	for f.Len() > 0 {
		s, ok := f.Pop()
		require.True(t, ok)
		assert.GreaterOrEqual(t, s.Cost, prev)
		prev = s.Cost
	}
}
