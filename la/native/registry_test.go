package native

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// named is a Backend that only answers Name.
type named struct {
	Backend
	name string
}

func (b named) Name() string { return b.name }

func TestRegistryPriority(t *testing.T) {
	var r Registry
	_, ok := r.Best()
	assert.False(t, ok)

	r.Register(Entry{Backend: named{name: "slow"}, Priority: 0})
	r.Register(Entry{Backend: named{name: "fast"}, Priority: 20})
	r.Register(Entry{Backend: named{name: "medium"}, Priority: 10})

	best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, "fast", best.Name())

	var names []string
	for _, e := range r.List() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"fast", "medium", "slow"}, names)
}

func TestRegistryReplace(t *testing.T) {
	var r Registry
	r.Register(Entry{Backend: named{name: "a"}, Priority: 5})
	r.Register(Entry{Backend: named{name: "b"}, Priority: 3})
	r.Register(Entry{Backend: named{name: "a"}, Priority: 1})

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Name())
	assert.Equal(t, 1, list[1].Priority)
}

func TestRegistryLookup(t *testing.T) {
	var r Registry
	r.Register(Entry{Backend: named{name: "gonum"}})

	e, err := r.Lookup("gonum")
	require.NoError(t, err)
	assert.Equal(t, "gonum", e.Name())

	_, err = r.Lookup("mkl")
	assert.True(t, errors.Is(err, ErrUnknownBackend), "got %v", err)
	assert.ErrorContains(t, err, `"mkl"`)
}

func TestListIsCopy(t *testing.T) {
	var r Registry
	r.Register(Entry{Backend: named{name: "a"}})
	l := r.List()
	l[0].Priority = 99
	assert.Zero(t, r.List()[0].Priority)
}

func TestGlobalHasGonum(t *testing.T) {
	e, err := Global.Lookup("gonum")
	require.NoError(t, err)
	assert.Zero(t, e.Priority)
}

func TestUse(t *testing.T) {
	if !Enabled() {
		assert.Nil(t, Current())
		assert.Error(t, Use("gonum"))
		return
	}
	prev := Current().Name()
	t.Cleanup(func() { require.NoError(t, Use(prev)) })

	require.NoError(t, Use("gonum"))
	assert.Equal(t, "gonum", Current().Name())

	err := Use("does-not-exist")
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	assert.Equal(t, "gonum", Current().Name(), "failed Use keeps the selection")
}
