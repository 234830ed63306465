package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := NewStore()
	a := &siteStub{name: "a"}
	b := &siteStub{name: "b"}

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	assert.Error(t, s.Add(&siteStub{name: "a"}))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name())
	assert.Equal(t, "b", list[1].Name())

	got, ok := s.Get("b")
	assert.True(t, ok)
	assert.Same(t, b, got)

	_, ok = s.Get("c")
	assert.False(t, ok)

	assert.Nil(t, s.Fallback())
	s.SetFallback(genericStub())
	assert.Equal(t, GenericSource, s.Fallback().Name())

	assert.Panics(t, func() { s.MustAdd(&siteStub{name: "b"}) })
}
