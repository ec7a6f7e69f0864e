package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadowSingleAndGet(t *testing.T) {
	s := New[int]()
	assert.False(t, s.Has("x", 0))

	s2 := s.ShadowSingle("x", 1)
	require.True(t, s2.Has("x", 0))
	assert.Equal(t, 1, s2.Get("x", 0))
	assert.False(t, s.Has("x", 0), "ShadowSingle must not mutate the receiver")
}

func TestShadowSingleShiftsOlderBindings(t *testing.T) {
	s := New[string]()
	s = s.ShadowSingle("x", "outer")
	s = s.ShadowSingle("x", "inner")

	assert.Equal(t, "inner", s.Get("x", 0))
	assert.Equal(t, "outer", s.Get("x", 1))
}

func TestAgeCountsBindingsPushedAfter(t *testing.T) {
	s := New[struct{}]()
	s = s.ShadowSingle("x", struct{}{})
	assert.Equal(t, 0, s.Age("x", 0))

	s = s.ShadowSingle("y", struct{}{})
	assert.Equal(t, 1, s.Age("x", 0))
	assert.Equal(t, 0, s.Age("y", 0))

	s = s.ShadowSingle("x", struct{}{})
	assert.Equal(t, 0, s.Age("x", 0))
	assert.Equal(t, 2, s.Age("x", 1))
}

func TestShadowAllPushesInnermostLast(t *testing.T) {
	s := New[int]().ShadowAll([]Order[int]{
		{Name: "a", Payload: 1},
		{Name: "b", Payload: 2},
	})
	assert.Equal(t, 1, s.Get("a", 0))
	assert.Equal(t, 2, s.Get("b", 0))
}

func TestJoinKeepsSelfInnermost(t *testing.T) {
	a := New[int]().ShadowSingle("x", 1)
	b := New[int]().ShadowSingle("x", 2)

	joined := a.Join(b)
	assert.Equal(t, 1, joined.Get("x", 0))
	assert.Equal(t, 2, joined.Get("x", 1))
}

func TestMapShadowTranslatesPayloads(t *testing.T) {
	s := New[int]().ShadowSingle("x", 41)
	mapped := MapShadow(s, func(n int) int { return n + 1 })
	assert.Equal(t, 42, mapped.Get("x", 0))
}
