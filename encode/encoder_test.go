package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIsIdempotent(t *testing.T) {
	e := New()
	a := e.Encode("x")
	b := e.Encode("x")
	assert.Equal(t, a, b)
	assert.Equal(t, 1, e.Size())
}

func TestEncodeAssignsDenseIncreasingIds(t *testing.T) {
	e := New()
	assert.Equal(t, 0, e.Encode("a"))
	assert.Equal(t, 1, e.Encode("b"))
	assert.Equal(t, 2, e.Encode("c"))
	assert.Equal(t, 1, e.Encode("b"))
}

func TestDecodeRoundTrip(t *testing.T) {
	e := New()
	id := e.Encode("gate17")
	assert.Equal(t, "gate17", e.Decode(id))
}

func TestDecodeOutOfRangePanics(t *testing.T) {
	e := New()
	assert.Panics(t, func() { e.Decode(0) })
}

func TestKeyExists(t *testing.T) {
	e := New()
	require.False(t, e.KeyExists("x"))
	e.Encode("x")
	require.True(t, e.KeyExists("x"))
}

func TestCloneIsIndependent(t *testing.T) {
	e := New()
	e.Encode("a")
	c := e.Clone()
	c.Encode("b")
	assert.Equal(t, 1, e.Size())
	assert.Equal(t, 2, c.Size())
}

func TestClearResetsToEmpty(t *testing.T) {
	e := New()
	e.Encode("a")
	e.Clear()
	assert.True(t, e.Empty())
	assert.Equal(t, 0, e.Size())
}
