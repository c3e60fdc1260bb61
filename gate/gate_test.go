package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNot3(t *testing.T) {
	assert.Equal(t, True, Not3(False))
	assert.Equal(t, False, Not3(True))
	assert.Equal(t, Undefined, Not3(Undefined))
}

func TestAndN(t *testing.T) {
	cases := []struct {
		name string
		xs   []State
		want State
	}{
		{"false dominates", []State{True, False, Undefined}, False},
		{"undefined without false", []State{True, Undefined}, Undefined},
		{"all true", []State{True, True, True}, True},
		{"empty is identity true", nil, True},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, AndN(c.xs))
		})
	}
}

func TestOrN(t *testing.T) {
	cases := []struct {
		name string
		xs   []State
		want State
	}{
		{"true dominates", []State{False, True, Undefined}, True},
		{"undefined without true", []State{False, Undefined}, Undefined},
		{"all false", []State{False, False}, False},
		{"empty is identity false", nil, False},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, OrN(c.xs))
		})
	}
}

func TestXorN(t *testing.T) {
	assert.Equal(t, Undefined, XorN([]State{True, Undefined}))
	assert.Equal(t, True, XorN([]State{True, False, False}))
	assert.Equal(t, False, XorN([]State{True, True}))
}

func TestMux3(t *testing.T) {
	assert.Equal(t, True, Mux3(False, True, False))
	assert.Equal(t, False, Mux3(True, True, False))
	assert.Equal(t, Undefined, Mux3(Undefined, True, False))
}

func TestDispatchCoversEveryOperator(t *testing.T) {
	for _, ty := range []Type{And, Or, Xor, Nand, Nor, Nxor, Not, Mux, ConstFalse, ConstTrue} {
		_, ok := Dispatch[ty]
		if ty == Not || ty == Mux || ty == ConstFalse || ty == ConstTrue {
			require.True(t, ok, "dispatch must cover %s", ty)
			continue
		}
		require.True(t, ok, "dispatch must cover %s", ty)
	}
}

func TestEvalBuffIffPassThrough(t *testing.T) {
	assert.Equal(t, True, Eval(Buff, []State{True}))
	assert.Equal(t, Undefined, Eval(Iff, []State{Undefined}))
}

func TestNegated(t *testing.T) {
	n, ok := And.Negated()
	require.True(t, ok)
	assert.Equal(t, Nand, n)

	back, ok := Nand.Negated()
	require.True(t, ok)
	assert.Equal(t, And, back)
}
