package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/cirbo/gate"
)

func TestReachMarksOnlyReachable(t *testing.T) {
	gates := []GateInfo{
		{Type: gate.Input},
		{Type: gate.Input},
		{Type: gate.And, Operands: []GateId{0, 1}},
		{Type: gate.Input}, // disconnected
	}
	c, err := Build(gates, []GateId{2})
	require.NoError(t, err)

	state := Reach(c, []GateId{2}, Hooks{})
	assert.Equal(t, Visited, state[0])
	assert.Equal(t, Visited, state[1])
	assert.Equal(t, Visited, state[2])
	assert.Equal(t, Unvisited, state[3])
}

func TestReachHooksFireInOrder(t *testing.T) {
	c := and2(t)
	var pre, post []GateId
	Reach(c, []GateId{2}, Hooks{
		PreVisit:  func(id GateId) { pre = append(pre, id) },
		PostVisit: func(id GateId) { post = append(post, id) },
	})
	assert.Equal(t, GateId(2), pre[0])
	assert.Equal(t, GateId(2), post[len(post)-1])
}

func TestReachUnvisitedHookAscendingOrder(t *testing.T) {
	gates := []GateInfo{
		{Type: gate.Input},
		{Type: gate.Input},
	}
	c, err := Build(gates, nil)
	require.NoError(t, err)

	var unvisited []GateId
	Reach(c, nil, Hooks{Unvisited: func(id GateId) { unvisited = append(unvisited, id) }})
	assert.Equal(t, []GateId{0, 1}, unvisited)
}
