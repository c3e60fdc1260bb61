package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
	"github.com/xDarkicex/cirbo/randid"
)

func gi(t gate.Type, ops ...circuit.GateId) circuit.GateInfo {
	return circuit.GateInfo{Type: t, Operands: ops}
}

func dummyEncoder(c *circuit.Circuit) *encode.Encoder {
	enc := encode.New()
	for i := 0; i < c.NumGates(); i++ {
		enc.Encode(fmt.Sprintf("g%d", i))
	}
	return enc
}

func TestCompositionThreadsStepsInOrder(t *testing.T) {
	gates := []circuit.GateInfo{
		gi(gate.Input),     // 0
		gi(gate.Input),     // 1
		gi(gate.And, 0, 1), // 2
		gi(gate.Or, 0, 1),  // 3 (unreferenced by the output)
	}
	c, err := circuit.Build(gates, []circuit.GateId{2})
	require.NoError(t, err)

	comp := Composition(RedundantGatesCleaner())
	nc, _, err := comp(c, dummyEncoder(c))
	require.NoError(t, err)
	require.Equal(t, 3, nc.NumGates())
}

func TestNestRunsBodyRepeatedly(t *testing.T) {
	gates := []circuit.GateInfo{
		gi(gate.Input),     // 0
		gi(gate.Not, 0),    // 1
		gi(gate.Not, 1),    // 2 (unused)
	}
	c, err := circuit.Build(gates, []circuit.GateId{1})
	require.NoError(t, err)

	minter := randid.NewMinter()
	n := Nest(2, ReduceNotComposition(minter))
	nc, _, err := n(c, dummyEncoder(c))
	require.NoError(t, err)
	require.LessOrEqual(t, nc.NumGates(), c.NumGates())
}

func TestDeMorganCanonicalPipelineOnNor(t *testing.T) {
	gates := []circuit.GateInfo{
		gi(gate.Input),     // 0
		gi(gate.Input),     // 1
		gi(gate.Nor, 0, 1), // 2
	}
	c, err := circuit.Build(gates, []circuit.GateId{2})
	require.NoError(t, err)

	minter := randid.NewMinter()
	nc, _, err := DeMorgan(minter)(c, dummyEncoder(c))
	require.NoError(t, err)

	in := circuit.NewFixedAssignment(nc.NumGates())
	in.Set(0, gate.False)
	in.Set(1, gate.False)
	out := circuit.Evaluate(nc, in)
	require.Equal(t, gate.True, out.Get(nc.Outputs()[0]))

	in2 := circuit.NewFixedAssignment(nc.NumGates())
	in2.Set(0, gate.True)
	in2.Set(1, gate.False)
	out2 := circuit.Evaluate(nc, in2)
	require.Equal(t, gate.False, out2.Get(nc.Outputs()[0]))
}

func TestRegistryLookupKnownAndUnknown(t *testing.T) {
	minter := randid.NewMinter()

	p, err := Lookup("RedundantGatesCleaner", minter)
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = Lookup("NotARealPipeline", minter)
	require.Error(t, err)
}

func TestRegistryAllComposesEveryCanonicalPipeline(t *testing.T) {
	gates := []circuit.GateInfo{
		gi(gate.Input),     // 0
		gi(gate.Input),     // 1
		gi(gate.And, 0, 1), // 2
		gi(gate.Not, 2),    // 3
	}
	c, err := circuit.Build(gates, []circuit.GateId{3})
	require.NoError(t, err)

	minter := randid.NewMinter()
	all, err := Lookup("all", minter)
	require.NoError(t, err)

	nc, _, err := all(c, dummyEncoder(c))
	require.NoError(t, err)
	require.NotNil(t, nc)

	in := circuit.NewFixedAssignment(nc.NumGates())
	in.Set(0, gate.True)
	in.Set(1, gate.True)
	out := circuit.Evaluate(nc, in)
	require.Equal(t, gate.False, out.Get(nc.Outputs()[0]))
}

func TestNamesListsEveryRegisteredPipeline(t *testing.T) {
	names := Names()
	require.Contains(t, names, "DeMorgan")
	require.Contains(t, names, "all")
}
