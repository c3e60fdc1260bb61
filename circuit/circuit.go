package circuit

import (
	"sort"

	"github.com/xDarkicex/cirbo/cerr"
	"github.com/xDarkicex/cirbo/gate"
)

// Circuit is an immutable DAG of gates keyed by dense GateIds. It is built
// once (by the bench parser, or by a rewrite pass constructing its
// successor) and never mutated afterward; every pass that needs a
// different Circuit builds a new one via Build.
type Circuit struct {
	gates   []GateInfo
	users   [][]GateId
	inputs  []GateId
	outputs []GateId
}

// Build validates gates and outputs, then constructs a Circuit, deriving
// users by scanning each gate's operand list once. users(g) is assembled
// in the order operator gates referencing g appear in gates.
func Build(gates []GateInfo, outputs []GateId) (*Circuit, error) {
	n := len(gates)
	users := make([][]GateId, n)

	for id, gi := range gates {
		if err := validateArity(gi.Type, len(gi.Operands)); err != nil {
			return nil, cerr.New(cerr.InvariantViolation, "circuit.Build", err.Error())
		}
		for _, op := range gi.Operands {
			if int(op) < 0 || int(op) >= n {
				return nil, cerr.New(cerr.InvariantViolation, "circuit.Build",
					"operand id out of range")
			}
			users[op] = append(users[op], GateId(id))
		}
		if gi.Type.Symmetric() && !sort.SliceIsSorted(gi.Operands, func(i, j int) bool {
			return gi.Operands[i] < gi.Operands[j]
		}) {
			return nil, cerr.New(cerr.InvariantViolation, "circuit.Build",
				"symmetric gate operands not sorted ascending")
		}
	}

	for _, out := range outputs {
		if int(out) < 0 || int(out) >= n {
			return nil, cerr.New(cerr.InvariantViolation, "circuit.Build",
				"output id out of range")
		}
	}

	var inputs []GateId
	for id, gi := range gates {
		if gi.Type == gate.Input {
			inputs = append(inputs, GateId(id))
		}
	}

	return &Circuit{
		gates:   gates,
		users:   users,
		inputs:  inputs,
		outputs: append([]GateId(nil), outputs...),
	}, nil
}

func validateArity(t gate.Type, n int) error {
	want := t.Arity()
	if want < 0 {
		if n < 1 {
			return arityErr(t, n)
		}
		return nil
	}
	if n != want {
		return arityErr(t, n)
	}
	return nil
}

func arityErr(t gate.Type, n int) error {
	return &arityError{t, n}
}

type arityError struct {
	t gate.Type
	n int
}

func (e *arityError) Error() string {
	return "arity mismatch for " + e.t.String()
}

// Type returns the operator type of g.
func (c *Circuit) Type(g GateId) gate.Type {
	return c.gates[g].Type
}

// Operands returns g's operand list. Callers must not mutate the returned
// slice.
func (c *Circuit) Operands(g GateId) []GateId {
	return c.gates[g].Operands
}

// Users returns the gates whose operand list contains g, in discovery
// order. Callers must not mutate the returned slice.
func (c *Circuit) Users(g GateId) []GateId {
	return c.users[g]
}

// NumGates returns the total gate count N.
func (c *Circuit) NumGates() int {
	return len(c.gates)
}

// NumOperatorGates returns N minus the input count; inputs are not
// counted as operator gates.
func (c *Circuit) NumOperatorGates() int {
	return len(c.gates) - len(c.inputs)
}

// Inputs returns every gate of type Input in increasing id order.
func (c *Circuit) Inputs() []GateId {
	return c.inputs
}

// Outputs returns the designated output ids in declaration order;
// duplicates are preserved if the source specified them.
func (c *Circuit) Outputs() []GateId {
	return c.outputs
}

// IsOutput reports whether g appears in the output list.
func (c *Circuit) IsOutput(g GateId) bool {
	for _, o := range c.outputs {
		if o == g {
			return true
		}
	}
	return false
}
