package circuit

import "github.com/xDarkicex/cirbo/gate"

// Evaluate produces an output Assignment in which every gate reachable
// from the outputs is assigned, given an input Assignment. Unreachable
// gates remain Undefined. The evaluator is deterministic and idempotent:
// re-running it over its own output assignment (restricted to the input
// gates) reproduces the same result.
func Evaluate(c *Circuit, input Assignment) Assignment {
	n := c.NumGates()
	visited := make([]bool, n)
	order := postorder(c, c.Outputs(), visited)

	result := NewFixedAssignment(n)
	for _, g := range order {
		if c.Type(g) == gate.Input {
			result.Set(g, input.Get(g))
			continue
		}
		switch c.Type(g) {
		case gate.Buff, gate.Iff:
			result.Set(g, result.Get(c.Operands(g)[0]))
		default:
			operands := c.Operands(g)
			states := make([]gate.State, len(operands))
			for i, op := range operands {
				states[i] = result.Get(op)
			}
			result.Set(g, gate.Eval(c.Type(g), states))
		}
	}
	return result
}
