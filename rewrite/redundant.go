package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
)

// RedundantGatesCleaner removes every gate not reachable from outputs,
// re-encodes the survivors to dense ids preserving their relative order,
// and rebuilds users. When preserveInputs is true, every INPUT gate is
// kept even if unreachable, matching the needs of passes downstream that
// rely on a stable input arity.
func RedundantGatesCleaner(preserveInputs bool) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		roots := append([]circuit.GateId(nil), c.Outputs()...)
		if preserveInputs {
			roots = append(roots, c.Inputs()...)
		}

		state := circuit.Reach(c, roots, circuit.Hooks{})

		newEnc := encode.New()
		oldToNew := make(map[circuit.GateId]circuit.GateId)
		for id := 0; id < c.NumGates(); id++ {
			gid := circuit.GateId(id)
			if state[id] != circuit.Visited {
				continue
			}
			name := enc.Decode(id)
			newID := circuit.GateId(newEnc.Encode(name))
			oldToNew[gid] = newID
		}

		newGates := make([]circuit.GateInfo, newEnc.Size())
		for id := 0; id < c.NumGates(); id++ {
			gid := circuit.GateId(id)
			newID, ok := oldToNew[gid]
			if !ok {
				continue
			}
			operands := c.Operands(gid)
			newOperands := make([]circuit.GateId, len(operands))
			for i, o := range operands {
				newOperands[i] = oldToNew[o]
			}
			newGates[newID] = circuit.GateInfo{Type: c.Type(gid), Operands: newOperands}
		}

		newOutputs := make([]circuit.GateId, len(c.Outputs()))
		for i, o := range c.Outputs() {
			newOutputs[i] = oldToNew[o]
		}

		nc, err := circuit.Build(newGates, newOutputs)
		if err != nil {
			return nil, nil, err
		}
		return nc, newEnc, nil
	}
}
