package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
	"github.com/xDarkicex/cirbo/randid"
)

// SplitNotFromOthers is the inverse of MergeNotWithOthers: every
// NAND/NOR/NXOR gate is rewritten as NOT over a freshly introduced
// AND/OR/XOR gate at a new id. The original id is preserved as the NOT so
// upstream references remain valid.
func SplitNotFromOthers(minter *randid.Minter) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		gates := copyGateInfos(c)
		newEnc := enc.Clone()
		n := c.NumGates()

		for id := 0; id < n; id++ {
			gid := circuit.GateId(id)
			t := c.Type(gid)
			if t != gate.Nand && t != gate.Nor && t != gate.Nxor {
				continue
			}
			base, _ := t.Negated()
			freshID := circuit.GateId(len(gates))
			newEnc.Encode(minter.Fresh())
			gates = append(gates, circuit.GateInfo{
				Type:     base,
				Operands: append([]circuit.GateId(nil), c.Operands(gid)...),
			})
			gates[id] = circuit.GateInfo{Type: gate.Not, Operands: []circuit.GateId{freshID}}
		}

		nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
		if err != nil {
			return nil, nil, err
		}
		return nc, newEnc, nil
	}
}
