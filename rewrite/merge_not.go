package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
	"github.com/xDarkicex/cirbo/randid"
)

// MergeNotWithOthers fuses NOT(AND(...)) into NAND(...), and similarly for
// OR/XOR and their duals, whenever the inner gate has exactly one user. If
// the inner gate is itself a NAND/NOR/NXOR with multiple users, the pass
// "rehangs" in place: the NOT gate's own id becomes the base operator
// that the inner gate used to compute, and the inner gate's id becomes
// NOT(that id), so its other users keep seeing the same negated value.
// No new id is minted for this swap — it reuses the NOT gate's existing
// id as the "freshly introduced" base-operator gate, matching the
// original source's in-place role swap rather than growing the circuit.
func MergeNotWithOthers(minter *randid.Minter) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		gates := copyGateInfos(c)
		newEnc := enc.Clone()
		rehungBase := make(map[circuit.GateId]circuit.GateId)

		for id := 0; id < c.NumGates(); id++ {
			gid := circuit.GateId(id)
			if c.Type(gid) != gate.Not {
				continue
			}
			h := c.Operands(gid)[0]
			hType := c.Type(h)

			switch hType {
			case gate.And, gate.Or, gate.Xor:
				if len(c.Users(h)) == 1 {
					negType, _ := hType.Negated()
					gates[id] = circuit.GateInfo{
						Type:     negType,
						Operands: append([]circuit.GateId(nil), c.Operands(h)...),
					}
				}
			case gate.Nand, gate.Nor, gate.Nxor:
				base, _ := hType.Negated()
				if len(c.Users(h)) == 1 {
					gates[id] = circuit.GateInfo{
						Type:     base,
						Operands: append([]circuit.GateId(nil), c.Operands(h)...),
					}
					continue
				}
				if rep, done := rehungBase[h]; done {
					// h was already rehung behind a different NOT gate
					// in this same pass; this one just reads the same
					// base-operator value back through a pass-through.
					gates[id] = circuit.GateInfo{Type: gate.Buff, Operands: []circuit.GateId{rep}}
					continue
				}
				gates[id] = circuit.GateInfo{
					Type:     base,
					Operands: append([]circuit.GateId(nil), c.Operands(h)...),
				}
				gates[h] = circuit.GateInfo{Type: gate.Not, Operands: []circuit.GateId{gid}}
				rehungBase[h] = gid
			}
		}

		nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
		if err != nil {
			return nil, nil, err
		}
		return nc, newEnc, nil
	}
}
