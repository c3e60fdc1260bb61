package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
	"github.com/xDarkicex/cirbo/randid"
)

// DeMorgan pushes NOT toward the inputs using NOT(AND(x,y))=OR(NOT x, NOT
// y) and dually for OR, applied in two passes: first directly to every
// NAND/NOR gate (the common case, folding a negated symmetric gate to the
// dual operator over negated operands, reusing an existing NOT over an
// operand where there is one and minting a fresh one otherwise), then to any remaining
// NOT(AND(...))/NOT(OR(...)) pair where the inner gate has no other user.
// Gate ids never change; outputs are never remapped.
//
// This implementation resolves the multi-user "count_branches" fixpoint
// from the original source only for the single-user case; see DESIGN.md
// for the reasoning behind that choice.
func DeMorgan(minter *randid.Minter) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		gates := copyGateInfos(c)
		newEnc := enc.Clone()

		notOf := make(map[circuit.GateId]circuit.GateId)
		for id := 0; id < c.NumGates(); id++ {
			gid := circuit.GateId(id)
			if c.Type(gid) == gate.Not {
				if _, ok := notOf[c.Operands(gid)[0]]; !ok {
					notOf[c.Operands(gid)[0]] = gid
				}
			}
		}
		getNot := func(terminal circuit.GateId) circuit.GateId {
			if rep, ok := notOf[terminal]; ok {
				return rep
			}
			newID := circuit.GateId(len(gates))
			newEnc.Encode(minter.Fresh())
			gates = append(gates, circuit.GateInfo{Type: gate.Not, Operands: []circuit.GateId{terminal}})
			notOf[terminal] = newID
			return newID
		}

		n := c.NumGates()
		for id := 0; id < n; id++ {
			gid := circuit.GateId(id)
			t := c.Type(gid)
			if t != gate.Nand && t != gate.Nor {
				continue
			}
			dual := gate.Or
			if t == gate.Nor {
				dual = gate.And
			}
			operands := c.Operands(gid)
			negated := make([]circuit.GateId, len(operands))
			for i, o := range operands {
				negated[i] = getNot(o)
			}
			sortGateIds(negated)
			gates[id] = circuit.GateInfo{Type: dual, Operands: negated}
		}

		for id := 0; id < n; id++ {
			gid := circuit.GateId(id)
			if c.Type(gid) != gate.Not {
				continue
			}
			h := c.Operands(gid)[0]
			hType := c.Type(h)
			if hType != gate.And && hType != gate.Or {
				continue
			}
			if len(c.Users(h)) != 1 {
				continue
			}
			dual := gate.Or
			if hType == gate.Or {
				dual = gate.And
			}
			hOperands := c.Operands(h)
			negated := make([]circuit.GateId, len(hOperands))
			for i, o := range hOperands {
				negated[i] = getNot(o)
			}
			sortGateIds(negated)
			gates[id] = circuit.GateInfo{Type: dual, Operands: negated}
		}

		nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
		if err != nil {
			return nil, nil, err
		}
		return nc, newEnc, nil
	}
}
