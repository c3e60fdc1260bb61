package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
	"github.com/xDarkicex/cirbo/randid"
)

// ReduceNotComposition walks every operand edge; when the operand begins
// a NOT-chain of length k, the edge is replaced by the chain's terminal
// (k even) or by a single NOT over the terminal (k odd), reusing an
// existing NOT gate over that terminal when one is already present rather
// than synthesizing a new one.
func ReduceNotComposition(minter *randid.Minter) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		n := c.NumGates()
		gates := copyGateInfos(c)
		newEnc := enc.Clone()

		notOf := make(map[circuit.GateId]circuit.GateId)
		for id := 0; id < n; id++ {
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

		chain := func(o circuit.GateId) (int, circuit.GateId) {
			k := 0
			cur := o
			for c.Type(cur) == gate.Not {
				k++
				cur = c.Operands(cur)[0]
			}
			return k, cur
		}

		for id := 0; id < n; id++ {
			gid := circuit.GateId(id)
			operands := c.Operands(gid)
			if len(operands) == 0 {
				continue
			}
			newOperands := append([]circuit.GateId(nil), operands...)
			changed := false
			for i, o := range operands {
				k, terminal := chain(o)
				if k == 0 {
					continue
				}
				changed = true
				if k%2 == 0 {
					newOperands[i] = terminal
				} else {
					newOperands[i] = getNot(terminal)
				}
			}
			if changed {
				t := c.Type(gid)
				if t.Symmetric() {
					sortGateIds(newOperands)
				}
				gates[id] = circuit.GateInfo{Type: t, Operands: newOperands}
			}
		}

		nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
		if err != nil {
			return nil, nil, err
		}
		return nc, newEnc, nil
	}
}
