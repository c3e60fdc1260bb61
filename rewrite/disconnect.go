package rewrite

import (
	"github.com/xDarkicex/cirbo/cerr"
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/randid"
)

// DisconnectSymmetricalGates is the dual of ConnectSymmetricalGates: every
// gate of an enabled operator whose arity exceeds k is replaced by a
// left-leaning balanced tree of arity-k gates of the same operator,
// synthesizing fresh intermediate gates as needed. Associativity of
// AND/OR/XOR is what makes this semantics-preserving.
func DisconnectSymmetricalGates(k int, flags SymmetricFlags, minter *randid.Minter) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		if k < 2 {
			return nil, nil, cerr.New(cerr.ConfigError, "rewrite.DisconnectSymmetricalGates",
				"k must be >= 2")
		}

		gates := copyGateInfos(c)
		newEnc := enc.Clone()

		n := c.NumGates()
		for id := 0; id < n; id++ {
			gid := circuit.GateId(id)
			t := c.Type(gid)
			operands := c.Operands(gid)
			if !flags.Enabled(t) || len(operands) <= k {
				continue
			}

			mintFresh := func(chunk []circuit.GateId) circuit.GateId {
				sorted := append([]circuit.GateId(nil), chunk...)
				sortGateIds(sorted)
				freshID := circuit.GateId(len(gates))
				newEnc.Encode(minter.Fresh())
				gates = append(gates, circuit.GateInfo{Type: t, Operands: sorted})
				return freshID
			}

			items := append([]circuit.GateId(nil), operands...)
			for len(items) > k {
				var next []circuit.GateId
				for i := 0; i < len(items); i += k {
					end := i + k
					if end > len(items) {
						end = len(items)
					}
					chunk := items[i:end]
					if len(chunk) == 1 {
						next = append(next, chunk[0])
						continue
					}
					next = append(next, mintFresh(chunk))
				}
				items = next
			}

			sortGateIds(items)
			gates[id] = circuit.GateInfo{Type: t, Operands: items}
		}

		nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
		if err != nil {
			return nil, nil, err
		}
		return nc, newEnc, nil
	}
}
