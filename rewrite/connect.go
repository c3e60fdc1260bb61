package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

// ConnectSymmetricalGates flattens chains of a symmetric operator into a
// single wider gate. Starting from g, it computes the maximal "frontier"
// of same-operator, non-output gates every one of whose users also lies
// in the frontier, then collapses the whole frontier into g's own operand
// list. A gate whose users reach outside the frontier is left untouched,
// since absorbing it would require duplicating whatever it still feeds.
// AND/OR absorption is idempotent (a set); XOR absorption cancels by
// parity.
func ConnectSymmetricalGates(flags SymmetricFlags) Pass {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		gates := copyGateInfos(c)

		for id := 0; id < c.NumGates(); id++ {
			gid := circuit.GateId(id)
			t := c.Type(gid)
			if !flags.Enabled(t) {
				continue
			}

			frontier := symmetricFrontier(c, gid, t)

			// paths counts the operand-edge paths from gid down to h; every
			// user of a frontier member other than gid is itself in the
			// frontier, so the walk up always ends at gid.
			paths := make(map[circuit.GateId]int)
			var pathCount func(h circuit.GateId) int
			pathCount = func(h circuit.GateId) int {
				if h == gid {
					return 1
				}
				if p, ok := paths[h]; ok {
					return p
				}
				p := 0
				for _, u := range c.Users(h) {
					p += pathCount(u)
				}
				paths[h] = p
				return p
			}

			counts := make(map[circuit.GateId]int)
			var order []circuit.GateId
			for h := range frontier {
				for _, o := range c.Operands(h) {
					if frontier[o] {
						continue
					}
					if counts[o] == 0 {
						order = append(order, o)
					}
					counts[o] += pathCount(h)
				}
			}

			var final []circuit.GateId
			if t == gate.Xor {
				for _, h := range order {
					if counts[h]%2 == 1 {
						final = append(final, h)
					}
				}
			} else {
				final = order
			}
			sortGateIds(final)

			switch len(final) {
			case 0:
				identity := gate.False
				if t == gate.And {
					identity = gate.True
				}
				gates[id] = circuit.GateInfo{Type: constType(identity)}
			case 1:
				gates[id] = circuit.GateInfo{Type: gate.Buff, Operands: final}
			default:
				gates[id] = circuit.GateInfo{Type: t, Operands: final}
			}
		}

		nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
		if err != nil {
			return nil, nil, err
		}
		return nc, enc.Clone(), nil
	}
}

// symmetricFrontier returns the set of gates (including g) that collapse
// into g: every member is of operator t, is not an output, and has every
// one of its users already inside the set. The fixpoint is computed by
// relaxation over the candidate pool (same-operator, non-output gates
// reachable from g through operand edges), so discovery order never
// matters.
func symmetricFrontier(c *circuit.Circuit, g circuit.GateId, t gate.Type) map[circuit.GateId]bool {
	candidates := make(map[circuit.GateId]bool)
	visited := make(map[circuit.GateId]bool)
	var discover func(h circuit.GateId)
	discover = func(h circuit.GateId) {
		if visited[h] {
			return
		}
		visited[h] = true
		for _, o := range c.Operands(h) {
			if c.Type(o) == t && !c.IsOutput(o) {
				candidates[o] = true
				discover(o)
			}
		}
	}
	discover(g)

	frontier := map[circuit.GateId]bool{g: true}
	for changed := true; changed; {
		changed = false
		for h := range candidates {
			if frontier[h] {
				continue
			}
			allIn := true
			for _, u := range c.Users(h) {
				if !frontier[u] {
					allIn = false
					break
				}
			}
			if allIn {
				frontier[h] = true
				changed = true
			}
		}
	}
	return frontier
}
