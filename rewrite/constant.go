package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

// ConstantGateReducer propagates CONST_FALSE/CONST_TRUE through the
// circuit by per-operator absorption laws. It never introduces a
// fresh gate: an XOR/NXOR gate that reduces to "wrap the surviving XOR
// in a NOT" is represented directly by the NXOR/XOR duality rather
// than a synthesized NOT, so every result reuses its original gate id and
// the output list never needs remapping.
func ConstantGateReducer(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
	n := c.NumGates()
	gates := copyGateInfos(c)
	isConst := make([]bool, n)
	constState := make([]gate.State, n)

	topo := circuit.TopoSort(c) // outputs-first; process inputs-first
	for i := len(topo) - 1; i >= 0; i-- {
		g := topo[i]
		reduceConstGate(c, gates, isConst, constState, g)
	}

	nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
	if err != nil {
		return nil, nil, err
	}
	return nc, enc.Clone(), nil
}

func reduceConstGate(c *circuit.Circuit, gates []circuit.GateInfo, isConst []bool, constState []gate.State, g circuit.GateId) {
	t := c.Type(g)
	ops := c.Operands(g)

	setConst := func(s gate.State) {
		isConst[g] = true
		constState[g] = s
		gates[g] = circuit.GateInfo{Type: constType(s)}
	}

	switch t {
	case gate.Input:
		isConst[g] = false
	case gate.ConstFalse:
		setConst(gate.False)
	case gate.ConstTrue:
		setConst(gate.True)
	case gate.Not:
		if isConst[ops[0]] {
			setConst(gate.Not3(constState[ops[0]]))
		}
	case gate.Buff, gate.Iff:
		if isConst[ops[0]] {
			setConst(constState[ops[0]])
		}
	case gate.And:
		reduceAndOr(gates, isConst, constState, g, ops, true, false)
	case gate.Or:
		reduceAndOr(gates, isConst, constState, g, ops, false, false)
	case gate.Nand:
		reduceAndOr(gates, isConst, constState, g, ops, true, true)
	case gate.Nor:
		reduceAndOr(gates, isConst, constState, g, ops, false, true)
	case gate.Xor:
		reduceXor(gates, isConst, constState, g, ops, false)
	case gate.Nxor:
		reduceXor(gates, isConst, constState, g, ops, true)
	case gate.Mux:
		sel, a, b := ops[0], ops[1], ops[2]
		if isConst[sel] {
			survivor := a
			if constState[sel] == gate.True {
				survivor = b
			}
			if isConst[survivor] {
				setConst(constState[survivor])
			} else {
				isConst[g] = false
				gates[g] = circuit.GateInfo{Type: gate.Buff, Operands: []circuit.GateId{survivor}}
			}
		}
	}
}

func reduceAndOr(gates []circuit.GateInfo, isConst []bool, constState []gate.State, g circuit.GateId, ops []circuit.GateId, isAnd, negate bool) {
	dominant := gate.False
	identity := gate.True
	if !isAnd {
		dominant, identity = gate.True, gate.False
	}

	var kept []circuit.GateId
	for _, o := range ops {
		if isConst[o] {
			if constState[o] == dominant {
				result := dominant
				if negate {
					result = gate.Not3(result)
				}
				isConst[g] = true
				constState[g] = result
				gates[g] = circuit.GateInfo{Type: constType(result)}
				return
			}
			continue // identity value, drop
		}
		kept = append(kept, o)
	}

	isConst[g] = false
	if len(kept) == 0 {
		result := identity
		if negate {
			result = gate.Not3(result)
		}
		isConst[g] = true
		constState[g] = result
		gates[g] = circuit.GateInfo{Type: constType(result)}
		return
	}
	if len(kept) == 1 {
		if negate {
			gates[g] = circuit.GateInfo{Type: gate.Not, Operands: kept}
		} else {
			gates[g] = circuit.GateInfo{Type: gate.Buff, Operands: kept}
		}
		return
	}
	sortGateIds(kept)
	base := gate.And
	if !isAnd {
		base = gate.Or
	}
	finalType := base
	if negate {
		finalType, _ = base.Negated()
	}
	gates[g] = circuit.GateInfo{Type: finalType, Operands: kept}
}

func reduceXor(gates []circuit.GateInfo, isConst []bool, constState []gate.State, g circuit.GateId, ops []circuit.GateId, negate bool) {
	parity := false
	var kept []circuit.GateId
	for _, o := range ops {
		if isConst[o] {
			if constState[o] == gate.True {
				parity = !parity
			}
			continue
		}
		kept = append(kept, o)
	}
	effectiveNegate := negate
	if parity {
		effectiveNegate = !effectiveNegate
	}

	isConst[g] = false
	if len(kept) == 0 {
		result := gate.False
		if effectiveNegate {
			result = gate.Not3(result)
		}
		isConst[g] = true
		constState[g] = result
		gates[g] = circuit.GateInfo{Type: constType(result)}
		return
	}
	if len(kept) == 1 {
		if effectiveNegate {
			gates[g] = circuit.GateInfo{Type: gate.Not, Operands: kept}
		} else {
			gates[g] = circuit.GateInfo{Type: gate.Buff, Operands: kept}
		}
		return
	}
	sortGateIds(kept)
	finalType := gate.Xor
	if effectiveNegate {
		finalType = gate.Nxor
	}
	gates[g] = circuit.GateInfo{Type: finalType, Operands: kept}
}
