package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

// DuplicateOperandsCleaner applies per-operator identities over a gate's
// operand multiset: idempotence for AND/OR, parity cancellation for XOR,
// and their negated forms by composition with NOT. For AND/OR it also
// folds a surviving x/NOT(x) pair straight to the dominating constant; for
// XOR such a pair contributes TRUE.
func DuplicateOperandsCleaner(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
	gates := copyGateInfos(c)

	for id := range gates {
		gid := circuit.GateId(id)
		t := c.Type(gid)
		if !t.Symmetric() {
			continue
		}
		negate := false
		base := t
		if b, ok := t.Negated(); ok && isNegatedForm(t) {
			base = b
			negate = true
		}

		operands := c.Operands(gid)

		if base == gate.Xor {
			gates[id] = reduceXorOperands(c, operands, negate)
			continue
		}
		gates[id] = reduceAndOrOperands(c, base, operands, negate)
	}

	nc, err := circuit.Build(gates, append([]circuit.GateId(nil), c.Outputs()...))
	if err != nil {
		return nil, nil, err
	}
	return nc, enc.Clone(), nil
}

func isNegatedForm(t gate.Type) bool {
	switch t {
	case gate.Nand, gate.Nor, gate.Nxor:
		return true
	default:
		return false
	}
}

// reduceAndOrOperands removes duplicate operands (idempotence) and, if a
// remaining operand is the logical negation of another, folds straight to
// the dominating constant.
func reduceAndOrOperands(c *circuit.Circuit, base gate.Type, operands []circuit.GateId, negate bool) circuit.GateInfo {
	seen := make(map[circuit.GateId]bool, len(operands))
	var unique []circuit.GateId
	for _, o := range operands {
		if seen[o] {
			continue
		}
		seen[o] = true
		unique = append(unique, o)
	}

	for i, a := range unique {
		for j, b := range unique {
			if i == j {
				continue
			}
			if isNotOf(c, a, b) {
				dominant := gate.False
				if base == gate.Or {
					dominant = gate.True
				}
				if negate {
					dominant = gate.Not3(dominant)
				}
				return circuit.GateInfo{Type: constType(dominant)}
			}
		}
	}

	sortGateIds(unique)
	if len(unique) == 1 {
		if negate {
			return circuit.GateInfo{Type: gate.Not, Operands: unique}
		}
		return circuit.GateInfo{Type: gate.Buff, Operands: unique}
	}
	finalType := base
	if negate {
		finalType, _ = base.Negated()
	}
	return circuit.GateInfo{Type: finalType, Operands: unique}
}

// reduceXorOperands cancels pairs of identical operands (parity) and, for
// any surviving x/NOT(x) pair, drops both operands and flips the result
// (XOR of a variable and its negation is always true), so a lone pair
// folds straight to TRUE.
func reduceXorOperands(c *circuit.Circuit, operands []circuit.GateId, negate bool) circuit.GateInfo {
	counts := make(map[circuit.GateId]int, len(operands))
	var order []circuit.GateId
	for _, o := range operands {
		if counts[o] == 0 {
			order = append(order, o)
		}
		counts[o]++
	}

	var kept []circuit.GateId
	for _, o := range order {
		if counts[o]%2 == 1 {
			kept = append(kept, o)
		}
	}

	for i := 0; i < len(kept); i++ {
		for j := i + 1; j < len(kept); j++ {
			if isNotOf(c, kept[i], kept[j]) {
				kept = append(append(kept[:i:i], kept[i+1:j]...), kept[j+1:]...)
				negate = !negate
				i = -1
				break
			}
		}
	}

	sortGateIds(kept)
	if len(kept) == 0 {
		result := gate.False
		if negate {
			result = gate.Not3(result)
		}
		return circuit.GateInfo{Type: constType(result)}
	}
	if len(kept) == 1 {
		if negate {
			return circuit.GateInfo{Type: gate.Not, Operands: kept}
		}
		return circuit.GateInfo{Type: gate.Buff, Operands: kept}
	}
	finalType := gate.Xor
	if negate {
		finalType = gate.Nxor
	}
	return circuit.GateInfo{Type: finalType, Operands: kept}
}

// isNotOf reports whether b is a NOT gate over a (or a is a NOT gate over
// b), used to spot an x/NOT(x) pair within a reduced operand list.
func isNotOf(c *circuit.Circuit, a, b circuit.GateId) bool {
	if c.Type(b) == gate.Not && len(c.Operands(b)) == 1 && c.Operands(b)[0] == a {
		return true
	}
	if c.Type(a) == gate.Not && len(c.Operands(a)) == 1 && c.Operands(a)[0] == b {
		return true
	}
	return false
}
