// Package rewrite implements the nine semantics-preserving structural
// passes that shrink a Circuit, plus the RedundantGatesCleaner that backs
// most of their canonical pipelines.
package rewrite

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

// Pass is the shared signature every rewrite implements: it consumes a
// (Circuit, Encoder) pair and produces a new one, preserving the output
// assignment at every output id under the encoder's name correspondence.
type Pass func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error)

// SymmetricFlags independently selects which of AND/OR/XOR a pass
// operates over, matching the original source's per-operator flags
// (connect_symmetrical_gates / disconnect_symmetrical_gates) rather than a
// single blanket "symmetric operators" switch.
type SymmetricFlags struct {
	And bool
	Or  bool
	Xor bool
}

// AllSymmetric enables every symmetric operator.
func AllSymmetric() SymmetricFlags {
	return SymmetricFlags{And: true, Or: true, Xor: true}
}

// Enabled reports whether t is selected by f. Only AND/OR/XOR are ever
// selectable; their negated forms are not independently toggled.
func (f SymmetricFlags) Enabled(t gate.Type) bool {
	switch t {
	case gate.And:
		return f.And
	case gate.Or:
		return f.Or
	case gate.Xor:
		return f.Xor
	default:
		return false
	}
}

func sortGateIds(ids []circuit.GateId) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

func constType(s gate.State) gate.Type {
	if s == gate.False {
		return gate.ConstFalse
	}
	return gate.ConstTrue
}

func copyGateInfos(c *circuit.Circuit) []circuit.GateInfo {
	n := c.NumGates()
	out := make([]circuit.GateInfo, n)
	for id := 0; id < n; id++ {
		gid := circuit.GateId(id)
		out[id] = circuit.GateInfo{
			Type:     c.Type(gid),
			Operands: append([]circuit.GateId(nil), c.Operands(gid)...),
		}
	}
	return out
}
