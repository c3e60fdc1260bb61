package rewrite

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

func gateSignature(gi circuit.GateInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", gi.Type)
	for i, o := range gi.Operands {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", o)
	}
	return b.String()
}

// DuplicateGatesCleaner collapses gates with identical (type, sorted
// operands) into a single representative, redirecting users and output
// references to it. INPUT gates are distinct variables and are never
// merged. Orphaned duplicates are left in place for a subsequent
// RedundantGatesCleaner to drop.
func DuplicateGatesCleaner(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
	n := c.NumGates()
	repOf := make([]circuit.GateId, n)
	seen := make(map[string]circuit.GateId, n)

	for id := 0; id < n; id++ {
		gid := circuit.GateId(id)
		if c.Type(gid) == gate.Input {
			repOf[id] = gid
			continue
		}
		sig := gateSignature(circuit.GateInfo{Type: c.Type(gid), Operands: c.Operands(gid)})
		if rep, ok := seen[sig]; ok {
			repOf[id] = rep
		} else {
			seen[sig] = gid
			repOf[id] = gid
		}
	}

	gates := make([]circuit.GateInfo, n)
	for id := 0; id < n; id++ {
		gid := circuit.GateId(id)
		operands := c.Operands(gid)
		newOperands := make([]circuit.GateId, len(operands))
		for i, o := range operands {
			newOperands[i] = repOf[o]
		}
		t := c.Type(gid)
		if t.Symmetric() {
			sortGateIds(newOperands)
		}
		gates[id] = circuit.GateInfo{Type: t, Operands: newOperands}
	}

	outputs := make([]circuit.GateId, len(c.Outputs()))
	for i, o := range c.Outputs() {
		outputs[i] = repOf[o]
	}

	nc, err := circuit.Build(gates, outputs)
	if err != nil {
		return nil, nil, err
	}
	return nc, enc.Clone(), nil
}
