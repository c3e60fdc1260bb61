// Package circuit implements the immutable Circuit intermediate
// representation, the two Assignment variants, and the graph algorithms
// (reachability, topological sort, three-valued evaluation) every rewrite
// pass and pipeline is built from.
package circuit

import "github.com/xDarkicex/cirbo/gate"

// GateId is a dense nonnegative integer identifying a gate within one
// Circuit instance. Ids are contiguous starting at 0.
type GateId int

// GateInfo pairs a gate's operator type with its operand list. When Type
// is one of the symmetric operators, Operands must be sorted ascending by
// GateId: this is what makes structural equality between two gates a
// simple slice comparison.
type GateInfo struct {
	Type     gate.Type
	Operands []GateId
}
