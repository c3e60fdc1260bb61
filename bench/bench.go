// Package bench implements the bench text format cirbo ingests and emits:
// a line-oriented ASCII netlist of INPUT/OUTPUT declarations and gate
// definitions.
package bench

import "github.com/xDarkicex/cirbo/gate"

var opToType = map[string]gate.Type{
	"AND":  gate.And,
	"OR":   gate.Or,
	"XOR":  gate.Xor,
	"NAND": gate.Nand,
	"NOR":  gate.Nor,
	"NXOR": gate.Nxor,
	"NOT":  gate.Not,
	"BUFF": gate.Buff,
	"IFF":  gate.Iff,
	"MUX":  gate.Mux,
}

var typeToOp = map[gate.Type]string{
	gate.And:  "AND",
	gate.Or:   "OR",
	gate.Xor:  "XOR",
	gate.Nand: "NAND",
	gate.Nor:  "NOR",
	gate.Nxor: "NXOR",
	gate.Not:  "NOT",
	gate.Buff: "BUFF",
	gate.Iff:  "IFF",
	gate.Mux:  "MUX",
}
