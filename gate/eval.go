package gate

// Not3 computes the unary NOT truth table.
func Not3(x State) State {
	switch x {
	case False:
		return True
	case True:
		return False
	default:
		return Undefined
	}
}

// And2 is the binary AND scalar form: FALSE dominates.
func And2(a, b State) State {
	if a == False || b == False {
		return False
	}
	if a == Undefined || b == Undefined {
		return Undefined
	}
	return True
}

// Or2 is the binary OR scalar form: TRUE dominates.
func Or2(a, b State) State {
	if a == True || b == True {
		return True
	}
	if a == Undefined || b == Undefined {
		return Undefined
	}
	return False
}

// Xor2 is the binary XOR scalar form.
func Xor2(a, b State) State {
	if a == Undefined || b == Undefined {
		return Undefined
	}
	if a == b {
		return False
	}
	return True
}

// AndN folds And2 across operands left to right. An empty list is the
// identity for AND, TRUE (mirrors the "empty AND" case ConstantGateReducer
// relies on).
func AndN(xs []State) State {
	acc := True
	for _, x := range xs {
		acc = And2(acc, x)
	}
	return acc
}

// OrN folds Or2 across operands left to right. An empty list is FALSE,
// the identity for OR.
func OrN(xs []State) State {
	acc := False
	for _, x := range xs {
		acc = Or2(acc, x)
	}
	return acc
}

// XorN is UNDEFINED if any operand is UNDEFINED, else the parity of the
// TRUE count.
func XorN(xs []State) State {
	trues := 0
	for _, x := range xs {
		if x == Undefined {
			return Undefined
		}
		if x == True {
			trues++
		}
	}
	if trues%2 == 1 {
		return True
	}
	return False
}

// NandN, NorN, NxorN are NOT composed with their base N-ary operator.
func NandN(xs []State) State { return Not3(AndN(xs)) }
func NorN(xs []State) State  { return Not3(OrN(xs)) }
func NxorN(xs []State) State { return Not3(XorN(xs)) }

// Mux3 implements MUX(sel, a, b): a when sel=FALSE, b when sel=TRUE,
// UNDEFINED when sel=UNDEFINED.
func Mux3(sel, a, b State) State {
	switch sel {
	case False:
		return a
	case True:
		return b
	default:
		return Undefined
	}
}

// NAryFunc is the signature every dispatched operator shares: it reduces a
// (possibly empty, for constants) operand-state list to a single State.
type NAryFunc func(operands []State) State

// Dispatch is the single source of truth for gate semantics: it maps
// every non-sentinel Type to its N-ary evaluator. INPUT, BUFF and the
// UNDEFINED sentinel are intentionally absent — INPUT values come from the
// assignment, BUFF is a pass-through handled by the caller, and the
// sentinel never appears in a valid circuit.
var Dispatch = map[Type]NAryFunc{
	Not:        func(xs []State) State { return Not3(xs[0]) },
	Iff:        func(xs []State) State { return xs[0] },
	And:        AndN,
	Or:         OrN,
	Xor:        XorN,
	Nand:       NandN,
	Nor:        NorN,
	Nxor:       NxorN,
	Mux:        func(xs []State) State { return Mux3(xs[0], xs[1], xs[2]) },
	ConstFalse: func(xs []State) State { return False },
	ConstTrue:  func(xs []State) State { return True },
}

// Eval applies the dispatch table entry for t to operands. Buff and Iff
// are pass-throughs and are handled here directly (Buff has no Dispatch
// entry); Input and the sentinel type have no defined evaluator and
// panic if reached, since a well-formed Circuit never evaluates them this
// way (Input values come from an Assignment).
func Eval(t Type, operands []State) State {
	switch t {
	case Buff, Iff:
		return operands[0]
	}
	fn, ok := Dispatch[t]
	if !ok {
		panic("gate: no dispatch entry for type " + t.String())
	}
	return fn(operands)
}
