package circuit

import "github.com/xDarkicex/cirbo/gate"

// Assignment is a mapping GateId -> gate.State, defaulting to Undefined
// for unmapped ids. It is used both for input assignments handed to the
// evaluator and for the evaluator's own working state.
type Assignment interface {
	Get(id GateId) gate.State
	Set(id GateId, s gate.State)
}

// FixedAssignment is a fixed-capacity Assignment: its constructor fixes
// the maximum id up front rather than growing to fit whatever is set.
// Get on an out-of-range id returns Undefined, same as an unmapped id
// within range; Set on an out-of-range id panics via the underlying
// slice index, since writing past the fixed capacity is a caller bug,
// not a query about an unassigned gate. This is the variant the
// evaluator uses internally, since a Circuit's gate count is known
// before evaluation starts.
type FixedAssignment struct {
	states []gate.State
}

// NewFixedAssignment returns a FixedAssignment covering ids [0, capacity),
// every one initialized to Undefined.
func NewFixedAssignment(capacity int) *FixedAssignment {
	states := make([]gate.State, capacity)
	for i := range states {
		states[i] = gate.Undefined
	}
	return &FixedAssignment{states: states}
}

func (a *FixedAssignment) Get(id GateId) gate.State {
	if int(id) < 0 || int(id) >= len(a.states) {
		return gate.Undefined
	}
	return a.states[id]
}

func (a *FixedAssignment) Set(id GateId, s gate.State) {
	a.states[id] = s
}

// DynamicAssignment is a resizing Assignment backed by a map: callers that
// don't know the id range up front (e.g. a caller assembling an input
// assignment before a Circuit exists) use this variant. Unmapped ids read
// as Undefined.
type DynamicAssignment struct {
	states map[GateId]gate.State
}

// NewDynamicAssignment returns an empty DynamicAssignment.
func NewDynamicAssignment() *DynamicAssignment {
	return &DynamicAssignment{states: make(map[GateId]gate.State)}
}

func (a *DynamicAssignment) Get(id GateId) gate.State {
	if s, ok := a.states[id]; ok {
		return s
	}
	return gate.Undefined
}

func (a *DynamicAssignment) Set(id GateId, s gate.State) {
	a.states[id] = s
}
