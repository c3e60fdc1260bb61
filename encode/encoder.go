// Package encode implements the append-only bijection between textual gate
// names and dense GateIds that every other cirbo package builds on.
package encode

// Encoder is the sole naming authority across a pipeline run. Passes that
// synthesize fresh gates request new ids through Encode with a name
// guaranteed unique (see package randid).
type Encoder struct {
	idOf  map[string]int
	names []string
}

// New returns an empty Encoder.
func New() *Encoder {
	return &Encoder{idOf: make(map[string]int)}
}

// Encode returns the existing id for name, or appends name and returns the
// freshly minted id (= the encoder's size before the call).
func (e *Encoder) Encode(name string) int {
	if id, ok := e.idOf[name]; ok {
		return id
	}
	id := len(e.names)
	e.idOf[name] = id
	e.names = append(e.names, name)
	return id
}

// Decode returns the name for id. It panics if id is out of range, since a
// well-formed caller never decodes an id it didn't obtain from this
// encoder or from a Circuit built against it.
func (e *Encoder) Decode(id int) string {
	if id < 0 || id >= len(e.names) {
		panic("encode: id out of range")
	}
	return e.names[id]
}

// KeyExists reports whether name has already been encoded.
func (e *Encoder) KeyExists(name string) bool {
	_, ok := e.idOf[name]
	return ok
}

// Size returns the number of distinct names encoded so far.
func (e *Encoder) Size() int {
	return len(e.names)
}

// Empty reports whether no names have been encoded yet.
func (e *Encoder) Empty() bool {
	return len(e.names) == 0
}

// Clear resets the encoder to empty, discarding every name/id mapping.
func (e *Encoder) Clear() {
	e.idOf = make(map[string]int)
	e.names = nil
}

// Clone returns an independent copy of e. Rewrite passes that thread a new
// encoder through their output start from a clone of their input so the
// original remains untouched (the IR is immutable; so is the encoder that
// named it).
func (e *Encoder) Clone() *Encoder {
	c := &Encoder{
		idOf:  make(map[string]int, len(e.idOf)),
		names: append([]string(nil), e.names...),
	}
	for k, v := range e.idOf {
		c.idOf[k] = v
	}
	return c
}
