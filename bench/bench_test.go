package bench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

// gateSnapshot captures everything a round trip through the bench format
// must preserve, keyed by decoded name rather than by id (ids may shift
// across a parse/write/reparse cycle).
type gateSnapshot struct {
	Type     gate.Type
	Operands []string
}

func snapshot(c *circuit.Circuit, enc *encode.Encoder) map[string]gateSnapshot {
	out := make(map[string]gateSnapshot, c.NumGates())
	for id := 0; id < c.NumGates(); id++ {
		gid := circuit.GateId(id)
		operandNames := make([]string, len(c.Operands(gid)))
		for i, o := range c.Operands(gid) {
			operandNames[i] = enc.Decode(int(o))
		}
		out[enc.Decode(id)] = gateSnapshot{Type: c.Type(gid), Operands: operandNames}
	}
	return out
}

func TestParseSimpleAnd(t *testing.T) {
	src := `
INPUT(0)
INPUT(1)
OUTPUT(2)
2=AND(0,1)
`
	c, enc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumGates())
	assert.Equal(t, gate.And, c.Type(2))
	assert.Equal(t, []circuit.GateId{0, 1}, c.Operands(2))
	assert.Equal(t, "0", enc.Decode(0))
}

func TestParseConstAndVdd(t *testing.T) {
	src := `
INPUT(0)
OUTPUT(2)
1=CONST(1)
2=AND(0,1)
`
	c, enc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	// "1" is first mentioned after OUTPUT(2), so its id comes from enc.
	assert.Equal(t, gate.ConstTrue, c.Type(circuit.GateId(enc.Encode("1"))))

	src2 := `
OUTPUT(0)
0=vdd
`
	c2, _, err := Parse(strings.NewReader(src2))
	require.NoError(t, err)
	assert.Equal(t, gate.ConstTrue, c2.Type(0))
}

func TestParseIgnoresBlankAndCommentLines(t *testing.T) {
	src := `
# a comment
INPUT(0)

# another
OUTPUT(0)
`
	c, _, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumGates())
}

func TestParseWhitespaceToleration(t *testing.T) {
	src := `
  INPUT( 0 )
  INPUT(1)
  OUTPUT( 2 )
  2 = AND( 0 , 1 )
`
	c, _, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, gate.And, c.Type(2))
}

func TestParseRejectsUndefinedReference(t *testing.T) {
	src := `
INPUT(0)
OUTPUT(1)
1=AND(0,2)
`
	_, _, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParseRejectsUnknownOperator(t *testing.T) {
	src := `
INPUT(0)
INPUT(1)
OUTPUT(2)
2=FROB(0,1)
`
	_, _, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	src := "INPUT(0)\nINPUT(1)\nOUTPUT(2)\n2=AND(0,1)\n"
	c, enc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, enc))

	out := buf.String()
	assert.Contains(t, out, "INPUT(0)")
	assert.Contains(t, out, "INPUT(1)")
	assert.Contains(t, out, "OUTPUT(2)")
	assert.Contains(t, out, "2=AND(0,1)")
}

func TestWriteRoundTripPreservesStructure(t *testing.T) {
	// Deliberately reorders declarations and sprinkles comments/whitespace
	// relative to the canonical form Write emits; the reparsed circuit must
	// still be structurally identical once compared by name rather than id.
	src := `
# a scrambled but equivalent netlist
INPUT(1)
INPUT(0)
OUTPUT(3)
2=AND(0,1)
3  =  NOT( 2 )
`
	c, enc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, enc))

	c2, enc2, err := Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	if diff := cmp.Diff(snapshot(c, enc), snapshot(c2, enc2)); diff != "" {
		t.Fatalf("structure changed across write/reparse round trip (-want +got):\n%s", diff)
	}
}

func TestFirstMentionOrderDeterminesIds(t *testing.T) {
	// "c" is mentioned first via OUTPUT, before its defining line.
	src := `
INPUT(a)
INPUT(b)
OUTPUT(c)
c=AND(a,b)
`
	_, enc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 0, enc.Encode("a"))
	assert.Equal(t, 1, enc.Encode("b"))
	assert.Equal(t, 2, enc.Encode("c"))
}
