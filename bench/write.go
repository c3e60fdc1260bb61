package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

// Write emits c in bench format to w, decoding names through enc: every
// INPUT(...) line in input order, a blank line, every OUTPUT(...) line in
// output order, a blank line, then one "name=OP(operands)" line per
// non-input gate in id order.
func Write(w io.Writer, c *circuit.Circuit, enc *encode.Encoder) error {
	bw := bufio.NewWriter(w)

	for _, id := range c.Inputs() {
		fmt.Fprintf(bw, "INPUT(%s)\n", enc.Decode(int(id)))
	}
	fmt.Fprintln(bw)

	for _, id := range c.Outputs() {
		fmt.Fprintf(bw, "OUTPUT(%s)\n", enc.Decode(int(id)))
	}
	fmt.Fprintln(bw)

	for id := 0; id < c.NumGates(); id++ {
		t := c.Type(circuit.GateId(id))
		if t == gate.Input {
			continue
		}
		if err := writeGateLine(bw, c, enc, circuit.GateId(id), t); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeGateLine(bw *bufio.Writer, c *circuit.Circuit, enc *encode.Encoder, id circuit.GateId, t gate.Type) error {
	name := enc.Decode(int(id))

	if t.IsConst() {
		digit := "0"
		if t == gate.ConstTrue {
			digit = "1"
		}
		_, err := fmt.Fprintf(bw, "%s=CONST(%s)\n", name, digit)
		return err
	}

	op, ok := typeToOp[t]
	if !ok {
		return fmt.Errorf("bench.Write: unhandled gate type %s", t)
	}

	operandNames := make([]string, len(c.Operands(id)))
	for i, operand := range c.Operands(id) {
		operandNames[i] = enc.Decode(int(operand))
	}

	_, err := fmt.Fprintf(bw, "%s=%s(%s)\n", name, op, strings.Join(operandNames, ","))
	return err
}

