package bench

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/xDarkicex/cirbo/cerr"
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/gate"
)

type gateDef struct {
	op      string
	args    []string
	isVdd   bool
	line    int
}

// Parse reads a bench-format netlist from r and returns the Circuit it
// describes along with the NameEncoder that assigned ids to its gate
// names in textual first-mention order.
func Parse(r io.Reader) (*circuit.Circuit, *encode.Encoder, error) {
	enc := encode.New()

	var inputNames []string
	var outputNames []string
	isInput := make(map[string]bool)
	defs := make(map[string]gateDef)
	var defOrder []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		line := compact(raw)

		switch {
		case strings.HasPrefix(line, "INPUT(") && strings.HasSuffix(line, ")"):
			name := line[len("INPUT(") : len(line)-1]
			if name == "" {
				return nil, nil, cerr.AtLine("bench.Parse", lineNo, "empty INPUT name")
			}
			enc.Encode(name)
			isInput[name] = true
			inputNames = append(inputNames, name)

		case strings.HasPrefix(line, "OUTPUT(") && strings.HasSuffix(line, ")"):
			name := line[len("OUTPUT(") : len(line)-1]
			if name == "" {
				return nil, nil, cerr.AtLine("bench.Parse", lineNo, "empty OUTPUT name")
			}
			enc.Encode(name)
			outputNames = append(outputNames, name)

		default:
			eq := strings.IndexByte(line, '=')
			if eq < 0 {
				return nil, nil, cerr.AtLine("bench.Parse", lineNo, "missing '=' in gate definition")
			}
			name := line[:eq]
			rhs := line[eq+1:]
			if name == "" {
				return nil, nil, cerr.AtLine("bench.Parse", lineNo, "empty gate name")
			}
			enc.Encode(name)

			if rhs == "vdd" {
				defs[name] = gateDef{isVdd: true, line: lineNo}
				defOrder = append(defOrder, name)
				continue
			}

			open := strings.IndexByte(rhs, '(')
			if open < 0 || !strings.HasSuffix(rhs, ")") {
				return nil, nil, cerr.AtLine("bench.Parse", lineNo, "malformed gate expression")
			}
			op := rhs[:open]
			argsStr := rhs[open+1 : len(rhs)-1]

			var args []string
			if argsStr != "" {
				args = strings.Split(argsStr, ",")
			}

			if op != "CONST" {
				for _, a := range args {
					enc.Encode(a)
				}
			}

			defs[name] = gateDef{op: op, args: args, line: lineNo}
			defOrder = append(defOrder, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, cerr.Wrap(cerr.IOError, "bench.Parse", err, "reading bench input")
	}

	n := enc.Size()
	gates := make([]circuit.GateInfo, n)
	defined := make([]bool, n)

	for _, name := range inputNames {
		id := enc.Encode(name)
		gates[id] = circuit.GateInfo{Type: gate.Input}
		defined[id] = true
	}

	for _, name := range defOrder {
		def := defs[name]
		id := enc.Encode(name)

		if def.isVdd {
			gates[id] = circuit.GateInfo{Type: gate.ConstTrue}
			defined[id] = true
			continue
		}

		if def.op == "CONST" {
			if len(def.args) != 1 {
				return nil, nil, cerr.AtLine("bench.Parse", def.line, "CONST requires exactly one argument")
			}
			v, err := strconv.Atoi(def.args[0])
			if err != nil || (v != 0 && v != 1) {
				return nil, nil, cerr.AtLine("bench.Parse", def.line, "CONST argument must be 0 or 1")
			}
			if v == 0 {
				gates[id] = circuit.GateInfo{Type: gate.ConstFalse}
			} else {
				gates[id] = circuit.GateInfo{Type: gate.ConstTrue}
			}
			defined[id] = true
			continue
		}

		t, ok := opToType[def.op]
		if !ok {
			return nil, nil, cerr.AtLine("bench.Parse", def.line, "unknown operator "+def.op)
		}

		operands := make([]circuit.GateId, len(def.args))
		for i, a := range def.args {
			operands[i] = circuit.GateId(enc.Encode(a))
		}
		if t.Symmetric() {
			sortGateIds(operands)
		}
		gates[id] = circuit.GateInfo{Type: t, Operands: operands}
		defined[id] = true
	}

	for id := 0; id < n; id++ {
		if !defined[id] {
			return nil, nil, cerr.New(cerr.ParseError, "bench.Parse",
				"gate \""+enc.Decode(id)+"\" is referenced but never declared as INPUT or defined")
		}
	}

	outputs := make([]circuit.GateId, len(outputNames))
	for i, name := range outputNames {
		outputs[i] = circuit.GateId(enc.Encode(name))
	}

	c, err := circuit.Build(gates, outputs)
	if err != nil {
		return nil, nil, err
	}
	return c, enc, nil
}

func compact(line string) string {
	var b strings.Builder
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sortGateIds(ids []circuit.GateId) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
