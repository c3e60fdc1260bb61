// Package pipeline threads a (Circuit, Encoder) pair through one or more
// rewrite passes, and names the canonical minimization recipes as
// ready-made pipelines plus a string-keyed registry so a driver can select
// one by name.
package pipeline

import (
	"github.com/xDarkicex/cirbo/circuit"
	"github.com/xDarkicex/cirbo/encode"
	"github.com/xDarkicex/cirbo/rewrite"
)

// Pipeline is anything that consumes a (Circuit, Encoder) pair and produces
// a new one. A rewrite.Pass is itself a Pipeline of one step.
type Pipeline func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error)

// Composition runs every step left to right, threading each step's output
// into the next. An empty Composition is the identity pipeline.
func Composition(steps ...Pipeline) Pipeline {
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		var err error
		for _, step := range steps {
			c, enc, err = step(c, enc)
			if err != nil {
				return nil, nil, err
			}
		}
		return c, enc, nil
	}
}

// Nest runs Composition(steps...) n times in sequence. Convergence is not
// guaranteed; n is a fixed caller choice, not a fixpoint search.
func Nest(n int, steps ...Pipeline) Pipeline {
	body := Composition(steps...)
	return func(c *circuit.Circuit, enc *encode.Encoder) (*circuit.Circuit, *encode.Encoder, error) {
		var err error
		for i := 0; i < n; i++ {
			c, enc, err = body(c, enc)
			if err != nil {
				return nil, nil, err
			}
		}
		return c, enc, nil
	}
}

func asPipeline(p rewrite.Pass) Pipeline {
	return Pipeline(p)
}
