package pipeline

import (
	"fmt"
	"sort"
	"sync"

	"github.com/xDarkicex/cirbo/randid"
	"github.com/xDarkicex/cirbo/rewrite"
)

// Builder constructs a Pipeline given a fresh-name minter shared across the
// whole run. Pipelines parameterized by operator flags or arity (Connect,
// Disconnect) are registered under a fixed default (every symmetric
// operator enabled, k=2); a caller needing a different configuration
// builds it directly from this package's exported canonical functions
// instead of going through the registry.
type Builder func(minter *randid.Minter) Pipeline

// Registry maps a canonical pipeline name to its Builder. Populated once
// at init time; callers never mutate it directly.
var Registry = make(map[string]Builder)

var registryOnce sync.Once

func register(name string, b Builder) {
	Registry[name] = b
}

func init() {
	registryOnce.Do(func() {
		register("RedundantGatesCleaner", func(*randid.Minter) Pipeline {
			return RedundantGatesCleaner()
		})
		register("DuplicateGatesCleaner", func(*randid.Minter) Pipeline {
			return DuplicateGatesCleaner()
		})
		register("ReduceNotComposition", func(m *randid.Minter) Pipeline {
			return ReduceNotComposition(m)
		})
		register("ConstantGateReducer", func(m *randid.Minter) Pipeline {
			return ConstantGateReducer(m)
		})
		register("DuplicateOperandsCleaner", func(m *randid.Minter) Pipeline {
			return DuplicateOperandsCleaner(m)
		})
		register("MergeNotWithOthers", func(m *randid.Minter) Pipeline {
			return MergeNotWithOthers(m)
		})
		register("ConnectSymmetricalGates", func(m *randid.Minter) Pipeline {
			return ConnectSymmetricalGates(rewrite.AllSymmetric())
		})
		register("DisconnectSymmetricalGates", func(m *randid.Minter) Pipeline {
			return DisconnectSymmetricalGates(2, rewrite.AllSymmetric(), m)
		})
		register("DeMorgan", func(m *randid.Minter) Pipeline {
			return DeMorgan(m)
		})
		register("SplitNotFromOthers", func(m *randid.Minter) Pipeline {
			return SplitNotFromOthers(m)
		})

		// "all" composes every canonical pipeline once, in table order.
		// It is a convenience mode for exercising the full pass set, not
		// a new semantic pipeline of its own.
		register("all", func(m *randid.Minter) Pipeline {
			names := canonicalOrder()
			steps := make([]Pipeline, 0, len(names))
			for _, name := range names {
				steps = append(steps, Registry[name](m))
			}
			return Composition(steps...)
		})
	})
}

// canonicalOrder returns every registered name except "all" itself, in
// canonical table order.
func canonicalOrder() []string {
	return []string{
		"RedundantGatesCleaner",
		"DuplicateGatesCleaner",
		"ReduceNotComposition",
		"ConstantGateReducer",
		"DuplicateOperandsCleaner",
		"MergeNotWithOthers",
		"ConnectSymmetricalGates",
		"DisconnectSymmetricalGates",
		"DeMorgan",
		"SplitNotFromOthers",
	}
}

// Names returns every registered pipeline name in sorted order, suitable
// for a CLI's --pipeline flag help text.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves name to a ready-to-run Pipeline bound to minter, or
// returns an error naming every registered pipeline if name is unknown.
func Lookup(name string, minter *randid.Minter) (Pipeline, error) {
	build, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("pipeline: unknown pipeline %q (known: %v)", name, Names())
	}
	return build(minter), nil
}
