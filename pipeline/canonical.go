package pipeline

import (
	"github.com/xDarkicex/cirbo/randid"
	"github.com/xDarkicex/cirbo/rewrite"
)

// RedundantGatesCleaner is the canonical [Clean] pipeline.
func RedundantGatesCleaner() Pipeline {
	return Composition(asPipeline(rewrite.RedundantGatesCleaner(false)))
}

// DuplicateGatesCleaner is the canonical [Clean, DupGates] pipeline.
func DuplicateGatesCleaner() Pipeline {
	return Composition(
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DuplicateGatesCleaner),
	)
}

// ReduceNotComposition is the canonical [ReduceNots, Clean] pipeline.
func ReduceNotComposition(minter *randid.Minter) Pipeline {
	return Composition(
		asPipeline(rewrite.ReduceNotComposition(minter)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
	)
}

// ConstantGateReducer is the canonical
// [ConstReduce, ReduceNots, Clean, DupGates] pipeline.
func ConstantGateReducer(minter *randid.Minter) Pipeline {
	return Composition(
		asPipeline(rewrite.ConstantGateReducer),
		asPipeline(rewrite.ReduceNotComposition(minter)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DuplicateGatesCleaner),
	)
}

// DuplicateOperandsCleaner is the canonical
// [Clean, DupOps, Clean(preserve_inputs), ConstReduce, ReduceNots, Clean,
// DupGates] pipeline.
func DuplicateOperandsCleaner(minter *randid.Minter) Pipeline {
	return Composition(
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DuplicateOperandsCleaner),
		asPipeline(rewrite.RedundantGatesCleaner(true)),
		asPipeline(rewrite.ConstantGateReducer),
		asPipeline(rewrite.ReduceNotComposition(minter)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DuplicateGatesCleaner),
	)
}

// MergeNotWithOthers is the canonical [MergeNot, Clean] pipeline.
func MergeNotWithOthers(minter *randid.Minter) Pipeline {
	return Composition(
		asPipeline(rewrite.MergeNotWithOthers(minter)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
	)
}

// ConnectSymmetricalGates is the canonical [Clean, Connect(flags), Clean]
// pipeline.
func ConnectSymmetricalGates(flags rewrite.SymmetricFlags) Pipeline {
	return Composition(
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.ConnectSymmetricalGates(flags)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
	)
}

// DisconnectSymmetricalGates is the canonical [Clean, Disconnect(k, flags)]
// pipeline.
func DisconnectSymmetricalGates(k int, flags rewrite.SymmetricFlags, minter *randid.Minter) Pipeline {
	return Composition(
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DisconnectSymmetricalGates(k, flags, minter)),
	)
}

// DeMorgan is the canonical
// [Clean, DupGates, MergeNot, Clean, DeMorgan, ReduceNots, Clean] pipeline.
func DeMorgan(minter *randid.Minter) Pipeline {
	return Composition(
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DuplicateGatesCleaner),
		asPipeline(rewrite.MergeNotWithOthers(minter)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
		asPipeline(rewrite.DeMorgan(minter)),
		asPipeline(rewrite.ReduceNotComposition(minter)),
		asPipeline(rewrite.RedundantGatesCleaner(false)),
	)
}

// SplitNotFromOthers is the canonical [SplitNot] pipeline.
func SplitNotFromOthers(minter *randid.Minter) Pipeline {
	return Composition(asPipeline(rewrite.SplitNotFromOthers(minter)))
}
