// Package randid owns the one piece of shared mutable state the core
// relies on: a process-wide, set-once random seed, plus the fresh-name
// minting scheme (random prefix + monotonic counter) rewrite passes use
// when they must synthesize a gate name guaranteed not to collide with
// anything already encoded.
package randid

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
)

// minterSeq numbers Minters process-wide so distinct instances never mint
// the same name.
var minterSeq uint64

var (
	once     sync.Once
	seed     int64
	seedSet  bool
	mu       sync.Mutex
	rng      *rand.Rand
	rngMu    sync.Mutex
	rngOnce  sync.Once
	runPfx   string
	runPfxMu sync.Mutex
)

// SetSeed sets the global seed exactly once. Subsequent calls are no-ops:
// the registry's lifecycle is "default value on process start, settable
// exactly once before any pass runs", and a one-shot cell is the natural
// Go shape for that.
func SetSeed(s int64) {
	once.Do(func() {
		mu.Lock()
		seed = s
		seedSet = true
		mu.Unlock()
	})
}

// Seed returns the current seed, defaulting to a fixed constant if never
// explicitly set. Reading does not itself fix the seed for SetSeed's
// purposes.
func Seed() int64 {
	mu.Lock()
	defer mu.Unlock()
	if seedSet {
		return seed
	}
	return 0
}

func sharedRNG() *rand.Rand {
	rngOnce.Do(func() {
		rng = rand.New(rand.NewSource(Seed()))
	})
	return rng
}

// runPrefix returns a process-run-unique prefix, generated once per
// process and reused by every fresh name minted thereafter so that
// distinct cirbo invocations in the same test process never collide.
func runPrefix() string {
	runPfxMu.Lock()
	defer runPfxMu.Unlock()
	if runPfx == "" {
		rngMu.Lock()
		n := sharedRNG().Uint32()
		rngMu.Unlock()
		runPfx = fmt.Sprintf("cb%x", n)
	}
	return runPfx
}

// Minter hands out fresh gate names: runPrefix + the Minter's process-wide
// sequence number + a monotonic counter local to the Minter instance.
type Minter struct {
	mu      sync.Mutex
	id      uint64
	counter uint64
}

// NewMinter returns a Minter ready to hand out fresh names.
func NewMinter() *Minter {
	return &Minter{id: atomic.AddUint64(&minterSeq, 1)}
}

// Fresh returns a name guaranteed unique within this process: the shared
// run prefix, this Minter's sequence number and its next monotonic
// counter value. Callers
// that need the name to also be absent from a specific Encoder should
// still check KeyExists before relying on uniqueness across processes
// sharing a seed.
func (m *Minter) Fresh() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("%s_%d_%d", runPrefix(), m.id, m.counter)
}
