package randid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinterNeverRepeatsWithinInstance(t *testing.T) {
	m := NewMinter()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := m.Fresh()
		assert.False(t, seen[name], "fresh name repeated: %s", name)
		seen[name] = true
	}
}

func TestDistinctMintersShareRunPrefixButNotCounters(t *testing.T) {
	a := NewMinter()
	b := NewMinter()
	na := a.Fresh()
	nb := b.Fresh()
	assert.NotEqual(t, na, nb)
}
