package diagnostics

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewAppliesLevel(t *testing.T) {
	l := New(Warning)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}

func TestSilentDiscardsOutput(t *testing.T) {
	l := New(Silent)
	assert.Equal(t, io.Discard, l.Out)
	assert.False(t, DebugGate(l))
}

func TestDebugGateReflectsLevel(t *testing.T) {
	l := New(Debug)
	assert.True(t, DebugGate(l))

	l2 := New(Info)
	assert.False(t, DebugGate(l2))
}

func TestDiscardLoggerNeverPanics(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() { l.Info("no-op") })
}
