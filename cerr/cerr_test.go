package cerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageWithLine(t *testing.T) {
	e := AtLine("bench.Parse", 12, "unknown operator FOO")
	assert.Contains(t, e.Error(), "line 12")
	assert.Equal(t, ParseError, e.Kind)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("file not found")
	e := Wrap(IOError, "bench.Open", cause, "could not open input")
	assert.ErrorIs(t, e.Unwrap(), cause)
}

func TestIsMatchesKind(t *testing.T) {
	e := New(ConfigError, "pipeline.Configure", "k must be >= 2")
	assert.True(t, Is(e, ConfigError))
	assert.False(t, Is(e, IOError))
}
