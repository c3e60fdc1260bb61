package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/cirbo/diagnostics"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]diagnostics.Level{
		"debug":   diagnostics.Debug,
		"INFO":    diagnostics.Info,
		"warning": diagnostics.Warning,
		"warn":    diagnostics.Warning,
		"Error":   diagnostics.Error,
		"silent":  diagnostics.Silent,
	}
	for input, want := range cases {
		got, ok := parseLogLevel(input)
		require.True(t, ok, input)
		require.Equal(t, want, got)
	}

	_, ok := parseLogLevel("bogus")
	require.False(t, ok)
}

func TestNewRootCmdRequiresFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
}
