package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xDarkicex/cirbo/bench"
	"github.com/xDarkicex/cirbo/cerr"
	"github.com/xDarkicex/cirbo/diagnostics"
	"github.com/xDarkicex/cirbo/pipeline"
	"github.com/xDarkicex/cirbo/randid"
)

type rootFlags struct {
	inputPath string
	output    string
	pipeline  string
	nestCount int
	logLevel  string
	seed      int64
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "cirbo",
		Short: "Minimize boolean circuits in bench format",
		Long: "cirbo reads a bench-format netlist, applies a chosen circuit\n" +
			"minimization pipeline, and writes the minimized netlist back out.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(flags)
		},
	}

	var f *pflag.FlagSet = cmd.Flags()
	f.StringVarP(&flags.inputPath, "input-path", "i", "", "input bench file (required)")
	f.StringVarP(&flags.output, "output", "o", "", "output bench file (required)")
	f.StringVar(&flags.pipeline, "pipeline", "RedundantGatesCleaner",
		"canonical pipeline to run (see the list-pipelines command)")
	f.IntVar(&flags.nestCount, "nest-count", 1, "repeat the chosen pipeline this many times")
	f.StringVar(&flags.logLevel, "log-level", "warning", "debug|info|warning|error|silent")
	f.Int64Var(&flags.seed, "seed", 0, "fresh-name random seed (set once per process)")

	cmd.MarkFlagRequired("input-path")
	cmd.MarkFlagRequired("output")

	cmd.AddCommand(newListPipelinesCmd())

	return cmd
}

func newListPipelinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-pipelines",
		Short: "List every registered canonical pipeline name",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range pipeline.Names() {
				cmd.Println(name)
			}
			return nil
		},
	}
}

func parseLogLevel(s string) (diagnostics.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return diagnostics.Debug, true
	case "info":
		return diagnostics.Info, true
	case "warning", "warn":
		return diagnostics.Warning, true
	case "error":
		return diagnostics.Error, true
	case "silent":
		return diagnostics.Silent, true
	default:
		return diagnostics.Warning, false
	}
}

func runRoot(flags rootFlags) error {
	level, ok := parseLogLevel(flags.logLevel)
	if !ok {
		return cerr.New(cerr.ConfigError, "cirbo", "unknown --log-level "+flags.logLevel)
	}
	logger := diagnostics.New(level)

	randid.SetSeed(flags.seed)

	in, err := os.Open(flags.inputPath)
	if err != nil {
		return cerr.Wrap(cerr.IOError, "cirbo", err, "opening input bench file")
	}
	defer in.Close()

	c, enc, err := bench.Parse(in)
	if err != nil {
		return err
	}
	if diagnostics.DebugGate(logger) {
		logger.WithField("gates", c.NumGates()).Debug("parsed circuit")
	}

	minter := randid.NewMinter()
	step, err := pipeline.Lookup(flags.pipeline, minter)
	if err != nil {
		return cerr.Wrap(cerr.ConfigError, "cirbo", err, "resolving --pipeline")
	}
	run := pipeline.Nest(flags.nestCount, step)

	nc, nenc, err := run(c, enc)
	if err != nil {
		return err
	}
	if diagnostics.DebugGate(logger) {
		logger.WithField("gates", nc.NumGates()).Debug("minimized circuit")
	}

	out, err := os.Create(flags.output)
	if err != nil {
		return cerr.Wrap(cerr.IOError, "cirbo", err, "creating output bench file")
	}
	defer out.Close()

	if err := bench.Write(out, nc, nenc); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"input_gates":  c.NumGates(),
		"output_gates": nc.NumGates(),
	}).Info("minimization complete")
	return nil
}
