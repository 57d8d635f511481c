// Command filter reads standard input and writes it to standard output with
// every occurrence of the given string replaced by asterisks.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/k0sproject/filter"
	"github.com/k0sproject/filter/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, slog.LevelInfo)

	cmd := newRootCommand(logger, stdin, stdout)
	cmd.SetIn(stdin)
	cmd.SetErr(stderr)
	cmd.SetContext(ctx)

	// Execute is bypassed, it would route the needles "__complete" and
	// "__completeNoDesc" to cobra's hidden shell completion command.
	err := cmd.ValidateArgs(args)
	if err == nil {
		err = cmd.RunE(cmd, args)
	}
	if err != nil {
		if errors.Is(err, filter.ErrUsage) {
			_, _ = io.WriteString(stderr, cmd.UsageString())
		}
		logger.Error("filter failed", log.ErrorAttr(err))
	}

	return filter.ExitCode(err)
}

func newRootCommand(logger *slog.Logger, stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <needle>",
		Short: "Replace every occurrence of needle in standard input with asterisks",
		Long: `Reads standard input to the end and writes it to standard output with every
non-overlapping occurrence of needle replaced by the same number of asterisks.
The needle is matched byte for byte and taken verbatim, it may start with a dash.`,
		Args: exactlyOneArg,
		// the needle is taken verbatim, "-h" is a needle like any other
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				logger.Info("reading standard input until end of file")
			}
			return filter.New(args[0], filter.WithLogger(logger)).Run(cmd.Context(), stdin, stdout)
		},
	}
	cmd.SetUsageTemplate(usageTemplate)
	return cmd
}

const usageTemplate = `Usage:
  {{.UseLine}}
`

func exactlyOneArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return filter.ErrUsage.Wrapf("accepts exactly 1 arg, received %d", len(args))
	}
	return nil
}
