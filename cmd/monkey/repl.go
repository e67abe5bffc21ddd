package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"monkey/internal/repl"
	"monkey/internal/trace"
)

func newREPLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Long: `Repl reads one program per line. In parse mode it prints the canonical
form of each line; in eval mode it prints the value, keeping bindings between lines.`,
		Args: cobra.NoArgs,
		RunE: a.runREPL,
	}
	cmd.Flags().String("mode", "", "repl mode (parse|eval); defaults to [repl].mode")
	cmd.Flags().Bool("dump-trace", false, "in eval mode, print the trace of a failing line to stderr")
	return cmd
}

func (a *app) runREPL(cmd *cobra.Command, _ []string) error {
	modeStr, err := cmd.Flags().GetString("mode")
	if err != nil {
		return fmt.Errorf("failed to get mode flag: %w", err)
	}
	if modeStr == "" {
		modeStr = a.cfg.REPL.Mode
	}
	mode, err := repl.ParseMode(modeStr)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	useColor, err := a.useColor(cmd, out)
	if err != nil {
		return err
	}

	dumpTrace, err := cmd.Flags().GetBool("dump-trace")
	if err != nil {
		return fmt.Errorf("failed to get dump-trace flag: %w", err)
	}

	opts := repl.Options{
		Mode:   mode,
		Prompt: a.cfg.REPL.Prompt,
		Color:  useColor,
		Tracer: trace.FromContext(cmd.Context()),
	}
	if dumpTrace {
		opts.ErrorLog = cmd.ErrOrStderr()
	}
	if isTerminal(cmd.InOrStdin()) && isTerminal(out) {
		fmt.Fprintf(out, "monkey %s (%s mode), Ctrl-D to exit\n", cmd.Root().Version, mode)
	}
	return repl.Start(cmd.Context(), cmd.InOrStdin(), out, opts)
}
