package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"monkey/internal/driver"
	"monkey/internal/eval"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run file.mon",
		Short: "Evaluate a monkey program and print its value",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRun,
	}
}

func (a *app) runRun(cmd *cobra.Command, args []string) error {
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	result, err := driver.Run(cmd.Context(), args[0], driver.ParseOptions{MaxDiagnostics: maxDiag})
	var runtimeErr *eval.RuntimeError
	switch {
	case errors.As(err, &runtimeErr):
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %s\n", runtimeErr.Message)
		return err
	case err != nil:
		return err
	}
	printTimings(cmd, result.Timing)
	if err := a.printDiagnostics(cmd, result.Bag); err != nil {
		return err
	}
	if result.Err != nil {
		return result.Err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Value.Inspect())
	return err
}
