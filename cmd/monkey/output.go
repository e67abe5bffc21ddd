package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"monkey/internal/diag"
	"monkey/internal/diagfmt"
	"monkey/internal/observ"
)

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if n < 1 || n > math.MaxUint16 {
		return 0, fmt.Errorf("--max-diagnostics must be between 1 and %d, got %d", math.MaxUint16, n)
	}
	return n, nil
}

// printDiagnostics writes bag to the command's stderr, sorted.
func (a *app) printDiagnostics(cmd *cobra.Command, bag *diag.Bag) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	w := cmd.ErrOrStderr()
	useColor, err := a.useColor(cmd, w)
	if err != nil {
		return err
	}
	cwd, _ := os.Getwd()
	bag.Sort()
	if err := diagfmt.Pretty(w, bag, diagfmt.PrettyOpts{Color: useColor, BaseDir: cwd}); err != nil {
		return err
	}
	if bag.Len() >= int(bag.Cap()) {
		_, err = fmt.Fprintf(w, "note: stopped after %d diagnostics (--max-diagnostics)\n", bag.Cap())
	}
	return err
}

// printTimings writes the phase report when --timings is set.
func printTimings(cmd *cobra.Command, report observ.Report) {
	show, err := cmd.Flags().GetBool("timings")
	if err != nil || !show {
		return
	}
	writeTimings(cmd.ErrOrStderr(), report)
}

func writeTimings(out io.Writer, report observ.Report) {
	for _, phase := range report.Phases {
		if phase.Note != "" {
			fmt.Fprintf(out, "%-8s %8.3f ms (%s)\n", phase.Name, phase.DurationMS, phase.Note)
			continue
		}
		fmt.Fprintf(out, "%-8s %8.3f ms\n", phase.Name, phase.DurationMS)
	}
	fmt.Fprintf(out, "%-8s %8.3f ms\n", "total", report.TotalMS)
}
