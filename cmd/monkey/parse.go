package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"monkey/internal/diagfmt"
	"monkey/internal/driver"
)

var parseFormats = []string{"canonical", "tree", "json", "dump"}

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.mon|-",
		Short: "Parse a monkey source file and print its syntax tree",
		Long: `Parse reads a monkey source file and prints the program. The canonical
format is the fully parenthesised one-line rendering used by the repl.
A file name of "-" reads the program from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runParse,
	}
	cmd.Flags().String("format", "canonical", "output format (canonical|tree|json|dump)")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if !contains(parseFormats, format) {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	opts := driver.ParseOptions{MaxDiagnostics: maxDiag}
	var result *driver.ParseResult
	if args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result = driver.ParseSource(cmd.Context(), "<stdin>", content, opts)
	} else {
		result, err = driver.Parse(cmd.Context(), args[0], opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	}
	printTimings(cmd, result.Timing)
	if err := a.printDiagnostics(cmd, result.Bag); err != nil {
		return err
	}
	if result.Err != nil {
		return result.Err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tree":
		useColor, err := a.useColor(cmd, out)
		if err != nil {
			return err
		}
		return diagfmt.FormatASTTree(out, result.Program, diagfmt.PrettyOpts{Color: useColor})
	case "json":
		return diagfmt.FormatASTJSON(out, result.Program)
	case "dump":
		return diagfmt.DumpAST(out, result.Program)
	default:
		_, err := fmt.Fprintln(out, result.Canonical)
		return err
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
