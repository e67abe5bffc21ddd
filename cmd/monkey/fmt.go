package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"monkey/internal/driver"
	"monkey/internal/format"
)

func newFmtCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] file.mon...",
		Short: "Format monkey source files",
		Long: `Fmt rewrites programs in the standard layout: one statement per line,
indented blocks, parentheses only where precedence needs them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runFmt,
	}
	cmd.Flags().BoolP("write", "w", false, "write result to the source file instead of stdout")
	cmd.Flags().Int("indent", 0, "spaces per indent level; defaults to [format].indent")
	cmd.Flags().Bool("tabs", false, "indent with tabs")
	return cmd
}

func (a *app) runFmt(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	opts := format.Options{IndentWidth: a.cfg.Format.Indent, UseTabs: a.cfg.Format.Tabs}
	if cmd.Flags().Changed("indent") {
		if opts.IndentWidth, err = cmd.Flags().GetInt("indent"); err != nil {
			return fmt.Errorf("failed to get indent flag: %w", err)
		}
	}
	if cmd.Flags().Changed("tabs") {
		if opts.UseTabs, err = cmd.Flags().GetBool("tabs"); err != nil {
			return fmt.Errorf("failed to get tabs flag: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		res, err := driver.FormatFile(path, opts, write)
		if err != nil {
			return err
		}
		switch {
		case write && res.Changed:
			fmt.Fprintf(cmd.ErrOrStderr(), "formatted %s\n", path)
		case !write:
			if _, err := out.Write(res.Output); err != nil {
				return err
			}
		}
	}
	return nil
}
