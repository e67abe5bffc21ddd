package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"monkey/internal/diag"
	"monkey/internal/diagfmt"
	"monkey/internal/driver"
	"monkey/internal/ui"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [dir]",
		Short: "Parse every .mon file under a directory",
		Long: `Check parses all monkey sources below dir (default: [check].dir) in
parallel and reports syntax errors. Unchanged files are answered from the cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0 = [check].jobs or GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "ignore and do not update the check cache")
	cmd.Flags().Bool("clear-cache", false, "drop all cached results before checking")
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	dir := a.cfg.CheckDir()
	if len(args) == 1 {
		dir = args[0]
	}
	flags := cmd.Flags()
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !flags.Changed("jobs") {
		jobs = a.cfg.Check.Jobs
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	useTUI, err := resolveTTYMode(uiValue, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("invalid --ui value: %w", err)
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{Jobs: jobs, MaxDiagnostics: maxDiag}
	if a.cfg.Check.Cache && !noCache {
		cache, err := driver.OpenDiskCache("monkey")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "cache disabled: %v\n", err)
		} else {
			if clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
			}
			opts.UseCache, opts.Cache = true, cache
		}
	}

	var results []driver.CheckResult
	if useTUI {
		results, err = runCheckWithUI(cmd.Context(), dir, opts)
	} else {
		results, err = driver.CheckDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiag)
	for _, r := range results {
		bag.Merge(r.Bag)
	}
	sum := driver.Summarize(results)
	if format == "json" {
		bag.Sort()
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag); err != nil {
			return err
		}
		if sum.Failed > 0 {
			return driver.ErrCheckFailed
		}
		return nil
	}
	if err := a.printDiagnostics(cmd, bag); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checked %d files (%d statements, %d cached), %d failed\n",
		sum.Files, sum.Statements, sum.Cached, sum.Failed)
	if sum.Failed > 0 {
		return driver.ErrCheckFailed
	}
	return nil
}

type checkOutcome struct {
	results []driver.CheckResult
	err     error
}

// runCheckWithUI runs CheckDir in the background while a progress view
// consumes its events. CheckDir closes the channel when it returns, which
// also ends the view.
func runCheckWithUI(ctx context.Context, dir string, opts driver.CheckOptions) ([]driver.CheckResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	events := make(chan driver.Event, 256)
	opts.Events = events
	outcomeCh := make(chan checkOutcome, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		res, err := driver.CheckDir(ctx, dir, opts)
		outcomeCh <- checkOutcome{results: res, err: err}
	}()

	model := ui.NewProgressModel(fmt.Sprintf("checking %s", filepath.Clean(dir)), files, events)
	_, uiErr := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if uiErr != nil {
		cancel()
	}
	// the view may quit early; keep CheckDir from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
