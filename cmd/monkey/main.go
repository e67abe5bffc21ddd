package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"monkey/internal/config"
	"monkey/internal/prof"
	"monkey/internal/version"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfg        config.Config
	closeTrace func()
	profile    *prof.Session
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{cfg: config.Default(), closeTrace: func() {}}
	root := &cobra.Command{
		Use:   "monkey",
		Short: "Monkey language toolchain",
		Long: `Monkey parses, formats and evaluates programs written in the Monkey language.
Without a subcommand it starts the interactive prompt.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Args:              cobra.NoArgs,
		RunE:              a.runREPL,
	}
	root.Flags().String("mode", "", "repl mode (parse|eval); defaults to [repl].mode")

	pf := root.PersistentFlags()
	pf.String("color", "", "colorize output (auto|on|off); defaults to [repl].color")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("config", "", "path to monkey.toml (default: search from the working directory up)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(
		newREPLCmd(a),
		newTokenizeCmd(a),
		newParseCmd(a),
		newFmtCmd(a),
		newRunCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// setup loads monkey.toml and installs the tracer before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		a.cfg, err = config.Load(path)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	a.closeTrace = cleanup
	return a.startProfiling(cmd)
}

func (a *app) startProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	for flag, dst := range map[string]*string{"cpuprofile": &opts.CPU, "memprofile": &opts.Mem, "runtime-trace": &opts.Trace} {
		v, err := cmd.Flags().GetString(flag)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flag, err)
		}
		*dst = v
	}
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return err
	}
	a.profile = session
	return nil
}

func (a *app) shutdown(errOut io.Writer) {
	if err := a.profile.Stop(); err != nil {
		fmt.Fprintf(errOut, "profile: %v\n", err)
	}
	a.profile = nil
	a.closeTrace()
	a.closeTrace = func() {}
}

// main builds the command tree, executes it and exits with status 1 on error.
func main() {
	root, a := newRootCmd()
	err := root.Execute()
	a.shutdown(root.ErrOrStderr())
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether stream is an *os.File attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color (or [repl].color) for output written to w.
func (a *app) useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if value == "" {
		value = a.cfg.REPL.Color
	}
	return resolveTTYMode(value, w)
}

// resolveTTYMode parses an auto|on|off value and decides it for w.
// Both --color and --ui go through here.
func resolveTTYMode(value string, w io.Writer) (bool, error) {
	mode, err := config.ParseColorMode(value)
	if err != nil {
		return false, err
	}
	return mode.Enabled(isTerminal(w)), nil
}
