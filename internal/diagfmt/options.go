// Package diagfmt renders tokens, diagnostics and syntax trees for the CLI.
package diagfmt

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color   bool
	BaseDir string // paths below it are shown relative
}
