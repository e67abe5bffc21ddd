package driver

import (
	"bytes"
	"fmt"
	"os"

	"monkey/internal/format"
	"monkey/internal/source"
)

type FormatResult struct {
	Path    string
	Output  []byte
	Changed bool // output differs from the file on disk
}

// FormatFile formats path; with write set, changed files are rewritten in
// place keeping their permissions.
func FormatFile(path string, opts format.Options, write bool) (*FormatResult, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, raw))
	out, err := format.Source(file.Text(), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res := &FormatResult{Path: path, Output: out, Changed: !bytes.Equal(raw, out)}
	if write && res.Changed {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return res, nil
}
