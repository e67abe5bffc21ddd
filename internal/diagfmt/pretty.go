package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"monkey/internal/diag"
	"monkey/internal/source"
)

// Pretty writes one line per diagnostic:
//
//	<path>: <SEV> <CODE>: <message>
//
// The bag is rendered in its current order; call bag.Sort first for
// stable output.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pathStyle := color.New(color.Bold)
	codeStyle := color.New(color.Faint)
	for _, c := range []*color.Color{pathStyle, codeStyle} {
		setColor(c, opts.Color)
	}
	for _, d := range bag.Items() {
		sev := severityColor(d.Severity)
		setColor(sev, opts.Color)
		prefix := ""
		if d.Path != "" {
			prefix = pathStyle.Sprint(source.DisplayPath(d.Path, opts.BaseDir)) + ": "
		}
		if _, err := fmt.Fprintf(w, "%s%s %s: %s\n", prefix, sev.Sprint(d.Severity), codeStyle.Sprint(d.Code.ID()), d.Message); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
