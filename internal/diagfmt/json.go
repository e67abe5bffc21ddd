package diagfmt

import (
	"encoding/json"
	"io"

	"monkey/internal/diag"
)

type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
}

type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// JSON writes every diagnostic in bag as one JSON document.
func JSON(w io.Writer, bag *diag.Bag) error {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag != nil {
		for _, d := range bag.Items() {
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.Level(),
				Code:     d.Code.ID(),
				Title:    d.Code.Title(),
				Message:  d.Message,
				File:     d.Path,
			})
		}
	}
	out.Count = len(out.Diagnostics)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
