package diag

// Reporter is the minimal sink phases emit diagnostics into.
type Reporter interface {
	Report(code Code, sev Severity, path, msg string)
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, path, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, path, msg))
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, string, string) {}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, path, msg string) {
	if r != nil {
		r.Report(code, SevError, path, msg)
	}
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, path, msg string) {
	if r != nil {
		r.Report(code, SevWarning, path, msg)
	}
}
