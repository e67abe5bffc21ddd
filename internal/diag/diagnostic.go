package diag

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string
}

// New builds a diagnostic.
func New(sev Severity, code Code, path, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg, Path: path}
}

// Short renders "<path>: <SEV> <ID>: <message>".
func (d Diagnostic) Short() string {
	prefix := ""
	if d.Path != "" {
		prefix = d.Path + ": "
	}
	return prefix + d.Severity.String() + " " + d.Code.ID() + ": " + d.Message
}
