// Package diag defines the diagnostic model shared by the toolchain phases.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a short
// human message and the path of the file it belongs to. Tokens carry no source
// positions, so diagnostics are file-scoped.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports limits, sorting and merging. Rendering lives in internal/diagfmt.
package diag
