// Package format pretty-prints a parsed program back to source.
//
// Unlike ast's canonical String form, the output is meant to be read and
// re-parsed: one statement per line, every statement terminated by ';',
// indented blocks, and parentheses only where precedence requires them.
// Formatting a program that was parsed from formatted output yields the
// same bytes.
package format
