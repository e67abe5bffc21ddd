// Package fuzztests holds fuzz harnesses for the front end
// (source -> lexer -> parser -> printers). They guard against panics,
// hangs and printers whose output does not parse back.
package fuzztests
