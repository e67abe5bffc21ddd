// Package token defines lexical token kinds for the monkey front end.
// Invariants:
//   - Token.Text is exactly the source text the token was scanned from.
//   - EOF carries empty Text; Illegal carries the single offending character.
//   - Tokens carry no source position.
//   - Keywords are case-sensitive: only lowercase spellings are recognized.
package token
