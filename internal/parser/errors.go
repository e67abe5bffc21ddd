package parser

import (
	"fmt"

	"monkey/internal/diag"
	"monkey/internal/token"
)

// ErrorKind classifies a syntax error.
type ErrorKind uint8

const (
	// UnexpectedToken: a specific kind was required next.
	UnexpectedToken ErrorKind = iota + 1
	// MissingPrefixRule: the token cannot start an expression.
	MissingPrefixRule
	// MissingInfixRule: the token cannot continue an expression.
	MissingInfixRule
	// InvalidInteger: the digit run does not fit in int64.
	InvalidInteger
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingPrefixRule:
		return "MissingPrefixRule"
	case MissingInfixRule:
		return "MissingInfixRule"
	case InvalidInteger:
		return "InvalidInteger"
	}
	return "ErrorKind(?)"
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case UnexpectedToken:
		return diag.SynUnexpectedToken
	case MissingPrefixRule:
		return diag.SynNoPrefixRule
	case MissingInfixRule:
		return diag.SynNoInfixRule
	case InvalidInteger:
		return diag.SynInvalidInteger
	}
	return diag.UnknownCode
}

// Error is the single error a failed parse returns.
type Error struct {
	Kind     ErrorKind
	Expected token.Kind // UnexpectedToken only
	Found    token.Kind
	Literal  string // offending token text
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("expected next token to be %s, got %s instead", e.Expected, e.Found)
	case MissingPrefixRule:
		return fmt.Sprintf("no prefix parse function for %s", e.Found)
	case MissingInfixRule:
		return fmt.Sprintf("no infix parse function for %s", e.Found)
	case InvalidInteger:
		return fmt.Sprintf("could not parse %q as integer", e.Literal)
	}
	return "parse error"
}
