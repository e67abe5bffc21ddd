package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo        Code = 1000
	LexIllegalChar Code = 1001

	// syntax
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynNoPrefixRule    Code = 2002
	SynNoInfixRule     Code = 2003
	SynInvalidInteger  Code = 2004

	// evaluation
	EvalInfo  Code = 3000
	EvalError Code = 3001

	// io
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown error",
	LexInfo:            "Lexical information",
	LexIllegalChar:     "Illegal character",
	SynInfo:            "Syntax information",
	SynUnexpectedToken: "Unexpected token",
	SynNoPrefixRule:    "No prefix parse rule",
	SynNoInfixRule:     "No infix parse rule",
	SynInvalidInteger:  "Invalid integer literal",
	EvalInfo:           "Evaluation information",
	EvalError:          "Evaluation error",
	IOLoadFileError:    "Failed to load file",
	IOCacheError:       "Cache access failed",
}

// ID returns the stable short identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
