package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal marks a character the lexer does not recognize.
	Illegal Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Int represents an integer literal token.
	Int

	// Assign represents the assign operator token.
	Assign // =
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Bang represents the bang operator token.
	Bang // !
	// Asterisk represents the asterisk operator token.
	Asterisk // *
	// Slash represents the slash operator token.
	Slash // /
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >

	// Comma represents the comma delimiter token.
	Comma // ,
	// Semicolon represents the semicolon delimiter token.
	Semicolon // ;
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }

	// Function represents the 'fn' keyword.
	Function // fn
	// Let represents the 'let' keyword.
	Let // let
	// True represents the 'true' keyword.
	True // true
	// False represents the 'false' keyword.
	False // false
	// If represents the 'if' keyword.
	If // if
	// Else represents the 'else' keyword.
	Else // else
	// Return represents the 'return' keyword.
	Return // return

	// Eq represents the equality operator token.
	Eq // ==
	// NotEq represents the inequality operator token.
	NotEq // !=

	kindCount
)

// names are the stable spellings used in error messages and tool output.
var names = [kindCount]string{
	Illegal:   "Illegal",
	EOF:       "Eof",
	Ident:     "Ident",
	Int:       "Int",
	Assign:    "Assign",
	Plus:      "Plus",
	Minus:     "Minus",
	Bang:      "Bang",
	Asterisk:  "Asterisk",
	Slash:     "Slash",
	Lt:        "Lt",
	Gt:        "Gt",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	LParen:    "Lparen",
	RParen:    "Rparen",
	LBrace:    "Lbrace",
	RBrace:    "Rbrace",
	Function:  "Function",
	Let:       "Let",
	True:      "True",
	False:     "False",
	If:        "If",
	Else:      "Else",
	Return:    "Return",
	Eq:        "Eq",
	NotEq:     "NotEq",
}

func (k Kind) String() string {
	if k < kindCount {
		return names[k]
	}
	return "Kind(?)"
}
