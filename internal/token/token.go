package token

// Token is a single lexical unit: its kind and the literal text it was scanned from.
type Token struct {
	Kind Kind
	Text string
}

// New builds a token.
func New(k Kind, text string) Token {
	return Token{Kind: k, Text: text}
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsLiteral reports whether the token is an integer or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Int, True, False:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an arithmetic or comparison operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Assign, Plus, Minus, Bang, Asterisk, Slash, Lt, Gt, Eq, NotEq:
		return true
	default:
		return false
	}
}

// IsDelimiter reports whether the token is punctuation.
func (t Token) IsDelimiter() bool {
	switch t.Kind {
	case Comma, Semicolon, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case Function, Let, True, False, If, Else, Return:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}
