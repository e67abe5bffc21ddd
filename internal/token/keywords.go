package token

var keywords = map[string]Kind{
	"fn":     Function,
	"let":    Let,
	"true":   True,
	"false":  False,
	"if":     If,
	"else":   Else,
	"return": Return,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupIdent returns the keyword kind for ident or Ident.
func LookupIdent(ident string) Kind {
	if k, ok := LookupKeyword(ident); ok {
		return k
	}
	return Ident
}
