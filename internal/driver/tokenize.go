package driver

import (
	"fmt"

	"monkey/internal/diag"
	"monkey/internal/lexer"
	"monkey/internal/source"
	"monkey/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file at path. Illegal characters become warnings in
// the bag; the token stream still contains them.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	tokens := lexer.Tokenize(file.Text())
	reportIllegal(diag.BagReporter{Bag: bag}, file.Path, tokens)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

func reportIllegal(r diag.Reporter, path string, tokens []token.Token) int {
	n := 0
	for _, tok := range tokens {
		if tok.Kind == token.Illegal {
			diag.ReportWarning(r, diag.LexIllegalChar, path, fmt.Sprintf("illegal character %q", tok.Text))
			n++
		}
	}
	return n
}
