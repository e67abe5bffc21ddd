package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sanity-io/litter"

	"monkey/internal/ast"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func toJSONNode(n ast.Node) ASTNodeOutput {
	tn := buildTree(n)
	return fromTree(tn)
}

func fromTree(tn *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Type: tn.kind, Text: tn.detail}
	for _, c := range tn.children {
		out.Children = append(out.Children, fromTree(c))
	}
	return out
}

// FormatASTJSON writes the program tree as indented JSON.
func FormatASTJSON(w io.Writer, program *ast.Program) error {
	if program == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toJSONNode(program))
}

// DumpAST writes a Go-syntax dump of the raw node structs.
func DumpAST(w io.Writer, program *ast.Program) error {
	if program == nil {
		return fmt.Errorf("nil program")
	}
	opts := litter.Options{
		HidePrivateFields: true,
		StripPackageNames: true,
	}
	_, err := io.WriteString(w, opts.Sdump(program)+"\n")
	return err
}
