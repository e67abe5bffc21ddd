package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"monkey/internal/ast"
)

type treeNode struct {
	kind     string
	detail   string
	children []*treeNode
}

// buildTree mirrors the program as labelled nodes; operators, names and
// literal values go into detail.
func buildTree(n ast.Node) *treeNode {
	node := &treeNode{kind: n.Kind().String()}
	switch n := n.(type) {
	case *ast.LetStatement:
		node.detail = n.Name.Value
		node.children = append(node.children, buildTree(n.Value))
		return node
	case *ast.Identifier:
		node.detail = n.Value
	case *ast.IntegerLiteral:
		node.detail = strconv.FormatInt(n.Value, 10)
	case *ast.Boolean:
		node.detail = strconv.FormatBool(n.Value)
	case *ast.PrefixExpression:
		node.detail = n.Operator
	case *ast.InfixExpression:
		node.detail = n.Operator
	case *ast.IfExpression:
		if n.Alternative != nil {
			node.detail = "with else"
		}
	case *ast.FunctionLiteral:
		node.detail = fmt.Sprintf("%d params", len(n.Parameters))
	case *ast.CallExpression:
		node.detail = fmt.Sprintf("%d args", len(n.Arguments))
	}
	for _, child := range ast.Children(n) {
		node.children = append(node.children, buildTree(child))
	}
	return node
}

// FormatASTTree prints the program as an indented box-drawing tree.
func FormatASTTree(w io.Writer, program *ast.Program, opts PrettyOpts) error {
	if program == nil {
		return fmt.Errorf("nil program")
	}
	kindStyle := lipgloss.NewStyle()
	detailStyle := lipgloss.NewStyle()
	if opts.Color {
		kindStyle = kindStyle.Bold(true).Foreground(lipgloss.Color("6"))
		detailStyle = detailStyle.Foreground(lipgloss.Color("3"))
	}
	label := func(n *treeNode) string {
		if n.detail == "" {
			return kindStyle.Render(n.kind)
		}
		return kindStyle.Render(n.kind) + " " + detailStyle.Render(n.detail)
	}

	root := buildTree(program)
	if _, err := fmt.Fprintln(w, label(root)); err != nil {
		return err
	}
	var walk func(nodes []*treeNode, prefix string) error
	walk = func(nodes []*treeNode, prefix string) error {
		for i, n := range nodes {
			branch, next := "├─ ", "│  "
			if i == len(nodes)-1 {
				branch, next = "└─ ", "   "
			}
			if _, err := fmt.Fprintln(w, prefix+branch+label(n)); err != nil {
				return err
			}
			if err := walk(n.children, prefix+next); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root.children, "")
}
