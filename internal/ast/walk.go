package ast

// Visitor is called by Walk for every node. If Visit returns a non-nil
// visitor w, Walk visits each child of node with w, then calls w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Children returns the direct children of node in source order.
// A missing if-alternative is omitted.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		out := make([]Node, 0, len(n.Statements))
		for _, s := range n.Statements {
			out = append(out, s)
		}
		return out
	case *LetStatement:
		return []Node{n.Name, n.Value}
	case *ReturnStatement:
		return []Node{n.ReturnValue}
	case *ExpressionStatement:
		return []Node{n.Expression}
	case *BlockStatement:
		out := make([]Node, 0, len(n.Statements))
		for _, s := range n.Statements {
			out = append(out, s)
		}
		return out
	case *PrefixExpression:
		return []Node{n.Right}
	case *InfixExpression:
		return []Node{n.Left, n.Right}
	case *IfExpression:
		if n.Alternative == nil {
			return []Node{n.Condition, n.Consequence}
		}
		return []Node{n.Condition, n.Consequence, n.Alternative}
	case *FunctionLiteral:
		out := make([]Node, 0, len(n.Parameters)+1)
		for _, p := range n.Parameters {
			out = append(out, p)
		}
		return append(out, n.Body)
	case *CallExpression:
		out := make([]Node, 0, len(n.Arguments)+1)
		out = append(out, n.Function)
		for _, a := range n.Arguments {
			out = append(out, a)
		}
		return out
	default:
		// Identifier, IntegerLiteral, Boolean
		return nil
	}
}

// Walk traverses the tree depth-first.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range Children(node) {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in pre-order. If f returns false the
// children of that node are skipped. f is called with nil after a node's
// children have been visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Inspect(node, func(x Node) bool {
		if x != nil {
			n++
		}
		return true
	})
	return n
}
