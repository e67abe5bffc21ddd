// Package ast defines the syntax tree produced by the parser.
//
// The node set is closed: Program, the three statement kinds, BlockStatement,
// and the eight expression kinds declared in this package. Statement and
// Expression are sealed with unexported marker methods, so a type switch over
// the concrete types is exhaustive and no other package can add a node.
//
// Every node keeps the token that introduced it and renders itself in
// canonical form through String: binary and unary operations are fully
// parenthesized, let/return end with ';', blocks are wrapped in braces.
//
// Trees are built once, bottom-up, by the parser. Each node owns its children
// exclusively; nothing is shared and nothing points back to a parent. The only
// child that may be nil is IfExpression.Alternative.
package ast
