// Package object defines the runtime values produced by the evaluator.
//
// Object is a closed set: Integer, Boolean, Null, ReturnValue, Error and
// Function. Callers discriminate with a type switch or Type().
package object

import (
	"strconv"
	"strings"

	"monkey/internal/ast"
)

type ObjectType string

const (
	IntegerObj     ObjectType = "INTEGER"
	BooleanObj     ObjectType = "BOOLEAN"
	NullObj        ObjectType = "NULL"
	ReturnValueObj ObjectType = "RETURN_VALUE"
	ErrorObj       ObjectType = "ERROR"
	FunctionObj    ObjectType = "FUNCTION"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	object()
}

type Integer struct {
	Value int64
}

func (*Integer) object()           {}
func (*Integer) Type() ObjectType  { return IntegerObj }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

func (*Boolean) object()           {}
func (*Boolean) Type() ObjectType  { return BooleanObj }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

type Null struct{}

func (*Null) object()          {}
func (*Null) Type() ObjectType { return NullObj }
func (*Null) Inspect() string  { return "null" }

// ReturnValue wraps the operand of a return statement while it unwinds.
type ReturnValue struct {
	Value Object
}

func (*ReturnValue) object()           {}
func (*ReturnValue) Type() ObjectType  { return ReturnValueObj }
func (r *ReturnValue) Inspect() string { return r.Value.Inspect() }

// Error is a runtime failure; it short-circuits evaluation like a return.
type Error struct {
	Message string
}

func (*Error) object()           {}
func (*Error) Type() ObjectType  { return ErrorObj }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a closure over the environment it was created in.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (*Function) object()          {}
func (*Function) Type() ObjectType { return FunctionObj }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "fn(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// Shared singletons; booleans and null compare by identity.
var (
	NULL  = &Null{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// NativeBool returns the shared boolean for b.
func NativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// IsError reports whether obj is a runtime error.
func IsError(obj Object) bool {
	return obj != nil && obj.Type() == ErrorObj
}
