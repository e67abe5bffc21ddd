// Package eval is a tree-walking interpreter over ast nodes.
//
// Runtime failures are values: an *object.Error stops evaluation of the
// enclosing program the same way a return does.
package eval

import (
	"context"
	"errors"
	"fmt"

	"monkey/internal/ast"
	"monkey/internal/object"
)

// maxCallDepth bounds recursion so runaway programs fail instead of
// exhausting the goroutine stack.
const maxCallDepth = 2048

type evaluator struct {
	ctx   context.Context
	depth int
}

// Eval evaluates node in env.
func Eval(node ast.Node, env *object.Environment) object.Object {
	ev := &evaluator{ctx: context.Background()}
	return ev.eval(node, env)
}

// RuntimeError is returned by Run when the program evaluates to an error.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// ErrCanceled is reported when ctx ends before evaluation finishes.
var ErrCanceled = errors.New("evaluation canceled")

// Run evaluates program under ctx and converts a runtime error value into
// a Go error.
func Run(ctx context.Context, program *ast.Program, env *object.Environment) (object.Object, error) {
	if program == nil {
		return nil, errors.New("eval: nil program")
	}
	ev := &evaluator{ctx: ctx}
	result := ev.eval(program, env)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	if errObj, ok := result.(*object.Error); ok {
		return nil, &RuntimeError{Message: errObj.Message}
	}
	return result, nil
}

func (ev *evaluator) eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {
	case *ast.Program:
		return ev.evalProgram(node, env)
	case *ast.ExpressionStatement:
		return ev.eval(node.Expression, env)
	case *ast.BlockStatement:
		return ev.evalBlock(node, env)
	case *ast.ReturnStatement:
		val := ev.eval(node.ReturnValue, env)
		if object.IsError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}
	case *ast.LetStatement:
		val := ev.eval(node.Value, env)
		if object.IsError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return object.NULL

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.Boolean:
		return object.NativeBool(node.Value)
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.PrefixExpression:
		right := ev.eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalPrefix(node.Operator, right)
	case *ast.InfixExpression:
		left := ev.eval(node.Left, env)
		if object.IsError(left) {
			return left
		}
		right := ev.eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalInfix(node.Operator, left, right)
	case *ast.IfExpression:
		return ev.evalIf(node, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpression:
		fn := ev.eval(node.Function, env)
		if object.IsError(fn) {
			return fn
		}
		args := make([]object.Object, 0, len(node.Arguments))
		for _, a := range node.Arguments {
			val := ev.eval(a, env)
			if object.IsError(val) {
				return val
			}
			args = append(args, val)
		}
		return ev.apply(fn, args)
	}
	return newError("cannot evaluate %T", node)
}

// evalProgram unwraps a top-level return and stops at the first error.
func (ev *evaluator) evalProgram(p *ast.Program, env *object.Environment) object.Object {
	var result object.Object = object.NULL
	for _, stmt := range p.Statements {
		result = ev.eval(stmt, env)
		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.Error:
			return r
		}
	}
	return result
}

// evalBlock keeps ReturnValue wrapped so it unwinds through nested blocks.
func (ev *evaluator) evalBlock(b *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object = object.NULL
	for _, stmt := range b.Statements {
		result = ev.eval(stmt, env)
		if rt := result.Type(); rt == object.ReturnValueObj || rt == object.ErrorObj {
			return result
		}
	}
	return result
}

func (ev *evaluator) evalIf(ie *ast.IfExpression, env *object.Environment) object.Object {
	cond := ev.eval(ie.Condition, env)
	if object.IsError(cond) {
		return cond
	}
	switch {
	case isTruthy(cond):
		return ev.eval(ie.Consequence, env)
	case ie.Alternative != nil:
		return ev.eval(ie.Alternative, env)
	}
	return object.NULL
}

func (ev *evaluator) apply(fn object.Object, args []object.Object) object.Object {
	function, ok := fn.(*object.Function)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}
	if len(args) != len(function.Parameters) {
		return newError("wrong number of arguments: want=%d, got=%d", len(function.Parameters), len(args))
	}
	if err := ev.ctx.Err(); err != nil {
		return newError("%s", ErrCanceled)
	}
	if ev.depth >= maxCallDepth {
		return newError("maximum call depth %d exceeded", maxCallDepth)
	}
	ev.depth++
	defer func() { ev.depth-- }()

	scope := object.NewEnclosedEnvironment(function.Env)
	for i, param := range function.Parameters {
		scope.Set(param.Value, args[i])
	}
	result := ev.eval(function.Body, scope)
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return result
}

func evalIdentifier(id *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(id.Value); ok {
		return val
	}
	return newError("identifier not found: %s", id.Value)
}

func isTruthy(obj object.Object) bool {
	return obj != object.NULL && obj != object.FALSE
}

func newError(format string, a ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}
