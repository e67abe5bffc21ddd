package eval

import "monkey/internal/object"

func evalPrefix(op string, right object.Object) object.Object {
	switch op {
	case "!":
		return object.NativeBool(!isTruthy(right))
	case "-":
		if i, ok := right.(*object.Integer); ok {
			return &object.Integer{Value: -i.Value}
		}
	}
	return newError("unknown operator: %s%s", op, right.Type())
}

func evalInfix(op string, left, right object.Object) object.Object {
	li, lok := left.(*object.Integer)
	ri, rok := right.(*object.Integer)
	switch {
	case lok && rok:
		return evalIntegerInfix(op, li.Value, ri.Value)
	case op == "==":
		return object.NativeBool(left == right)
	case op == "!=":
		return object.NativeBool(left != right)
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	}
	return newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
}

// evalIntegerInfix wraps on overflow like Go int64 arithmetic.
func evalIntegerInfix(op string, l, r int64) object.Object {
	switch op {
	case "+":
		return &object.Integer{Value: l + r}
	case "-":
		return &object.Integer{Value: l - r}
	case "*":
		return &object.Integer{Value: l * r}
	case "/":
		if r == 0 {
			return newError("division by zero")
		}
		return &object.Integer{Value: l / r}
	case "<":
		return object.NativeBool(l < r)
	case ">":
		return object.NativeBool(l > r)
	case "==":
		return object.NativeBool(l == r)
	case "!=":
		return object.NativeBool(l != r)
	}
	return newError("unknown operator: INTEGER %s INTEGER", op)
}
