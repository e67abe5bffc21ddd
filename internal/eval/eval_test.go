package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/object"
	"monkey/internal/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	program, err := parser.ParseString(input)
	require.NoError(t, err, "input %q", input)
	return Eval(program, object.NewEnvironment())
}

func requireInteger(t *testing.T, obj object.Object, want int64) {
	t.Helper()
	i, ok := obj.(*object.Integer)
	require.Truef(t, ok, "object is %T (%v), want *object.Integer", obj, obj)
	assert.Equal(t, want, i.Value)
}

func TestIntegerExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"--10", 10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"7 / 2", 3},
	}
	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.want)
	}
}

func TestBooleanExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"true == true", true},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 > 2) == true", false},
		{"1 == true", false},
		{"!true", false},
		{"!5", false},
		{"!!5", true},
		{"!if (false) { 1 }", true},
	}
	for _, tt := range tests {
		obj := testEval(t, tt.input)
		assert.Samef(t, object.NativeBool(tt.want), obj, "input %q", tt.input)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (if (false) { 1 }) { 10 } else { 20 }", int64(20)},
	}
	for _, tt := range tests {
		obj := testEval(t, tt.input)
		if want, ok := tt.want.(int64); ok {
			requireInteger(t, obj, want)
		} else {
			assert.Samef(t, object.NULL, obj, "input %q", tt.input)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
		{"let f = fn(x) { return x; x + 10; }; f(10);", 10},
		{"let f = fn(x) { let r = x + 10; return r; return 1; }; f(10);", 20},
	}
	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.want)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { if (10 > 1) { return true + false; } return 1; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{"foobar", "identifier not found: foobar"},
		{"5(1)", "not a function: INTEGER"},
		{"10 / (5 - 5)", "division by zero"},
		{"fn(a, b) { a }(1)", "wrong number of arguments: want=2, got=1"},
		{"let f = fn() { f() }; f()", "maximum call depth 2048 exceeded"},
		{"let x = y; x", "identifier not found: y"},
		{"f(undefinedArg)", "identifier not found: f"},
	}
	for _, tt := range tests {
		obj := testEval(t, tt.input)
		errObj, ok := obj.(*object.Error)
		require.Truef(t, ok, "%q: got %T (%s)", tt.input, obj, inspect(obj))
		assert.Equal(t, tt.want, errObj.Message, "input %q", tt.input)
	}
}

func inspect(obj object.Object) string {
	if obj == nil {
		return "<nil>"
	}
	return obj.Inspect()
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}
	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.want)
	}
	assert.Same(t, object.NULL, testEval(t, "let a = 1;"))
	assert.Same(t, object.NULL, testEval(t, ""))
}

func TestFunctionObject(t *testing.T) {
	fn, ok := testEval(t, "fn(x) { x + 2; };").(*object.Function)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "{(x + 2)}", fn.Body.String())
	assert.Equal(t, "fn(x) {(x + 2)}", fn.Inspect())
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}
	for _, tt := range tests {
		requireInteger(t, testEval(t, tt.input), tt.want)
	}
}

func TestClosures(t *testing.T) {
	input := `
let newAdder = fn(x) { fn(y) { x + y }; };
let addTwo = newAdder(2);
addTwo(2);`
	requireInteger(t, testEval(t, input), 4)

	recursive := `
let fib = fn(n) { if (n < 2) { n } else { fib(n - 1) + fib(n - 2) } };
fib(15);`
	requireInteger(t, testEval(t, recursive), 610)

	shadow := "let x = 1; let f = fn(x) { x * 10 }; f(2) + x"
	requireInteger(t, testEval(t, shadow), 21)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	env := object.NewEnvironment()

	program, err := parser.ParseString("let a = 40;")
	require.NoError(t, err)
	_, err = Run(ctx, program, env)
	require.NoError(t, err)

	program, err = parser.ParseString("a + 2")
	require.NoError(t, err)
	obj, err := Run(ctx, program, env)
	require.NoError(t, err)
	requireInteger(t, obj, 42)

	program, err = parser.ParseString("a / 0")
	require.NoError(t, err)
	_, err = Run(ctx, program, env)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "division by zero", rerr.Message)

	_, err = Run(ctx, nil, env)
	assert.Error(t, err)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	program, err := parser.ParseString("let f = fn(n) { n }; f(1)")
	require.NoError(t, err)
	_, err = Run(ctx, program, object.NewEnvironment())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCanceled))
	assert.True(t, errors.Is(err, context.Canceled))
}
