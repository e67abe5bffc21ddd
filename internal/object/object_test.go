package object

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/ast"
	"monkey/internal/token"
)

func TestInspect(t *testing.T) {
	body := &ast.BlockStatement{
		Token: token.New(token.LBrace, "{"),
		Statements: []ast.Statement{&ast.ExpressionStatement{
			Token:      token.New(token.Ident, "x"),
			Expression: &ast.Identifier{Token: token.New(token.Ident, "x"), Value: "x"},
		}},
	}
	fn := &Function{
		Parameters: []*ast.Identifier{{Token: token.New(token.Ident, "x"), Value: "x"}},
		Body:       body,
		Env:        NewEnvironment(),
	}

	tests := []struct {
		obj  Object
		typ  ObjectType
		want string
	}{
		{&Integer{Value: -42}, IntegerObj, "-42"},
		{TRUE, BooleanObj, "true"},
		{FALSE, BooleanObj, "false"},
		{NULL, NullObj, "null"},
		{&ReturnValue{Value: &Integer{Value: 7}}, ReturnValueObj, "7"},
		{&Error{Message: "division by zero"}, ErrorObj, "ERROR: division by zero"},
		{fn, FunctionObj, "fn(x) {x}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.obj.Type())
		assert.Equal(t, tt.want, tt.obj.Inspect())
	}
	assert.True(t, IsError(&Error{}))
	assert.False(t, IsError(nil))
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
}

func TestEnvironmentScoping(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("a", &Integer{Value: 1})
	outer.Set("b", &Integer{Value: 2})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("b", &Integer{Value: 20})

	a, ok := inner.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", a.Inspect())

	b, _ := inner.Get("b")
	assert.Equal(t, "20", b.Inspect())
	b, _ = outer.Get("b")
	assert.Equal(t, "2", b.Inspect(), "inner Set must not leak outward")

	_, ok = inner.Get("missing")
	assert.False(t, ok)

	names := outer.Names()
	sort.Strings(names)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, []string{"b"}, inner.Names())
}
