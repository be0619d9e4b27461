package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briantimar/scheme/ast"
	"github.com/briantimar/scheme/lexer"
)

func encodeForms(forms []*ast.Node) string {
	parts := []string{}
	for _, f := range forms {
		parts = append(parts, ast.Encode(f))
	}
	return strings.Join(parts, " ")
}

func TestParseEncode(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: `()`,
		},
		{
			In:  ` `,
			Out: ``,
		},
		{
			In:  `2`,
			Out: `2`,
		},
		{
			In:  `( 2)`,
			Out: `(2)`,
		},
		{
			In:  `2 4 5`,
			Out: `2 4 5`,
		},
		{
			In:  `2 (+ 4 4)`,
			Out: `2 (+ 4 4)`,
		},
		{
			In:  `((4))`,
			Out: `((4))`,
		},
		{
			In:  `( + 1 (+ 3 (4)))`,
			Out: `(+ 1 (+ 3 (4)))`,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `( )`,
			Out: `()`,
		},
		{
			In:  `(()())`,
			Out: `(() ())`,
		},
		{
			In:  `"bob"`,
			Out: `"bob"`,
		},
		{
			In:  `2.3`,
			Out: `2.3`,
		},
		{
			In:  `2.`,
			Out: `2`,
		},
		{
			In:  `.5`,
			Out: `0.5`,
		},
		{
			In:  `jim`,
			Out: `jim`,
		},
		{
			In:  `define`,
			Out: `define`,
		},
		{
			In:  `(define)`,
			Out: `(define)`,
		},
		{
			In:  `(define a 7)`,
			Out: `(define a 7)`,
		},
		{
			In:  `(define (double x) (* x 2))`,
			Out: `(define (double x) (* x 2))`,
		},
		{
			In:  `(define (f) 5)`,
			Out: `(define (f) 5)`,
		},
		{
			In:  "(a\n b)",
			Out: `(a b)`,
		},
	}

	for i := range testCases {
		forms, err := Parse(testCases[i].In)
		assert.NoError(t, err, "in: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Out, encodeForms(forms), "in: %q", testCases[i].In)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{In: `(`, Err: lexer.ErrUnbalanced},
		{In: `)`, Err: lexer.ErrUnbalanced},
		{In: `()(2`, Err: lexer.ErrUnbalanced},
		{In: `)(`, Err: lexer.ErrUnbalanced},
		{In: `(a)(b)`, Err: lexer.ErrUnbalanced},
		{In: `3.4.5`, Err: ErrInvalidExpr},
		{In: `2.B`, Err: ErrInvalidExpr},
		{In: `92233720368547758080`, Err: ErrInvalidExpr},
		{In: `-3`, Err: ErrInvalidExpr},
		{In: `?`, Err: ErrInvalidExpr},
		{In: `(define a)`, Err: ErrDefineArgs},
		{In: `(define a 1 2)`, Err: ErrDefineArgs},
		{In: `define a`, Err: ErrDefineArgs},
		{In: `(define + 1)`, Err: ErrInvalidName},
		{In: `(define "x" 1)`, Err: ErrInvalidName},
		{In: `(define (+ x) 1)`, Err: ErrInvalidName},
		{In: `(define (f a-b) 1)`, Err: ErrInvalidName},
		{In: `(define () 1)`, Err: ErrInvalidName},
	}

	for i := range testCases {
		forms, err := Parse(testCases[i].In)
		assert.ErrorIs(t, err, testCases[i].Err, "in: %q", testCases[i].In)
		assert.Nil(t, forms)
	}
}

func TestParseForms(t *testing.T) {
	forms, err := Parse(`2 (+ 4 4)`)
	assert.NoError(t, err)
	assert.Len(t, forms, 2)
	assert.Equal(t, ast.NodeTypeInt, forms[0].Type())
	assert.Equal(t, ast.NodeTypeExpression, forms[1].Type())

	forms, err = Parse(` `)
	assert.NoError(t, err)
	assert.Len(t, forms, 0)

	forms, err = Parse(`(f)`)
	assert.NoError(t, err)
	assert.Len(t, forms, 1)
	assert.Equal(t, ast.NodeTypeExpression, forms[0].Type())
	assert.Len(t, forms[0].List(), 1)
}

func TestParseDefine(t *testing.T) {
	forms, err := Parse(`(define a 7)`)
	assert.NoError(t, err)
	assert.Len(t, forms, 1)

	def := forms[0]
	assert.Equal(t, ast.NodeTypeDefine, def.Type())
	assert.Equal(t, "a", def.DefineName())
	assert.Equal(t, ast.NodeTypeInt, def.DefineValue().Type())

	forms, err = Parse(`(define (double x) (* x 2))`)
	assert.NoError(t, err)
	assert.Len(t, forms, 1)

	def = forms[0]
	assert.Equal(t, ast.NodeTypeDefine, def.Type())
	assert.Equal(t, "double", def.DefineName())

	lambda := def.DefineValue()
	assert.Equal(t, ast.NodeTypeLambda, lambda.Type())
	assert.Equal(t, []string{"x"}, lambda.Params())
	assert.Equal(t, ast.NodeTypeExpression, lambda.Body().Type())
}

// A define at the head of an unparenthesized line validates its name but
// reads as its value form alone, no binding form is produced.
func TestParseBareDefine(t *testing.T) {
	forms, err := Parse(`define a 7`)
	assert.NoError(t, err)
	assert.Len(t, forms, 1)
	assert.Equal(t, ast.NodeTypeInt, forms[0].Type())
	assert.Equal(t, int64(7), forms[0].Int())

	forms, err = Parse(`define (double x) (* x 2)`)
	assert.NoError(t, err)
	assert.Len(t, forms, 1)
	assert.Equal(t, ast.NodeTypeLambda, forms[0].Type())
	assert.Equal(t, []string{"x"}, forms[0].Params())

	_, err = Parse(`define + 7`)
	assert.ErrorIs(t, err, ErrInvalidName)
}
