package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/briantimar/scheme/ast"
	"github.com/briantimar/scheme/lexer"
)

const defineKeyword = "define"

// Parse reads an expression into its ordered sequence of top-level forms.
//
// An input shaped like a single compound is read as one form, parens and
// all. Anything else is split into words first, so a line like "2 (+ 4 4)"
// parses as two forms. A define at the head of an unparenthesized line
// follows the word-evaluation rule to the letter: its name is validated and
// its value form is the result, but no binding form is produced, since only
// combination inside a compound performs the mutation.
func Parse(expression string) ([]*ast.Node, error) {
	if lexer.IsCompound(expression) {
		node, err := readCompound(expression)
		if err != nil {
			return nil, err
		}
		return []*ast.Node{node}, nil
	}

	words, err := lexer.Split(expression)
	if err != nil {
		return nil, err
	}

	if len(words) > 1 && words[0] == defineKeyword {
		def, err := readDefine(words)
		if err != nil {
			return nil, err
		}
		return []*ast.Node{def.DefineValue()}, nil
	}

	forms := make([]*ast.Node, 0, len(words))
	for _, w := range words {
		node, err := readForm(w)
		if err != nil {
			return nil, err
		}
		forms = append(forms, node)
	}
	return forms, nil
}

// readForm reads one word produced by the splitter: a parenthesized
// compound or a bare atom.
func readForm(word string) (*ast.Node, error) {
	if lexer.IsCompound(word) {
		return readCompound(word)
	}
	return readAtom(word)
}

func readCompound(expression string) (*ast.Node, error) {
	inner, err := lexer.Strip(expression)
	if err != nil {
		return nil, err
	}
	words, err := lexer.Split(inner)
	if err != nil {
		return nil, err
	}

	if len(words) == 0 || (len(words) == 1 && words[0] == "") {
		return ast.NewExpression(), nil
	}
	if len(words) > 1 && words[0] == defineKeyword {
		return readDefine(words)
	}

	expr := ast.NewExpression()
	for _, w := range words {
		node, err := readForm(w)
		if err != nil {
			return nil, err
		}
		if err := expr.Push(node); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// readDefine reads a define form: the keyword, a name slot and a value
// slot. A parenthesized name slot declares a function, and its body stays
// unevaluated inside a lambda form.
func readDefine(words []string) (*ast.Node, error) {
	if len(words) != 3 {
		return nil, ErrDefineArgs
	}

	name := words[1]
	if lexer.IsCompound(name) {
		return readDefineLambda(name, words[2])
	}
	if !lexer.IsValidVariableName(name) {
		return nil, fmt.Errorf("%s %w", name, ErrInvalidName)
	}

	value, err := readForm(words[2])
	if err != nil {
		return nil, err
	}
	return ast.NewDefine(name, value), nil
}

func readDefineLambda(pattern, body string) (*ast.Node, error) {
	inner, err := lexer.Strip(pattern)
	if err != nil {
		return nil, err
	}
	words, err := lexer.Split(inner)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 || words[0] == "" {
		return nil, fmt.Errorf("%s %w", pattern, ErrInvalidName)
	}
	for _, w := range words {
		if !lexer.IsValidVariableName(w) {
			return nil, fmt.Errorf("%s %w", w, ErrInvalidName)
		}
	}

	node, err := readForm(body)
	if err != nil {
		return nil, err
	}
	return ast.NewDefine(words[0], ast.NewLambda(words[1:], node)), nil
}

// readAtom reads a word with no parens of its own. The empty word is the
// empty expression.
func readAtom(word string) (*ast.Node, error) {
	switch {
	case word == "":
		return ast.NewExpression(), nil
	case lexer.IsNumericLiteral(word):
		return readNumber(word)
	case lexer.IsStringLiteral(word):
		return ast.NewString(word[1 : len(word)-1]), nil
	case lexer.IsReserved(word) || lexer.IsValidVariableName(word):
		return ast.NewSymbol(word), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidExpr, word)
}

func readNumber(word string) (*ast.Node, error) {
	if strings.ContainsRune(word, '.') {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExpr, word)
		}
		return ast.NewFloat(f), nil
	}
	n, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExpr, word)
	}
	return ast.NewInt(n), nil
}
