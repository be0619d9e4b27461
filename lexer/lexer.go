package lexer

import (
	"errors"
	"strings"
)

var (
	ErrUnbalanced   = errors.New("imbalanced parentheses")
	ErrMissingOpen  = errors.New("expecting (")
	ErrMissingClose = errors.New("expecting )")
)

const (
	openParen  = '('
	closeParen = ')'
)

// Split breaks an expression into its ordered top-level words. Whitespace
// separates words only at nesting depth zero; a parenthesized group keeps
// every character verbatim, inner whitespace included, and is emitted as a
// single word when its closing paren brings the scan back to depth zero.
//
// The empty expression yields a single empty word. Any expression whose
// parens do not balance fails with ErrUnbalanced, so every word returned is
// either a paren-free atom or a compound beginning with ( and ending in ).
func Split(expression string) ([]string, error) {
	if expression == "" {
		return []string{""}, nil
	}

	words := []string{}
	word := []rune{}

	rs := []rune(expression)
	depth := 0

	for i, r := range rs {
		// A ( opens the next rune's depth, a ) already sits outside the
		// group it closes.
		at := depth
		switch r {
		case openParen:
			depth++
		case closeParen:
			depth--
			at = depth
			if depth < 0 {
				return nil, ErrUnbalanced
			}
		}

		if at > 0 || !isSkipRune(r) {
			word = append(word, r)
		}

		if at == 0 {
			last := i == len(rs)-1
			if r == closeParen || (!isDelimiterRune(r) && (last || isDelimiterRune(rs[i+1]))) {
				words = append(words, string(word))
				word = word[:0]
			}
		}
	}

	if depth != 0 {
		return nil, ErrUnbalanced
	}
	return words, nil
}

// Strip removes one enclosing pair of parentheses: the text before the
// first ( and after the last ) is discarded along with the pair itself.
// The cut is purely textual, so the caller is expected to have already
// established that the expression is a well-formed compound.
func Strip(expression string) (string, error) {
	start := strings.IndexByte(expression, openParen)
	if start < 0 {
		return "", ErrMissingOpen
	}
	end := strings.LastIndexByte(expression, closeParen)
	if end < 0 {
		return "", ErrMissingClose
	}
	if end < start {
		return "", nil
	}
	return expression[start+1 : end], nil
}

// IsCompound reports whether the expression has the shape of a single
// parenthesized form. It is a shape test only, balance is not checked.
func IsCompound(expression string) bool {
	return len(expression) >= 2 && expression[0] == openParen && expression[len(expression)-1] == closeParen
}

func isSkipRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n':
		return true
	}
	return false
}

func isDelimiterRune(r rune) bool {
	return isSkipRune(r) || r == openParen || r == closeParen
}
