package lexer

import "regexp"

// The builtin vocabulary. Binding any of these through define is rejected
// during name validation, so the registry lookup can never be shadowed.
var reservedSymbols = map[string]bool{
	"+":      true,
	"-":      true,
	"*":      true,
	"define": true,
}

var identifierRE = regexp.MustCompile(`^\w*$`)

// IsReserved reports whether the word names a builtin operation.
func IsReserved(word string) bool {
	return reservedSymbols[word]
}

// IsNumericLiteral reports whether the word spells a number: digits with at
// most one dot, and not a bare dot.
func IsNumericLiteral(word string) bool {
	if word == "" || word == "." {
		return false
	}
	dots := 0
	for i := 0; i < len(word); i++ {
		switch {
		case word[i] == '.':
			dots++
		case word[i] < '0' || word[i] > '9':
			return false
		}
	}
	return dots <= 1
}

// IsStringLiteral reports whether the word is a quote-delimited literal.
func IsStringLiteral(word string) bool {
	return len(word) >= 2 && word[0] == '"' && word[len(word)-1] == '"'
}

// IsPrimitive reports whether the word evaluates to a value without any
// name lookup: a numeric literal, a string literal, or the empty word.
func IsPrimitive(word string) bool {
	return word == "" || IsNumericLiteral(word) || IsStringLiteral(word)
}

// IsValidVariableName reports whether the word can be bound through
// define: word characters only and not a reserved symbol.
func IsValidVariableName(word string) bool {
	return identifierRE.MatchString(word) && !IsReserved(word)
}
