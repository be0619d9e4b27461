// Package scheme implements a small Scheme-flavored expression language:
// numeric and string literals, variables, the builtin operators + - * and
// define, and user functions declared through define's function pattern.
//
// Expressions are plain text. Evaluating "(define (double x) (* x 2))"
// binds double in the given environment, and "(double 4)" then yields 8.
package scheme

import (
	"github.com/briantimar/scheme/parser"
)

// Eval evaluates an expression against env. A line holding several
// top-level forms evaluates them in order and yields the last value; a
// blank line yields Unit. Failures are classified as *SyntaxError,
// *ArityError or *TypeError, and every failure aborts the whole call,
// though bindings made earlier in the same line stay in place.
func Eval(expression string, env *Env) (*Value, error) {
	forms, err := parser.Parse(expression)
	if err != nil {
		return nil, newSyntaxError(err)
	}

	result := Unit
	for _, form := range forms {
		result, err = eval(form, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
