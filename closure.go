package scheme

import (
	"github.com/briantimar/scheme/ast"
)

// Closure is a user-defined function: ordered parameter names, an
// unevaluated body, and the environment captured where its define ran.
type Closure struct {
	params []string
	body   *ast.Node
	env    *Env
}

func newClosure(params []string, body *ast.Node, env *Env) *Closure {
	return &Closure{
		params: params,
		body:   body,
		env:    env,
	}
}

// Params returns the declared parameter names in order.
func (c *Closure) Params() []string {
	return c.params
}

// Body returns the unevaluated body expression.
func (c *Closure) Body() *ast.Node {
	return c.body
}

// call binds the arguments into a frame extending the captured environment
// and evaluates the body there. Bindings made inside the body live in the
// call frame and never reach the caller.
func (c *Closure) call(args []*Value) (*Value, error) {
	if len(args) != len(c.params) {
		return nil, &ArityError{Want: len(c.params), Got: len(args)}
	}

	frame := NewEnv(c.env)
	for i, p := range c.params {
		frame.Set(p, args[i])
	}
	return eval(c.body, frame)
}
