package scheme

import (
	"github.com/briantimar/scheme/ast"
)

func eval(n *ast.Node, env *Env) (*Value, error) {
	switch n.Type() {
	case ast.NodeTypeInt:
		return NewIntValue(n.Int()), nil

	case ast.NodeTypeFloat:
		return NewFloatValue(n.Float()), nil

	case ast.NodeTypeString:
		return NewStringValue(n.Text()), nil

	case ast.NodeTypeSymbol:
		return evalSymbol(n.Symbol(), env)

	case ast.NodeTypeLambda:
		return newClosureValue(newClosure(n.Params(), n.Body(), env)), nil

	case ast.NodeTypeDefine:
		return evalDefine(n, env)

	case ast.NodeTypeExpression:
		return evalExpression(n, env)

	default:
		panic("unknown node type")
	}
}

// evalSymbol resolves a name: the builtin registry first, then the
// environment chain.
func evalSymbol(name string, env *Env) (*Value, error) {
	if v, ok := LookupBuiltin(name); ok {
		return v, nil
	}
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	return nil, syntaxErrorf("name %s is not defined", name)
}

// evalDefine evaluates the value slot and routes the mutation through the
// define builtin, exactly as a combination of the triple would.
func evalDefine(n *ast.Node, env *Env) (*Value, error) {
	v, err := eval(n.DefineValue(), env)
	if err != nil {
		return nil, err
	}
	return builtinDefine(env, []*Value{NewStringValue(n.DefineName()), v})
}

func evalExpression(n *ast.Node, env *Env) (*Value, error) {
	children := n.List()
	if len(children) == 0 {
		return Unit, nil
	}

	vals := make([]*Value, 0, len(children))
	for _, c := range children {
		v, err := eval(c, env)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return combine(env, vals)
}

// combine reduces a sequence of evaluated words to one value. A single
// value stands for itself, a leading callable is applied to the rest, and
// any other sequence yields its last value.
func combine(env *Env, vals []*Value) (*Value, error) {
	if len(vals) == 1 {
		return vals[0], nil
	}

	head := vals[0]
	switch head.Type {
	case ValueTypeBuiltin:
		return head.Builtin().fn(env, vals[1:])
	case ValueTypeClosure:
		return head.Closure().call(vals[1:])
	}
	return vals[len(vals)-1], nil
}
