package scheme

// BuiltinFunc is the native implementation behind a reserved symbol.
type BuiltinFunc func(env *Env, args []*Value) (*Value, error)

// Builtin is a native operation. Builtins live in a fixed registry, never
// in an Env, so no define can shadow or replace them.
type Builtin struct {
	name string
	fn   BuiltinFunc
}

// Name returns the reserved symbol the builtin answers to.
func (b *Builtin) Name() string {
	return b.name
}

var builtins = map[string]*Value{
	"+":      newBuiltinValue(&Builtin{name: "+", fn: builtinAdd}),
	"-":      newBuiltinValue(&Builtin{name: "-", fn: builtinSub}),
	"*":      newBuiltinValue(&Builtin{name: "*", fn: builtinMul}),
	"define": newBuiltinValue(&Builtin{name: "define", fn: builtinDefine}),
}

// LookupBuiltin resolves a reserved symbol in the registry.
func LookupBuiltin(name string) (*Value, bool) {
	v, ok := builtins[name]
	return v, ok
}

// numericArgs checks that every argument is an int or a float and reports
// whether any of them is a float, which promotes the whole operation.
func numericArgs(op string, args []*Value) (bool, error) {
	isFloat := false
	for _, a := range args {
		switch a.Type {
		case ValueTypeInt:
		case ValueTypeFloat:
			isFloat = true
		default:
			return false, &TypeError{Op: op, Value: a}
		}
	}
	return isFloat, nil
}

func asFloat(v *Value) float64 {
	if v.Type == ValueTypeFloat {
		return v.Float64()
	}
	return float64(v.Int())
}

func builtinAdd(env *Env, args []*Value) (*Value, error) {
	isFloat, err := numericArgs("+", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		var sum float64
		for _, a := range args {
			sum += asFloat(a)
		}
		return NewFloatValue(sum), nil
	}
	var sum int64
	for _, a := range args {
		sum += a.Int()
	}
	return NewIntValue(sum), nil
}

// builtinSub subtracts the sum of the remaining arguments from the first.
func builtinSub(env *Env, args []*Value) (*Value, error) {
	isFloat, err := numericArgs("-", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		var acc float64
		for i, a := range args {
			if i == 0 {
				acc = asFloat(a)
				continue
			}
			acc -= asFloat(a)
		}
		return NewFloatValue(acc), nil
	}
	var acc int64
	for i, a := range args {
		if i == 0 {
			acc = a.Int()
			continue
		}
		acc -= a.Int()
	}
	return NewIntValue(acc), nil
}

func builtinMul(env *Env, args []*Value) (*Value, error) {
	isFloat, err := numericArgs("*", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		prod := 1.0
		for _, a := range args {
			prod *= asFloat(a)
		}
		return NewFloatValue(prod), nil
	}
	var prod int64 = 1
	for _, a := range args {
		prod *= a.Int()
	}
	return NewIntValue(prod), nil
}

// builtinDefine performs the environment mutation behind a define form.
// The name reaches it as a string value and the binding lands in the env
// the combination runs in.
func builtinDefine(env *Env, args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Want: 2, Got: len(args)}
	}
	if args[0].Type != ValueTypeString {
		return nil, &TypeError{Op: "define", Value: args[0]}
	}
	env.Set(args[0].Text(), args[1])
	return args[1], nil
}
