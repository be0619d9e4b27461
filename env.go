package scheme

// Env is one frame of name bindings plus a pointer to the frame it
// extends. The root frame has no outer frame and lives for the whole
// session; closure calls push child frames that are dropped when the call
// returns.
type Env struct {
	vars  map[string]*Value
	outer *Env
}

// NewEnv returns an empty frame extending outer. Pass nil for the root
// frame.
func NewEnv(outer *Env) *Env {
	return &Env{
		vars:  map[string]*Value{},
		outer: outer,
	}
}

// Get resolves a name against this frame and then the chain above it.
func (e *Env) Get(name string) (*Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set binds a name in this frame, replacing any binding the frame already
// holds for it. Bindings in outer frames are shadowed, never modified.
func (e *Env) Set(name string, v *Value) {
	e.vars[name] = v
}

// Len returns the number of bindings held by this frame alone.
func (e *Env) Len() int {
	return len(e.vars)
}
