package object

// Environment stores variable bindings for the tree-walking evaluator.
// Each value is associated with the name of the identifier it was bound to.
type Environment struct {
	store map[string]Object

	// The environment that encloses this one. Nil for the outermost environment.
	outer *Environment
}

// NewEnvironment creates a new, empty [Environment].
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a new [Environment] enclosed by the given outer one.
// Bindings made in the inner environment shadow the outer ones without modifying them.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up the object bound to the given name, searching the enclosing
// environments when the name is not bound in the current one.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds the given name to the value in the current environment and returns the value.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
