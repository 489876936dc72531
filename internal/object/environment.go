package object

import "log/slog"

// Binding is one name-to-value association within a frame.
type Binding struct {
	Value   Object
	Mutable bool
}

// Environment is one frame of the scope chain. The outer link is used for
// lookup only; a closure that captures an environment shares ownership of
// the whole chain and keeps it alive. Execution is single-threaded, so no
// locking is needed here; the discipline is about lifetime, not races.
type Environment struct {
	Bindings map[string]*Binding
	Outer    *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Bindings: make(map[string]*Binding)}
}

// NewEnclosedEnvironment creates a child scope for a block, call or loop
// iteration.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.Outer = outer
	return env
}

// Define adds a new binding to this frame. Redeclaring a name that already
// exists in the same frame is an error; shadowing an outer frame is fine.
func (e *Environment) Define(name string, val Object, mutable bool) *Error {
	if _, exists := e.Bindings[name]; exists {
		return NewError(RedeclarationError, "'%s' is already declared in this scope", name)
	}
	e.Bindings[name] = &Binding{Value: val, Mutable: mutable}
	slog.Debug("define binding",
		slog.String("name", name),
		slog.Bool("mutable", mutable),
		slog.String("type", string(val.Type())))
	return nil
}

// Get walks the frame chain outward.
func (e *Environment) Get(name string) (Object, bool) {
	if binding, ok := e.Bindings[name]; ok {
		return binding.Value, true
	}
	if e.Outer != nil {
		return e.Outer.Get(name)
	}
	return nil, false
}

// Assign walks the chain to the owning frame and replaces the bound value.
func (e *Environment) Assign(name string, val Object) *Error {
	if binding, ok := e.Bindings[name]; ok {
		if !binding.Mutable {
			return NewError(ImmutableAssignmentError, "cannot assign to constant '%s'", name)
		}
		binding.Value = val
		slog.Debug("assign binding",
			slog.String("name", name),
			slog.String("type", string(val.Type())))
		return nil
	}
	if e.Outer != nil {
		return e.Outer.Assign(name, val)
	}
	return NewError(NameError, "identifier not found: %s", name)
}

// Clear removes every binding in this frame without touching outer frames.
// The REPL uses it to reset its persistent top-level scope.
func (e *Environment) Clear() {
	e.Bindings = make(map[string]*Binding)
}
